package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output        string `mapstructure:"output"`
	File          string `mapstructure:"file"`
	Wrapper       string `mapstructure:"wrapper"`
	Strip         bool   `mapstructure:"strip"`
	Quiet         bool   `mapstructure:"quiet"`
	ColorID       string `mapstructure:"color_id"`
	ColorShort    string `mapstructure:"color_short"`
	ColorLong     string `mapstructure:"color_long"`
	ColorWarning  string `mapstructure:"color_warning"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorDim      string `mapstructure:"color_dim"`
	ColorBorder   string `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output", "stdout")
	viper.SetDefault("file", "")
	viper.SetDefault("wrapper", "hyperref")
	viper.SetDefault("strip", true)
	viper.SetDefault("quiet", false)
	viper.SetDefault("color_id", "36")      // Cyan
	viper.SetDefault("color_short", "32")   // Green
	viper.SetDefault("color_long", "90")    // Gray
	viper.SetDefault("color_warning", "33") // Yellow
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")

	viper.SetConfigName("glsexpand")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "glsexpand"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("GLSEXPAND")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetFile returns the output file path with tilde expansion
func GetFile() string {
	return expandTilde(viper.GetString("file"))
}

// GetWrapper returns the wrapper command name stripped by the final pass
func GetWrapper() string {
	return viper.GetString("wrapper")
}

// GetStrip returns whether the wrapper-stripping pass runs
func GetStrip() bool {
	return viper.GetBool("strip")
}

// GetQuiet returns whether warnings are suppressed
func GetQuiet() bool {
	return viper.GetBool("quiet")
}

// GetColorID returns ANSI color code for abbreviation identifiers
func GetColorID() string {
	return viper.GetString("color_id")
}

// GetColorShort returns ANSI color code for short forms
func GetColorShort() string {
	return viper.GetString("color_short")
}

// GetColorLong returns ANSI color code for long forms
func GetColorLong() string {
	return viper.GetString("color_long")
}

// GetColorWarning returns ANSI color code for warnings
func GetColorWarning() string {
	return viper.GetString("color_warning")
}

// GetColorCursor returns the TUI cursor color
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the TUI selection background color
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorDim returns the TUI dimmed text color
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the TUI border color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetFile sets the output file path at runtime
func SetFile(path string) {
	viper.Set("file", path)
	C.File = path
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

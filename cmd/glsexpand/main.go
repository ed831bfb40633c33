package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergiud/glsexpand/internal/config"
	"github.com/sergiud/glsexpand/internal/gls"
	"github.com/sergiud/glsexpand/internal/output"
	"github.com/sergiud/glsexpand/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "glsexpand [file]",
	Short: "Expand acronym macros into plain text",
	Long: `Expands \newacronym definitions and \gls references in a LaTeX-style
document into plain text.

The first reference to an abbreviation renders "long form (SHORT)";
later references render the short form only. A final pass strips
wrapper markup such as \hyperref[...]{...} from the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

var dictCmd = &cobra.Command{
	Use:   "dict [file]",
	Short: "List the abbreviations defined in a document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDict,
}

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse the abbreviations defined in a document interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(browseCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: stdout, copy, file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Output file (implies -o file)")
	rootCmd.PersistentFlags().BoolP("copy", "c", false, "Copy result to clipboard (shorthand for -o copy)")
	rootCmd.PersistentFlags().Bool("no-strip", false, "Skip the wrapper-stripping pass")
	rootCmd.PersistentFlags().String("wrapper", "", "Wrapper command removed by the stripping pass")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// readInput buffers the whole document from the named file, or from
// stdin when no file is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// newPipeline builds the expansion pipeline from config and flags.
func newPipeline(cmd *cobra.Command) *gls.Pipeline {
	p := gls.New()
	p.Wrapper = config.GetWrapper()
	p.Strip = config.GetStrip()

	if w, _ := cmd.Flags().GetString("wrapper"); w != "" {
		p.Wrapper = w
	}
	if ns, _ := cmd.Flags().GetBool("no-strip"); ns {
		p.Strip = false
	}
	return p
}

// printWarnings reports non-fatal diagnostics on stderr.
func printWarnings(warnings []gls.Warning) {
	if config.GetQuiet() || len(warnings) == 0 {
		return
	}
	style := lipgloss.NewStyle().Foreground(ui.ParseANSIColor(config.GetColorWarning()))
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, style.Render(fmt.Sprintf("warning: %s", w)))
	}
}

func runExpand(cmd *cobra.Command, args []string) error {
	// Handle output mode flags
	if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	} else if f, _ := cmd.Flags().GetString("file"); f != "" {
		config.SetOutput("file")
		config.SetFile(f)
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	result, warnings, err := newPipeline(cmd).Run(input)
	printWarnings(warnings)
	if err != nil {
		return err
	}

	return output.NewSink().Write(result)
}

func runDict(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	entries, err := gls.Parse(input)
	if err != nil {
		return err
	}

	dict, warnings := gls.BuildDictionary(entries)
	printWarnings(warnings)

	defs := dict.Definitions()
	if len(defs) == 0 {
		return fmt.Errorf("no abbreviations defined")
	}

	idStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ParseANSIColor(config.GetColorID()))
	shortStyle := lipgloss.NewStyle().Foreground(ui.ParseANSIColor(config.GetColorShort()))
	longStyle := lipgloss.NewStyle().Foreground(ui.ParseANSIColor(config.GetColorLong()))

	for _, def := range defs {
		fmt.Printf("%s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-16s", def.ID)),
			shortStyle.Render(fmt.Sprintf("%-12s", def.Short)),
			longStyle.Render(def.Long))
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	entries, err := gls.Parse(input)
	if err != nil {
		return err
	}

	dict, warnings := gls.BuildDictionary(entries)
	printWarnings(warnings)

	return ui.Run(dict.Definitions(), output.NewClipboard())
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

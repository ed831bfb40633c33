package gls

import (
	"strings"
	"testing"
)

func TestPipelineRun(t *testing.T) {
	input := `\newacronym{sysA}{SYS}{System A}` +
		`First: \gls{sysA}. Then: \Glspl{sysA}.`

	got, warnings, err := New().Run(input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := "First: System A (SYS). Then: SYSs."
	if got != want {
		t.Errorf("Run = %q, want %q", got, want)
	}
}

func TestPipelineRunStripsWrappers(t *testing.T) {
	input := `\newacronym{db}{DB}{database}` +
		`See \hyperref[sec:db]{the \gls{db} chapter}.`

	got, _, err := New().Run(input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// the reference expands in stage 3; stage 4 then unwraps the
	// already-expanded text
	want := "See the database (DB) chapter."
	if got != want {
		t.Errorf("Run = %q, want %q", got, want)
	}
}

func TestPipelineRunNoStrip(t *testing.T) {
	input := `keep \hyperref[a]{this} wrapped`

	p := New()
	p.Strip = false
	got, _, err := p.Run(input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != input {
		t.Errorf("Run = %q, want %q", got, input)
	}
}

func TestPipelineRunSwallowsSiblings(t *testing.T) {
	input := `\newacronym{a}{A}{alpha}\glsunset before \gls{a}`

	got, _, err := New().Run(input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := " before alpha (A)"
	if got != want {
		t.Errorf("Run = %q, want %q", got, want)
	}
}

func TestPipelineRunFailsWithoutPartialOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "parse failure", input: `text \gls{unterminated`},
		{name: "undefined reference", input: `text \gls{ghost} more`},
		{name: "strip failure", input: `ok \hyperref[a]{unbalanced`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := New().Run(tt.input)
			if err == nil {
				t.Fatalf("Run(%q) = %q, want error", tt.input, got)
			}
			if got != "" {
				t.Errorf("Run(%q) returned partial output %q alongside error", tt.input, got)
			}
		})
	}
}

func TestPipelineRunWarnings(t *testing.T) {
	input := `\newacronym{e}{E}{}use: \gls{e}`

	got, warnings, err := New().Run(input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(warnings) != 1 || warnings[0].ID != "e" {
		t.Fatalf("warnings = %v, want one for id %q", warnings, "e")
	}
	if !strings.HasSuffix(got, " (E)") {
		t.Errorf("Run = %q, want empty long form rendered verbatim", got)
	}
}

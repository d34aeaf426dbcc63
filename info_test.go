package argot

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInfo_Flags(t *testing.T) {
	t.Parallel()
	got := Info[goUp]([]string{"cmdname"})
	want := &CmdInfo{
		Name:        "cmdname",
		Usage:       "cmdname [-j] --height <height> [--pilot-nickname <pilot-nickname>]",
		Description: "Reach new heights.",
		Flags: []FlagInfo{
			{Short: "j", Long: "--jump", Description: "whether or not to jump", Optionality: "optional"},
			{Long: "--height", Description: "how high to go", ArgName: "height", Optionality: "required"},
			{Long: "--pilot-nickname", Description: "an optional nickname for the pilot", ArgName: "pilot-nickname", Optionality: "optional"},
			{Long: "--help", Description: "display usage information", Optionality: "optional"},
		},
		Positional:  []PositionalInfo{},
		ErrorCodes:  []ErrorCodeInfo{},
		Subcommands: []*CmdInfo{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestInfo_PositionalOptionality(t *testing.T) {
	t.Parallel()
	got := Info[lastGreedy]([]string{"cmdname"})
	want := []PositionalInfo{
		{Name: "a", Description: "fooey", Optionality: "required"},
		{Name: "d", Description: "fooey", Optionality: "greedy"},
	}
	if diff := cmp.Diff(want, got.Positional); diff != "" {
		t.Fatalf("positional info mismatch (-want +got):\n%s", diff)
	}
}

func TestInfo_SubcommandsNested(t *testing.T) {
	t.Parallel()
	got := Info[topLevel]([]string{"cmdname"})
	if len(got.Subcommands) != 2 {
		t.Fatalf("expected 2 subcommands, got %d", len(got.Subcommands))
	}
	one := got.Subcommands[0]
	if one.Name != "one" || one.Usage != "cmdname one [--fooey]" {
		t.Fatalf("child info got name %q usage %q", one.Name, one.Usage)
	}
	if one.Description != "First subcommand." {
		t.Fatalf("child description got %q", one.Description)
	}
}

func TestInfo_DynamicChildren(t *testing.T) {
	t.Parallel()
	got := Info[tool]([]string{"cmdname"})
	var names []string
	for _, sub := range got.Subcommands {
		names = append(names, sub.Name)
	}
	want := []string{"two", "alpha", "beta"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("subcommand names mismatch (-want +got):\n%s", diff)
	}
	if got.Subcommands[1].Description != "first plugin" {
		t.Fatalf("dynamic description got %q", got.Subcommands[1].Description)
	}
}

type withHidden struct {
	Secret bool   `argot_switch:"secret" argot_hidden:"true" argot_help:"internal toggle"`
	Name   string `argot_positional:"name" argot_help:"name"`
}

func (withHidden) CommandDescription() string { return "Hidden." }

func TestHidden_AbsentFromHelpPresentInInfo(t *testing.T) {
	t.Parallel()
	help := Help[withHidden]([]string{"cmdname"})
	if strings.Contains(help, "--secret") {
		t.Fatalf("hidden flag leaked into help:\n%s", help)
	}

	got, err := FromArgs[withHidden]([]string{"cmdname"}, []string{"--secret", "x"})
	if err != nil {
		t.Fatalf("FromArgs: %v", err)
	}
	if !got.Secret {
		t.Fatal("hidden flag should still parse")
	}

	info := Info[withHidden]([]string{"cmdname"})
	if !info.Flags[0].Hidden {
		t.Fatalf("hidden status missing from info: %+v", info.Flags[0])
	}
}

func TestInfoJSON_ValidatesAgainstSchema(t *testing.T) {
	t.Parallel()
	for _, run := range []struct {
		name string
		data func() ([]byte, error)
	}{
		{"flat", func() ([]byte, error) { return InfoJSON[goUp]([]string{"cmdname"}) }},
		{"nested", func() ([]byte, error) { return InfoJSON[topLevel]([]string{"cmdname"}) }},
		{"dynamic", func() ([]byte, error) { return InfoJSON[tool]([]string{"cmdname"}) }},
	} {
		run := run
		t.Run(run.name, func(t *testing.T) {
			t.Parallel()
			data, err := run.data()
			if err != nil {
				t.Fatalf("InfoJSON: %v", err)
			}
			if err := ValidateInfoJSON(data); err != nil {
				t.Fatalf("ValidateInfoJSON: %v", err)
			}
		})
	}
}

func TestValidateInfoJSON_RejectsTruncated(t *testing.T) {
	t.Parallel()
	if err := ValidateInfoJSON([]byte(`{"name": "x"}`)); err == nil {
		t.Fatal("expected truncated metadata to fail validation")
	}
	if err := ValidateInfoJSON([]byte(`{not json`)); err == nil {
		t.Fatal("expected malformed JSON to fail validation")
	}
}

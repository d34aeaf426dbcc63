package argot

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHelp_Flags(t *testing.T) {
	t.Parallel()
	want := "Usage: cmdname [-j] --height <height> [--pilot-nickname <pilot-nickname>]\n" +
		"\n" +
		"Reach new heights.\n" +
		"\n" +
		"Options:\n" +
		"  -j, --jump        whether or not to jump\n" +
		"  --height          how high to go\n" +
		"  --pilot-nickname  an optional nickname for the pilot\n" +
		"  --help, help      display usage information\n"
	if diff := cmp.Diff(want, Help[goUp]([]string{"cmdname"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestHelp_MatchesHelpTrigger(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{{"--help"}, {"help"}} {
		_, err := FromArgs[goUp]([]string{"cmdname"}, args)
		ee := parseErr(t, err)
		if ee.Code != 0 {
			t.Fatalf("%q: help exit code got %d want 0", args, ee.Code)
		}
		if ee.Output != Help[goUp]([]string{"cmdname"}) {
			t.Fatalf("%q: trigger output differs from Help", args)
		}
	}
}

type repeatingOpt struct {
	N []string `argot_option:"n" argot_short:"n" argot_help:"fooey"`
}

func (repeatingOpt) CommandDescription() string { return "Woot" }

func TestHelp_RepeatingOptionUsage(t *testing.T) {
	t.Parallel()
	want := "Usage: cmdname [-n <n...>]\n" +
		"\n" +
		"Woot\n" +
		"\n" +
		"Options:\n" +
		"  -n, --n           fooey\n" +
		"  --help, help      display usage information\n"
	if diff := cmp.Diff(want, Help[repeatingOpt]([]string{"cmdname"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

type lastRepeating struct {
	A uint     `argot_positional:"a" argot_help:"fooey"`
	B []string `argot_positional:"b" argot_help:"fooey"`
}

func (lastRepeating) CommandDescription() string { return "Woot" }

func TestHelp_PositionalUsage(t *testing.T) {
	t.Parallel()
	want := "Usage: cmdname <a> [<b...>]\n" +
		"\n" +
		"Woot\n" +
		"\n" +
		"Positional Arguments:\n" +
		"  a                 fooey\n" +
		"  b                 fooey\n" +
		"\n" +
		"Options:\n" +
		"  --help, help      display usage information\n"
	if diff := cmp.Diff(want, Help[lastRepeating]([]string{"cmdname"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

type heightOpts struct {
	Height int `argot_option:"height" argot_help:"how high to go"`
}

func (heightOpts) CommandDescription() string { return "Height options" }
func (heightOpts) HelpTriggers() []string     { return []string{"-h", "--help", "help"} }

func TestHelp_CustomTriggers(t *testing.T) {
	t.Parallel()
	want := "Usage: cmdname --height <height>\n" +
		"\n" +
		"Height options\n" +
		"\n" +
		"Options:\n" +
		"  --height          how high to go\n" +
		"  -h, --help, help  display usage information\n"
	if diff := cmp.Diff(want, Help[heightOpts]([]string{"cmdname"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}

	_, err := FromArgs[heightOpts]([]string{"cmdname"}, []string{"-h"})
	ee := parseErr(t, err)
	if ee.Code != 0 || ee.Output != want {
		t.Fatalf("-h trigger: code %d output %q", ee.Code, ee.Output)
	}
}

func TestHelp_CommandsBlock(t *testing.T) {
	t.Parallel()
	want := "Usage: cmdname [--verbose] <command> [<args>]\n" +
		"\n" +
		"Top-level command.\n" +
		"\n" +
		"Options:\n" +
		"  --verbose         verbose output\n" +
		"  --help, help      display usage information\n" +
		"\n" +
		"Commands:\n" +
		"  one  o            First subcommand.\n" +
		"  two               Second subcommand.\n"
	if diff := cmp.Diff(want, Help[topLevel]([]string{"cmdname"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

type grinder struct {
	Force bool `argot_switch:"force" argot_help:"force the grind"`
}

func (grinder) CommandDescription() string { return "Destroy the contents of <file>." }

func (grinder) CommandExamples() []string {
	return []string{"Scribble 'abc' and then run |grind|.\n$ {command_name} -s 'abc' grind old.txt taxes.cp"}
}

func (grinder) CommandNotes() []string {
	return []string{"Use `{command_name}` only in front of <food>."}
}

func (grinder) CommandErrorCodes() []ErrorCode {
	return []ErrorCode{
		{Code: 2, Description: "The blade is too dull."},
		{Code: 3, Description: "Out of fuel."},
	}
}

func TestHelp_TrailingSections(t *testing.T) {
	t.Parallel()
	want := "Usage: grind [--force]\n" +
		"\n" +
		"Destroy the contents of <file>.\n" +
		"\n" +
		"Options:\n" +
		"  --force           force the grind\n" +
		"  --help, help      display usage information\n" +
		"\n" +
		"Examples:\n" +
		"  Scribble 'abc' and then run |grind|.\n" +
		"  $ grind -s 'abc' grind old.txt taxes.cp\n" +
		"\n" +
		"Notes:\n" +
		"  Use `grind` only in front of <food>.\n" +
		"\n" +
		"Error codes:\n" +
		"  2 The blade is too dull.\n" +
		"  3 Out of fuel.\n"
	if diff := cmp.Diff(want, Help[grinder]([]string{"grind"})); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

type wrappy struct {
	Force bool `argot_switch:"force" argot_short:"f" argot_help:"alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima mike november oscar papa"`
}

func (wrappy) CommandDescription() string { return "Wrappy." }

func TestHelp_DescriptionWraps(t *testing.T) {
	t.Parallel()
	got := Help[wrappy]([]string{"cmdname"})
	wantEntry := "  -f, --force       alpha bravo charlie delta echo foxtrot golf hotel india\n" +
		"                    juliett kilo lima mike november oscar papa\n"
	if !strings.Contains(got, wantEntry) {
		t.Fatalf("wrapped entry not found in:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len([]rune(line)) > 80 {
			t.Fatalf("line exceeds 80 columns: %q", line)
		}
	}
}

type longName struct {
	V bool `argot_switch:"extraordinarily-long" argot_help:"short text"`
}

func (longName) CommandDescription() string { return "Long." }

func TestHelp_LongNamePushesDescription(t *testing.T) {
	t.Parallel()
	got := Help[longName]([]string{"cmdname"})
	wantEntry := "  --extraordinarily-long\n" +
		"                    short text\n"
	if !strings.Contains(got, wantEntry) {
		t.Fatalf("pushed description not found in:\n%s", got)
	}
}

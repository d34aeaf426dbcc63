package argot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRedact_FlagsAsTyped(t *testing.T) {
	t.Parallel()
	got, err := RedactArgValues[goUp]([]string{"cmdname"}, []string{"-j", "--height", "5", "--pilot-nickname", "Wes"})
	if err != nil {
		t.Fatalf("RedactArgValues: %v", err)
	}
	want := []string{"cmdname", "-j", "--height", "--pilot-nickname"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redacted mismatch (-want +got):\n%s", diff)
	}
}

func TestRedact_PositionalNamesRepeat(t *testing.T) {
	t.Parallel()
	got, err := RedactArgValues[positionals]([]string{"cmdname"}, []string{"one", "two", "three", "four"})
	if err != nil {
		t.Fatalf("RedactArgValues: %v", err)
	}
	want := []string{"cmdname", "a", "b", "c", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redacted mismatch (-want +got):\n%s", diff)
	}
}

func TestRedact_SubcommandRecursion(t *testing.T) {
	t.Parallel()
	got, err := RedactArgValues[topLevel]([]string{"cmdname"}, []string{"--verbose", "o", "--fooey"})
	if err != nil {
		t.Fatalf("RedactArgValues: %v", err)
	}
	// The short alias resolves to the canonical name in the output.
	want := []string{"cmdname", "--verbose", "one", "--fooey"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redacted mismatch (-want +got):\n%s", diff)
	}
}

func TestRedact_SameErrorsAsParse(t *testing.T) {
	t.Parallel()
	_, err := RedactArgValues[goUp]([]string{"cmdname"}, []string{"--nope"})
	ee := parseErr(t, err)
	if want := "Unrecognized argument: --nope\n"; ee.Output != want {
		t.Fatalf("got %q want %q", ee.Output, want)
	}

	_, err = RedactArgValues[goUp]([]string{"cmdname"}, nil)
	ee = parseErr(t, err)
	if want := "Required options not provided:\n    --height\n"; ee.Output != want {
		t.Fatalf("got %q want %q", ee.Output, want)
	}
}

func TestRedact_EnvSatisfiesWithoutNames(t *testing.T) {
	t.Parallel()
	env := envMap(map[string]string{"GO_UP_HEIGHT": "30"})
	got, err := RedactArgValuesWithEnv[goUpEnv]([]string{"cmdname"}, nil, env)
	if err != nil {
		t.Fatalf("RedactArgValuesWithEnv: %v", err)
	}
	want := []string{"cmdname"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redacted mismatch (-want +got):\n%s", diff)
	}
}

func TestRedact_DynamicDefaultsToPathOnly(t *testing.T) {
	t.Parallel()
	got, err := RedactArgValues[tool]([]string{"cmdname"}, []string{"alpha", "--whatever", "x"})
	if err != nil {
		t.Fatalf("RedactArgValues: %v", err)
	}
	want := []string{"cmdname", "alpha"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redacted mismatch (-want +got):\n%s", diff)
	}
}

func TestRedact_HelpStillWins(t *testing.T) {
	t.Parallel()
	_, err := RedactArgValues[goUp]([]string{"cmdname"}, []string{"--help"})
	ee := parseErr(t, err)
	if ee.Code != 0 {
		t.Fatalf("help exit code got %d want 0", ee.Code)
	}
	if ee.Output != Help[goUp]([]string{"cmdname"}) {
		t.Fatal("redact help output differs from Help")
	}
}

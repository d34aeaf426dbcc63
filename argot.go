package argot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// EarlyExit carries text that should end the process instead of a
// parsed value: rendered help (Code 0, stdout) or a parse failure
// report (Code 1, stderr).
type EarlyExit struct {
	Output string
	Code   int
}

func (e *EarlyExit) Error() string { return e.Output }

// FromArgs parses args against the schema type T. path is the command
// name chain used for usage lines and subcommand paths; for a top-level
// command it is usually just the program name. The returned error, if
// any, is an *EarlyExit.
func FromArgs[T any](path []string, args []string) (*T, error) {
	return FromArgsWithEnv[T](path, args, nil)
}

// FromArgsWithEnv is FromArgs with an environment fallback: option
// fields tagged argot_env read lookupEnv when no token filled them.
// Command-line tokens always win. A nil lookupEnv disables the
// fallback.
func FromArgsWithEnv[T any](path []string, args []string, lookupEnv func(string) (string, bool)) (*T, error) {
	dest := new(T)
	sess := &session{mode: modeValues, lookupEnv: lookupEnv}
	s := sess.schemaFor(reflect.ValueOf(dest))
	if err := sess.run(s, path, args); err != nil {
		return nil, err
	}
	return dest, nil
}

// RedactArgValues replays args against the schema type T and returns
// argument names instead of values: the command name, then flag names
// as typed and positional names, in supplied order. Telemetry can
// record the result without capturing user input.
func RedactArgValues[T any](path []string, args []string) ([]string, error) {
	var zero T
	return redactType(reflect.TypeOf(zero), path, args, nil)
}

// RedactArgValuesWithEnv is RedactArgValues with the environment
// fallback applied: an env-filled option satisfies requirement checks
// but contributes no name to the output.
func RedactArgValuesWithEnv[T any](path []string, args []string, lookupEnv func(string) (string, bool)) ([]string, error) {
	var zero T
	return redactType(reflect.TypeOf(zero), path, args, lookupEnv)
}

// Parse is the process entry point: it parses os.Args for the schema
// type T with the environment fallback enabled, prints help to stdout
// or errors to stderr, and exits the process on either.
func Parse[T any]() *T {
	v, err := FromArgsWithEnv[T]([]string{programName()}, os.Args[1:], os.LookupEnv)
	if err != nil {
		exitEarly(err)
	}
	return v
}

func programName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "unknown"
	}
	return filepath.Base(os.Args[0])
}

func exitEarly(err error) {
	ee, ok := err.(*EarlyExit)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if ee.Code == 0 {
		fmt.Fprint(os.Stdout, ee.Output)
	} else {
		fmt.Fprint(os.Stderr, ee.Output)
	}
	os.Exit(ee.Code)
}

// Help renders the help text for the schema type T as if its help
// trigger had been supplied.
func Help[T any](path []string) string {
	var zero T
	sess := &session{mode: modeValues}
	s := sess.schemaFor(reflect.New(reflect.TypeOf(zero)))
	return s.helpText(path)
}

// Info returns the structured help metadata for the schema type T,
// including nested subcommands.
func Info[T any](path []string) *CmdInfo {
	var zero T
	return infoForType(reflect.TypeOf(zero), path)
}

// InfoJSON serializes the structured metadata. The output conforms to
// the schema checked by ValidateInfoJSON.
func InfoJSON[T any](path []string) ([]byte, error) {
	return json.MarshalIndent(Info[T](path), "", "  ")
}

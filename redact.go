package argot

import "reflect"

// redactType replays the scan for one command level in redact mode. The
// result starts with the level's own command name, followed by the
// names of every argument supplied, in encounter order and cardinality;
// user-typed values never appear.
func redactType(t reflect.Type, path, args []string, lookupEnv func(string) (string, bool)) ([]string, error) {
	out := []string{path[len(path)-1]}
	sess := &session{mode: modeRedact, lookupEnv: lookupEnv, redacted: &out}
	s := sess.schemaFor(reflect.New(t))
	if err := sess.run(s, path, args); err != nil {
		return nil, err
	}
	return out, nil
}

package argot

import (
	"fmt"
	"strings"
)

// run drives the token scan for one command level. path is the command
// name chain ending in this level's own name; it seeds usage lines and
// grows by one on every subcommand dispatch.
func (sess *session) run(s *schema, path, args []string) error {
	help := false
	optionsEnded := false
	dispatched := false
	posIndex := 0
	remaining := args

	for len(remaining) > 0 {
		next := remaining[0]
		remaining = remaining[1:]

		if optionsEnded {
			if err := sess.fillPositional(s, &posIndex, next, &optionsEnded); err != nil {
				return err
			}
			continue
		}
		if s.isHelpTrigger(next) {
			help = true
			continue
		}
		if strings.HasPrefix(next, "-") {
			if next == "--" {
				optionsEnded = true
				continue
			}
			if help {
				return &EarlyExit{Output: "Trailing arguments are not allowed after `help`.\n", Code: 1}
			}
			if err := sess.fillOption(s, next, &remaining); err != nil {
				return err
			}
			continue
		}
		if s.subcommand != nil {
			if entry := s.subcommand.match(next); entry != nil {
				if len(path) == 0 {
					panic("argot: subcommand dispatch without a command name")
				}
				childPath := append(append([]string(nil), path...), entry.name)
				childArgs := remaining
				if help {
					childArgs = append([]string{"help"}, remaining...)
					help = false
				}
				if err := sess.dispatch(entry, childPath, childArgs); err != nil {
					return err
				}
				dispatched = true
				remaining = nil
				continue
			}
		}
		if err := sess.fillPositional(s, &posIndex, next, &optionsEnded); err != nil {
			return err
		}
	}

	if help {
		return &EarlyExit{Output: s.helpText(path), Code: 0}
	}
	if err := sess.applyEnv(s); err != nil {
		return err
	}
	sess.applyDefaults(s)
	return s.checkRequirements(dispatched)
}

func (sess *session) dispatch(entry *subcommandEntry, path, args []string) error {
	if sess.mode == modeRedact {
		names, err := entry.redact(path, args)
		if err != nil {
			return err
		}
		*sess.redacted = append(*sess.redacted, names...)
		return nil
	}
	return entry.parse(path, args)
}

func (sess *session) fillOption(s *schema, arg string, remaining *[]string) error {
	spec, ok := s.lookup[arg]
	if !ok {
		return &EarlyExit{Output: "Unrecognized argument: " + arg + "\n", Code: 1}
	}
	if spec.kind == kindSwitch {
		spec.set(arg)
		return nil
	}
	if len(*remaining) == 0 {
		return &EarlyExit{Output: "No value provided for option '" + arg + "'.\n", Code: 1}
	}
	value := (*remaining)[0]
	*remaining = (*remaining)[1:]
	if err := spec.slot.fill(arg, value); err != nil {
		return &EarlyExit{
			Output: fmt.Sprintf("Error parsing option '%s' with value '%s': %v\n", arg, value, err),
			Code:   1,
		}
	}
	return nil
}

func (sess *session) fillPositional(s *schema, index *int, arg string, optionsEnded *bool) error {
	if *index >= len(s.positionals) {
		return &EarlyExit{Output: "Unrecognized argument: " + arg + "\n", Code: 1}
	}
	p := s.positionals[*index]
	if p.opt == optGreedy {
		// Everything after the first token captured greedily is content,
		// dashed or not.
		*optionsEnded = true
	}
	if err := p.slot.fill("", arg); err != nil {
		return &EarlyExit{
			Output: fmt.Sprintf("Error parsing positional argument '%s' with value '%s': %v\n", p.name, arg, err),
			Code:   1,
		}
	}
	if *index < len(s.positionals)-1 || !p.slot.repeating {
		*index++
	}
	return nil
}

func (sc *subcommandSpec) match(tok string) *subcommandEntry {
	for _, e := range sc.static {
		if e.matches(tok) {
			return e
		}
	}
	for _, e := range sc.dynamicEntries() {
		if e.matches(tok) {
			return e
		}
	}
	return nil
}

// applyEnv fills still-empty option slots from their declared
// environment variables. Command-line tokens always win; the fallback
// runs once, just before requirement checking.
func (sess *session) applyEnv(s *schema) error {
	if sess.lookupEnv == nil {
		return nil
	}
	for _, f := range s.flags {
		if f.kind != kindOption || f.envVar == "" || f.slot.count > 0 {
			continue
		}
		value, ok := sess.lookupEnv(f.envVar)
		if !ok {
			continue
		}
		if sess.mode == modeRedact {
			f.slot.markFilled()
			continue
		}
		if err := f.slot.fill(f.long, value); err != nil {
			return &EarlyExit{
				Output: fmt.Sprintf("Error parsing option '%s' with value '%s': %v\n", f.long, value, err),
				Code:   1,
			}
		}
	}
	return nil
}

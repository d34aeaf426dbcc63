package argot

import (
	"fmt"
	"reflect"
	"strings"
)

// Schema derivation: the mechanical translation from an annotated struct
// type to the descriptor tables the scanner consumes. Field roles are
// declared with argot_* struct tags; cardinality comes from the field's
// Go type (T required, *T optional, []T repeating, argot_default makes a
// plain field defaulted).

type parseMode int

const (
	modeValues parseMode = iota
	modeRedact
)

// session owns the mutable state of one parse invocation: the binding
// mode, the injected environment lookup, and (in redact mode) the name
// collector. The derived schema's slots are bound to it.
type session struct {
	mode      parseMode
	lookupEnv func(string) (string, bool)
	redacted  *[]string
}

// schemaFor derives the schema for destPtr, a pointer to a schema
// struct. Invalid tag combinations are programming errors and panic with
// a consolidated report.
func (sess *session) schemaFor(destPtr reflect.Value) *schema {
	t := destPtr.Type().Elem()
	if err := validateTags(t); err != nil {
		panic(err)
	}

	s := &schema{
		helpTriggers: []string{"--help", "help"},
		lookup:       map[string]*flagSpec{},
	}

	inst := destPtr.Interface()
	if d, ok := inst.(Described); ok {
		s.description = d.CommandDescription()
	}
	if e, ok := inst.(WithExamples); ok {
		s.examples = e.CommandExamples()
	}
	if n, ok := inst.(WithNotes); ok {
		s.notes = n.CommandNotes()
	}
	if c, ok := inst.(WithErrorCodes); ok {
		s.errorCodes = c.CommandErrorCodes()
	}
	if h, ok := inst.(WithHelpTriggers); ok {
		s.helpTriggers = h.HelpTriggers()
	}

	walkStruct(destPtr.Elem(), func(sf reflect.StructField, fv reflect.Value) {
		switch {
		case hasTag(sf, "argot_switch"):
			s.addFlag(sess.deriveSwitch(sf, fv))
		case hasTag(sf, "argot_option"):
			s.addFlag(sess.deriveOption(sf, fv))
		case hasTag(sf, "argot_positional"):
			s.positionals = append(s.positionals, sess.derivePositional(sf, fv))
		case hasTag(sf, "argot_subcommand"):
			s.subcommand = sess.deriveSubcommand(sf, fv)
		}
	})

	return s
}

func (s *schema) addFlag(f *flagSpec) {
	s.flags = append(s.flags, f)
	for _, tok := range f.tokens() {
		s.lookup[tok] = f
	}
}

func hasTag(sf reflect.StructField, key string) bool {
	_, ok := sf.Tag.Lookup(key)
	return ok
}

func (sess *session) deriveSwitch(sf reflect.StructField, fv reflect.Value) *flagSpec {
	f := flagCommon(sf, kindSwitch)
	f.opt = optOptional
	switch sess.mode {
	case modeRedact:
		f.set = func(arg string) {
			*sess.redacted = append(*sess.redacted, arg)
		}
	default:
		f.set = func(string) { setSwitch(fv) }
	}
	return f
}

func (sess *session) deriveOption(sf reflect.StructField, fv reflect.Value) *flagSpec {
	f := flagCommon(sf, kindOption)
	f.opt = fieldOptionality(sf)
	f.envVar = sf.Tag.Get("argot_env")
	f.defaultRaw = sf.Tag.Get("argot_default")
	if f.argName == "" {
		f.argName = sf.Tag.Get("argot_option")
	}
	f.slot = sess.bindSlot(sf, fv, f.opt, func() string { return "" })
	if sess.mode == modeRedact {
		f.slot.store = func(arg, _ string) error {
			*sess.redacted = append(*sess.redacted, arg)
			return nil
		}
	}
	return f
}

func (sess *session) derivePositional(sf reflect.StructField, fv reflect.Value) *positionalSpec {
	p := &positionalSpec{
		name:       sf.Tag.Get("argot_positional"),
		help:       sf.Tag.Get("argot_help"),
		hidden:     sf.Tag.Get("argot_hidden") == "true",
		defaultRaw: sf.Tag.Get("argot_default"),
	}
	if label := sf.Tag.Get("argot_arg_name"); label != "" {
		p.name = label
	}
	p.opt = fieldOptionality(sf)
	if sf.Tag.Get("argot_greedy") == "true" {
		p.opt = optGreedy
	}
	p.slot = sess.bindSlot(sf, fv, p.opt, func() string { return p.name })
	return p
}

// bindSlot builds the value slot for an option or positional field. The
// redact binding records name() instead of coercing; note that option
// specs overwrite store afterwards to record the flag as spelled.
func (sess *session) bindSlot(sf reflect.StructField, fv reflect.Value, opt optionality, name func() string) *valueSlot {
	slot := &valueSlot{
		repeating: opt == optRepeating || opt == optRepeatingRequired || opt == optGreedy,
	}
	if sess.mode == modeRedact {
		slot.store = func(_, _ string) error {
			*sess.redacted = append(*sess.redacted, name())
			return nil
		}
		return slot
	}
	slot.store = func(_, value string) error { return setValue(fv, value) }
	return slot
}

func flagCommon(sf reflect.StructField, kind flagKind) *flagSpec {
	key := "argot_switch"
	if kind == kindOption {
		key = "argot_option"
	}
	f := &flagSpec{
		kind:    kind,
		long:    "--" + sf.Tag.Get(key),
		help:    sf.Tag.Get("argot_help"),
		argName: sf.Tag.Get("argot_arg_name"),
		hidden:  sf.Tag.Get("argot_hidden") == "true",
	}
	if short := sf.Tag.Get("argot_short"); short != "" {
		f.short = "-" + short
	}
	for _, syn := range splitSynonyms(sf.Tag.Get("argot_synonyms")) {
		f.synonyms = append(f.synonyms, "--"+syn)
	}
	return f
}

func fieldOptionality(sf reflect.StructField) optionality {
	switch sf.Type.Kind() {
	case reflect.Slice:
		if sf.Tag.Get("argot_required") == "true" {
			return optRepeatingRequired
		}
		return optRepeating
	case reflect.Pointer:
		return optOptional
	}
	if _, ok := sf.Tag.Lookup("argot_default"); ok {
		return optDefaulted
	}
	return optRequired
}

// deriveSubcommand builds the dispatch table from a union struct: each
// exported *C field is a static entry, an argot_dynamic field supplies
// run-time entries through the DynamicSubcommands capability.
func (sess *session) deriveSubcommand(sf reflect.StructField, fv reflect.Value) *subcommandSpec {
	ut := sf.Type
	spec := &subcommandSpec{optional: ut.Kind() == reflect.Pointer}
	if spec.optional {
		ut = ut.Elem()
	}

	// union returns the settable union struct value, allocating the
	// optional pointer on first dispatch.
	union := func() reflect.Value {
		if spec.optional {
			if fv.IsNil() {
				fv.Set(reflect.New(ut))
			}
			return fv.Elem()
		}
		return fv
	}

	for i := 0; i < ut.NumField(); i++ {
		uf := ut.Field(i)
		if uf.PkgPath != "" {
			continue
		}
		if uf.Tag.Get("argot_dynamic") == "true" {
			idx := i
			spec.dynamic = func() []*subcommandEntry {
				return sess.dynamicEntriesFor(uf.Type, func() reflect.Value { return union().Field(idx) })
			}
			continue
		}
		spec.static = append(spec.static, sess.staticEntry(uf, union, i))
	}
	return spec
}

func (sess *session) staticEntry(uf reflect.StructField, union func() reflect.Value, idx int) *subcommandEntry {
	ct := uf.Type.Elem() // validated: uf.Type is *C
	inst := reflect.New(ct).Interface().(Subcommand)

	e := &subcommandEntry{
		name:        inst.CommandName(),
		description: inst.CommandDescription(),
	}
	if s, ok := inst.(ShortNamed); ok {
		e.short = s.CommandShortName()
	}
	if s, ok := inst.(SynonymNamed); ok {
		e.synonyms = s.CommandSynonyms()
	}

	e.parse = func(path, args []string) error {
		child := reflect.New(ct)
		childSess := &session{mode: modeValues, lookupEnv: sess.lookupEnv}
		if err := childSess.run(childSess.schemaFor(child), path, args); err != nil {
			return err
		}
		union().Field(idx).Set(child)
		return nil
	}
	e.redact = func(path, args []string) ([]string, error) {
		return redactType(ct, path, args, sess.lookupEnv)
	}
	e.info = func(path []string) *CmdInfo {
		return infoForType(ct, path)
	}
	return e
}

func (sess *session) dynamicEntriesFor(ft reflect.Type, field func() reflect.Value) []*subcommandEntry {
	et := ft.Elem() // validated: ft is *D with *D implementing DynamicSubcommands
	probe := reflect.New(et).Interface().(DynamicSubcommands)

	var entries []*subcommandEntry
	for _, info := range probe.DynamicCommands() {
		e := &subcommandEntry{name: info.Name, description: info.Description}
		e.parse = func(path, args []string) error {
			inst := reflect.New(et)
			if err := inst.Interface().(DynamicSubcommands).ParseDynamicArgs(path, args); err != nil {
				return err
			}
			field().Set(inst)
			return nil
		}
		e.redact = func(path, args []string) ([]string, error) {
			inst := reflect.New(et).Interface()
			if r, ok := inst.(DynamicRedactor); ok {
				return r.RedactDynamicArgs(path, args)
			}
			return []string{path[len(path)-1]}, nil
		}
		entries = append(entries, e)
	}
	return entries
}

// walkStruct visits exported fields in declaration order, descending
// into anonymous embedded structs. Embeds are followed even when the
// embedded type itself is unexported; Go reports a PkgPath for those, so
// the anonymous check has to come first.
func walkStruct(v reflect.Value, visit func(sf reflect.StructField, fv reflect.Value)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			fv := v.Field(i)
			switch fv.Kind() {
			case reflect.Struct:
				walkStruct(fv, visit)
			case reflect.Pointer:
				if fv.Type().Elem().Kind() == reflect.Struct {
					if fv.IsNil() {
						fv.Set(reflect.New(fv.Type().Elem()))
					}
					walkStruct(fv.Elem(), visit)
				}
			}
			continue
		}
		if sf.PkgPath != "" {
			continue
		}
		visit(sf, v.Field(i))
	}
}

// applyDefaults resolves defaulted slots left empty by the scan and the
// environment fallback. Literals were test-coerced at validation time,
// so a failure here is unreachable.
func (sess *session) applyDefaults(s *schema) {
	if sess.mode != modeValues {
		return
	}
	for _, f := range s.flags {
		if f.kind == kindOption && f.opt == optDefaulted && f.slot.count == 0 {
			if err := f.slot.fill(f.long, f.defaultRaw); err != nil {
				panic(fmt.Sprintf("argot: default for %s: %v", f.long, err))
			}
		}
	}
	for _, p := range s.positionals {
		if p.opt == optDefaulted && p.slot.count == 0 {
			if err := p.slot.fill("", p.defaultRaw); err != nil {
				panic(fmt.Sprintf("argot: default for %s: %v", p.name, err))
			}
		}
	}
}

// splitSynonyms parses the pipe-separated argot_synonyms tag value.
func splitSynonyms(tag string) []string {
	if tag == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(tag, "|") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

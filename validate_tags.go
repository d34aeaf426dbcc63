package argot

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	subcommandIface = reflect.TypeOf((*Subcommand)(nil)).Elem()
	dynamicIface    = reflect.TypeOf((*DynamicSubcommands)(nil)).Elem()
)

// validateTags checks a schema struct type for tag mistakes before any
// scanning happens. All problems are collected into one report; a nil
// return guarantees derivation and default resolution cannot fail.
func validateTags(t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("argot: schema type %s is not a struct", t)
	}

	var errs []string
	fail := func(format string, a ...any) {
		errs = append(errs, fmt.Sprintf(format, a...))
	}

	seenTokens := map[string]string{} // token -> field name
	claimToken := func(field, tok string) {
		if prev, ok := seenTokens[tok]; ok {
			fail("%s: field %q reuses flag %q already taken by field %q", t, field, tok, prev)
			return
		}
		seenTokens[tok] = field
	}

	sawOptionalPositional := false
	sawTailPositional := false
	subcommandFields := 0

	walkType(t, func(sf reflect.StructField) {
		roles := 0
		for _, key := range []string{"argot_switch", "argot_option", "argot_positional", "argot_subcommand"} {
			if hasTag(sf, key) {
				roles++
			}
		}
		if roles == 0 {
			for _, key := range []string{"argot_short", "argot_synonyms", "argot_arg_name", "argot_env", "argot_default", "argot_greedy", "argot_required", "argot_hidden"} {
				if hasTag(sf, key) {
					fail("%s: field %q has %s but no role tag", t, sf.Name, key)
				}
			}
			return
		}
		if roles > 1 {
			fail("%s: field %q mixes multiple role tags", t, sf.Name)
			return
		}

		switch {
		case hasTag(sf, "argot_switch"):
			validateSwitch(t, sf, fail, claimToken)
		case hasTag(sf, "argot_option"):
			validateOption(t, sf, fail, claimToken)
		case hasTag(sf, "argot_positional"):
			validatePositional(t, sf, fail, &sawOptionalPositional, &sawTailPositional)
		case hasTag(sf, "argot_subcommand"):
			subcommandFields++
			if subcommandFields > 1 {
				fail("%s: field %q declares a second argot_subcommand", t, sf.Name)
				return
			}
			validateSubcommandUnion(t, sf, fail)
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("argot: invalid schema %s:\n%s", t, strings.Join(errs, "\n"))
}

func validateSwitch(t reflect.Type, sf reflect.StructField, fail func(string, ...any), claim func(field, tok string)) {
	name := sf.Tag.Get("argot_switch")
	if name == "" {
		fail("%s: field %q has empty argot_switch", t, sf.Name)
		return
	}
	if !switchable(sf.Type) {
		fail("%s: switch field %q must be a bool or integer counter, got %s", t, sf.Name, sf.Type)
	}
	requireHelp(t, sf, fail)
	for _, key := range []string{"argot_default", "argot_env", "argot_arg_name", "argot_greedy", "argot_required"} {
		if hasTag(sf, key) {
			fail("%s: switch field %q cannot carry %s", t, sf.Name, key)
		}
	}
	claim(sf.Name, "--"+name)
	claimShortAndSynonyms(sf, claim)
}

func validateOption(t reflect.Type, sf reflect.StructField, fail func(string, ...any), claim func(field, tok string)) {
	name := sf.Tag.Get("argot_option")
	if name == "" {
		fail("%s: field %q has empty argot_option", t, sf.Name)
		return
	}
	if !coercible(sf.Type) {
		fail("%s: option field %q has unsupported type %s", t, sf.Name, sf.Type)
		return
	}
	requireHelp(t, sf, fail)
	if hasTag(sf, "argot_greedy") {
		fail("%s: option field %q cannot be greedy", t, sf.Name)
	}
	if hasTag(sf, "argot_required") && sf.Type.Kind() != reflect.Slice {
		fail("%s: field %q: argot_required applies only to repeating (slice) fields", t, sf.Name)
	}
	validateDefault(t, sf, fail)
	claim(sf.Name, "--"+name)
	claimShortAndSynonyms(sf, claim)
}

// Every declared argument carries a description; help output depends
// on it.
func requireHelp(t reflect.Type, sf reflect.StructField, fail func(string, ...any)) {
	if sf.Tag.Get("argot_help") == "" {
		fail("%s: field %q missing argot_help", t, sf.Name)
	}
}

func claimShortAndSynonyms(sf reflect.StructField, claim func(field, tok string)) {
	if short := sf.Tag.Get("argot_short"); short != "" {
		claim(sf.Name, "-"+short)
	}
	for _, syn := range splitSynonyms(sf.Tag.Get("argot_synonyms")) {
		claim(sf.Name, "--"+syn)
	}
}

func validatePositional(t reflect.Type, sf reflect.StructField, fail func(string, ...any), sawOptional, sawTail *bool) {
	if sf.Tag.Get("argot_positional") == "" {
		fail("%s: field %q has empty argot_positional", t, sf.Name)
		return
	}
	if !coercible(sf.Type) {
		fail("%s: positional field %q has unsupported type %s", t, sf.Name, sf.Type)
		return
	}
	requireHelp(t, sf, fail)
	for _, key := range []string{"argot_short", "argot_synonyms", "argot_env"} {
		if hasTag(sf, key) {
			fail("%s: positional field %q cannot carry %s", t, sf.Name, key)
		}
	}
	if *sawTail {
		fail("%s: positional field %q follows a repeating or greedy positional", t, sf.Name)
	}
	greedy := sf.Tag.Get("argot_greedy") == "true"
	if greedy && sf.Type.Kind() != reflect.Slice {
		fail("%s: greedy positional field %q must be a slice, got %s", t, sf.Name, sf.Type)
	}
	opt := fieldOptionality(sf)
	if greedy {
		opt = optGreedy
	}
	switch opt {
	case optRequired:
		if *sawOptional {
			fail("%s: required positional field %q follows an optional one", t, sf.Name)
		}
	case optOptional, optDefaulted:
		*sawOptional = true
	case optRepeating, optRepeatingRequired, optGreedy:
		*sawTail = true
	}
	validateDefault(t, sf, fail)
}

// validateDefault test-coerces the argot_default literal into a scratch
// value so the real resolution after scanning cannot fail.
func validateDefault(t reflect.Type, sf reflect.StructField, fail func(string, ...any)) {
	lit, ok := sf.Tag.Lookup("argot_default")
	if !ok {
		return
	}
	switch sf.Type.Kind() {
	case reflect.Pointer, reflect.Slice:
		fail("%s: field %q: argot_default applies only to plain scalar fields", t, sf.Name)
		return
	}
	scratch := reflect.New(sf.Type).Elem()
	if err := setValue(scratch, lit); err != nil {
		fail("%s: field %q: default %q does not parse: %v", t, sf.Name, lit, err)
	}
}

func validateSubcommandUnion(t reflect.Type, sf reflect.StructField, fail func(string, ...any)) {
	ut := sf.Type
	if ut.Kind() == reflect.Pointer {
		ut = ut.Elem()
	}
	if ut.Kind() != reflect.Struct {
		fail("%s: subcommand field %q must be a struct or pointer to struct, got %s", t, sf.Name, sf.Type)
		return
	}

	dynamics := 0
	seenNames := map[string]string{}
	for i := 0; i < ut.NumField(); i++ {
		uf := ut.Field(i)
		if uf.PkgPath != "" {
			fail("%s: subcommand union %s has unexported field %q", t, ut, uf.Name)
			continue
		}
		if uf.Tag.Get("argot_dynamic") == "true" {
			dynamics++
			if dynamics > 1 {
				fail("%s: subcommand union %s declares a second argot_dynamic field", t, ut)
				continue
			}
			if uf.Type.Kind() != reflect.Pointer || !uf.Type.Implements(dynamicIface) {
				fail("%s: dynamic field %q must be a pointer type implementing DynamicSubcommands", t, uf.Name)
			}
			continue
		}
		if uf.Type.Kind() != reflect.Pointer || uf.Type.Elem().Kind() != reflect.Struct {
			fail("%s: subcommand union %s field %q must be a pointer to struct", t, ut, uf.Name)
			continue
		}
		if !uf.Type.Implements(subcommandIface) {
			fail("%s: subcommand union %s field %q (%s) does not implement Subcommand", t, ut, uf.Name, uf.Type)
			continue
		}
		name := reflect.New(uf.Type.Elem()).Interface().(Subcommand).CommandName()
		if name == "" {
			fail("%s: subcommand type %s returns an empty CommandName", t, uf.Type.Elem())
			continue
		}
		if prev, ok := seenNames[name]; ok {
			fail("%s: subcommand union %s declares %q twice (fields %q and %q)", t, ut, name, prev, uf.Name)
			continue
		}
		seenNames[name] = uf.Name
	}
}

// walkType mirrors walkStruct for bare types, descending into anonymous
// embedded structs. Anonymous is checked before the unexported-field
// skip: an embedded unexported type carries a PkgPath too.
func walkType(t reflect.Type, visit func(sf reflect.StructField)) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				walkType(et, visit)
			}
			continue
		}
		if sf.PkgPath != "" {
			continue
		}
		visit(sf)
	}
}

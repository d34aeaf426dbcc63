package argot

// The descriptor tables below are what the scanning loop actually
// consumes. They are derived mechanically from struct tags (tags.go) and
// never mutated after derivation; all per-parse state lives in the slots
// and in local variables of the scan.

type flagKind int

const (
	kindSwitch flagKind = iota
	kindOption
)

type optionality int

const (
	optRequired optionality = iota
	optOptional
	optDefaulted
	optRepeating
	optRepeatingRequired
	optGreedy
)

// isRequired reports whether absence at end of scan is a deficiency.
func (o optionality) isRequired() bool {
	return o == optRequired || o == optRepeatingRequired
}

// rendersOptional reports whether usage text wraps the item in brackets.
func (o optionality) rendersOptional() bool {
	return !o.isRequired()
}

func (o optionality) String() string {
	switch o {
	case optOptional, optDefaulted:
		return "optional"
	case optRepeating:
		return "repeating"
	case optGreedy:
		return "greedy"
	default:
		return "required"
	}
}

type flagSpec struct {
	kind     flagKind
	long     string   // canonical token, e.g. "--height"
	short    string   // "-j" or ""
	synonyms []string // additional long tokens
	opt      optionality
	help     string
	argName  string // value label, options only
	envVar   string // environment fallback, options only
	hidden   bool

	defaultRaw string // literal for optDefaulted

	set  func(arg string) // switches
	slot *valueSlot       // options
}

// tokens returns every spelling that resolves to this flag.
func (f *flagSpec) tokens() []string {
	ts := make([]string, 0, 2+len(f.synonyms))
	ts = append(ts, f.long)
	if f.short != "" {
		ts = append(ts, f.short)
	}
	ts = append(ts, f.synonyms...)
	return ts
}

type positionalSpec struct {
	name       string
	help       string
	opt        optionality
	hidden     bool
	defaultRaw string // literal for optDefaulted
	slot       *valueSlot
}

type subcommandEntry struct {
	name        string
	short       string
	synonyms    []string
	description string

	// parse consumes the child's tokens; its result is the result of the
	// whole invocation. path already ends in the canonical name.
	parse func(path []string, args []string) error
	// redact mirrors parse for RedactArgValues.
	redact func(path []string, args []string) ([]string, error)
	// info renders the child's structured metadata; nil for dynamic
	// entries beyond name and description.
	info func(path []string) *CmdInfo
}

func (e *subcommandEntry) matches(tok string) bool {
	if tok == e.name || (e.short != "" && tok == e.short) {
		return true
	}
	for _, s := range e.synonyms {
		if tok == s {
			return true
		}
	}
	return false
}

type subcommandSpec struct {
	optional bool
	static   []*subcommandEntry
	// dynamic yields run-time entries; queried lazily, once per session.
	dynamic func() []*subcommandEntry

	queried bool
	cached  []*subcommandEntry
}

// dynamicEntries resolves and caches the dynamic descriptor set.
func (sc *subcommandSpec) dynamicEntries() []*subcommandEntry {
	if sc.dynamic == nil {
		return nil
	}
	if !sc.queried {
		sc.cached = sc.dynamic()
		sc.queried = true
	}
	return sc.cached
}

type schema struct {
	description  string
	helpTriggers []string
	examples     []string
	notes        []string
	errorCodes   []ErrorCode

	flags       []*flagSpec
	positionals []*positionalSpec
	subcommand  *subcommandSpec

	// lookup maps every flag spelling to its spec. Exact match only: no
	// prefix matching and no "--flag=value" splitting.
	lookup map[string]*flagSpec
}

func (s *schema) isHelpTrigger(tok string) bool {
	for _, t := range s.helpTriggers {
		if tok == t {
			return true
		}
	}
	return false
}

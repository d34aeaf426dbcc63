package argot

// Subcommand must be implemented by every type used as a subcommand of a
// schema struct. The name is the token users type; the description shows
// up in the parent's Commands block.
type Subcommand interface {
	CommandName() string
	CommandDescription() string
}

// ShortNamed optionally gives a subcommand a single-token short alias,
// interchangeable with the canonical name everywhere.
type ShortNamed interface {
	CommandShortName() string
}

// SynonymNamed optionally gives a subcommand additional names.
type SynonymNamed interface {
	CommandSynonyms() []string
}

// Described supplies the description paragraph of a schema type. Top-level
// schema structs may implement it; subcommand types already do via
// Subcommand.
type Described interface {
	CommandDescription() string
}

// WithExamples, WithNotes and WithErrorCodes supply the optional trailing
// help sections. Example and note text may contain the {command_name}
// placeholder, replaced with the space-joined command path at render time.
type WithExamples interface {
	CommandExamples() []string
}

type WithNotes interface {
	CommandNotes() []string
}

type WithErrorCodes interface {
	CommandErrorCodes() []ErrorCode
}

// WithHelpTriggers overrides the set of tokens that activate help mode
// for a schema type. The default is {"--help", "help"}.
type WithHelpTriggers interface {
	HelpTriggers() []string
}

// ErrorCode documents one process exit code in help output. It is purely
// descriptive; the parser never signals through these codes.
type ErrorCode struct {
	Code        int
	Description string
}

// CommandInfo names one command provided at run time by a
// DynamicSubcommands implementation.
type CommandInfo struct {
	Name        string
	Description string
}

// DynamicSubcommands is the capability interface for subcommands that are
// not known at schema-definition time. The pointer element type of a
// union field tagged argot_dynamic must implement it.
//
// DynamicCommands is queried lazily, at most once per parse session.
// ParseDynamicArgs receives the full command path (ending in the matched
// name) and the remaining tokens, and fills the receiver.
type DynamicSubcommands interface {
	DynamicCommands() []CommandInfo
	ParseDynamicArgs(commandName []string, args []string) error
}

// DynamicRedactor may additionally be implemented by a dynamic subcommand
// type to support RedactArgValues. Without it, redaction of a dynamic
// dispatch reports only the command path.
type DynamicRedactor interface {
	RedactDynamicArgs(commandName []string, args []string) ([]string, error)
}

// Value is implemented by field types that parse their own command-line
// representation, overriding the built-in coercion. Fields may also
// implement encoding.TextUnmarshaler to the same effect.
type Value interface {
	UnmarshalArg(value string) error
}

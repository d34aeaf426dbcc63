// Package argot derives command-line argument parsers from annotated
// struct types.
//
// A schema struct declares its arguments with argot_* tags; field types
// determine cardinality (a plain field is required, a pointer optional,
// a slice repeating):
//
//	type GoUp struct {
//		// whether to jump
//		Jump bool `argot_switch:"jump" argot_short:"j" argot_help:"whether to jump"`
//
//		// how high to go
//		Height int `argot_option:"height" argot_help:"how high to go"`
//
//		// an optional nickname for the pilot
//		PilotNickname *string `argot_option:"pilot-nickname" argot_help:"an optional nickname for the pilot"`
//	}
//
//	func (GoUp) CommandDescription() string { return "Reach new heights." }
//
//	up := argot.Parse[GoUp]()
//
// Parse reads the process arguments, applies the environment fallback
// for argot_env-tagged options, and on --help or a parse error prints
// the appropriate text and exits. FromArgs exposes the same parse as a
// plain function for tests and embedding.
//
// Option values are separate tokens: --height 5 works, --height=5 does
// not. A bare -- ends flag processing; later tokens are positional
// content even when dash-prefixed.
//
// Subcommands are structs implementing Subcommand, collected in a union
// struct referenced by an argot_subcommand field. Dynamic command sets
// plug in through the DynamicSubcommands capability. RedactArgValues
// replays a token stream into argument names only, for telemetry.
package argot

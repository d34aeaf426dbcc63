package argot

import (
	"fmt"
	"reflect"
	"strings"
)

// Structured help metadata: the same information as the rendered help
// text, exposed as data for reference-documentation tooling. Hidden
// fields are present here, flagged, unlike in the text rendering.

type CmdInfo struct {
	Name        string           `json:"name"`
	Usage       string           `json:"usage"`
	Description string           `json:"description"`
	Flags       []FlagInfo       `json:"flags"`
	Positional  []PositionalInfo `json:"positional"`
	Examples    string           `json:"examples"`
	Notes       string           `json:"notes"`
	ErrorCodes  []ErrorCodeInfo  `json:"error_codes"`
	Subcommands []*CmdInfo       `json:"subcommands"`
}

type FlagInfo struct {
	Short       string `json:"short"`
	Long        string `json:"long"`
	Description string `json:"description"`
	ArgName     string `json:"arg_name"`
	Optionality string `json:"optionality"`
	Hidden      bool   `json:"hidden,omitempty"`
}

type PositionalInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Optionality string `json:"optionality"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// ErrorCodeInfo carries one documented exit code; Name holds the
// decimal code.
type ErrorCodeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// infoForType derives the metadata tree for a schema type rooted at
// path. A scratch instance backs the derivation; no user values are
// involved.
func infoForType(t reflect.Type, path []string) *CmdInfo {
	sess := &session{mode: modeValues}
	s := sess.schemaFor(reflect.New(t))
	return s.info(path)
}

func (s *schema) info(path []string) *CmdInfo {
	commandName := strings.Join(path, " ")
	name := ""
	if len(path) > 0 {
		name = path[len(path)-1]
	}

	info := &CmdInfo{
		Name:        name,
		Usage:       s.usageString(path),
		Description: strings.ReplaceAll(s.description, "{command_name}", commandName),
		Flags:       []FlagInfo{},
		Positional:  []PositionalInfo{},
		Examples:    strings.ReplaceAll(strings.Join(s.examples, "\n"), "{command_name}", commandName),
		Notes:       strings.ReplaceAll(strings.Join(s.notes, "\n"), "{command_name}", commandName),
		ErrorCodes:  []ErrorCodeInfo{},
		Subcommands: []*CmdInfo{},
	}

	for _, f := range s.flags {
		fi := FlagInfo{
			Short:       strings.TrimPrefix(f.short, "-"),
			Long:        f.long,
			Description: f.help,
			Optionality: f.opt.String(),
			Hidden:      f.hidden,
		}
		if f.kind == kindOption {
			fi.ArgName = f.argName
		}
		info.Flags = append(info.Flags, fi)
	}
	// The implicit help flag is part of the contract and always last.
	info.Flags = append(info.Flags, FlagInfo{
		Long:        "--help",
		Description: helpDescription,
		Optionality: "optional",
	})

	for _, p := range s.positionals {
		info.Positional = append(info.Positional, PositionalInfo{
			Name:        p.name,
			Description: p.help,
			Optionality: p.opt.String(),
			Hidden:      p.hidden,
		})
	}

	for _, ec := range s.errorCodes {
		info.ErrorCodes = append(info.ErrorCodes, ErrorCodeInfo{
			Name:        fmt.Sprintf("%d", ec.Code),
			Description: ec.Description,
		})
	}

	if s.subcommand != nil {
		for _, e := range s.subcommand.allEntries() {
			childPath := append(append([]string(nil), path...), e.name)
			if e.info != nil {
				info.Subcommands = append(info.Subcommands, e.info(childPath))
				continue
			}
			// Dynamic entries expose only what the provider reports.
			info.Subcommands = append(info.Subcommands, &CmdInfo{
				Name:        e.name,
				Usage:       strings.Join(childPath, " "),
				Description: e.description,
				Flags:       []FlagInfo{},
				Positional:  []PositionalInfo{},
				ErrorCodes:  []ErrorCodeInfo{},
				Subcommands: []*CmdInfo{},
			})
		}
	}

	return info
}

package argot

import (
	"fmt"
	"strings"
)

// Help text layout: entries start two columns in, descriptions start at
// column twenty and wrap at eighty, long entry names push the
// description to the next line.
const (
	helpIndent      = "  "
	descriptionCol  = 20
	wrapWidth       = 80
	sectionSep      = "\n\n"
	helpDescription = "display usage information"
)

// helpText renders the human-readable help for one command level. path
// is the command name chain; hidden fields are omitted entirely.
func (s *schema) helpText(path []string) string {
	commandName := strings.Join(path, " ")

	var out strings.Builder
	out.WriteString("Usage: " + commandName)
	writeUsageArgs(&out, s)

	out.WriteString(sectionSep)
	out.WriteString(s.description)

	if s.anyVisiblePositional() {
		out.WriteString(sectionSep)
		out.WriteString("Positional Arguments:")
		for _, p := range s.positionals {
			if p.hidden {
				continue
			}
			writeDescription(&out, p.name, p.help)
		}
	}

	out.WriteString(sectionSep)
	out.WriteString("Options:")
	for _, f := range s.flags {
		if f.hidden {
			continue
		}
		writeDescription(&out, f.label(), f.help)
	}
	writeDescription(&out, strings.Join(s.helpTriggers, ", "), helpDescription)

	if s.subcommand != nil {
		out.WriteString(sectionSep)
		out.WriteString("Commands:")
		for _, e := range s.subcommand.allEntries() {
			name := e.name
			if e.short != "" {
				name += "  " + e.short
			}
			writeDescription(&out, name, e.description)
		}
	}

	writeHelpSection(&out, commandName, "Examples:", s.examples)
	writeHelpSection(&out, commandName, "Notes:", s.notes)

	if len(s.errorCodes) > 0 {
		out.WriteString(sectionSep)
		out.WriteString("Error codes:")
		for _, ec := range s.errorCodes {
			out.WriteString("\n" + helpIndent)
			fmt.Fprintf(&out, "%d %s", ec.Code, ec.Description)
		}
	}

	out.WriteString("\n")
	return out.String()
}

// usageString is the one-line usage form, shared by the text renderer
// and the structured metadata.
func (s *schema) usageString(path []string) string {
	var out strings.Builder
	out.WriteString(strings.Join(path, " "))
	writeUsageArgs(&out, s)
	return out.String()
}

func writeUsageArgs(out *strings.Builder, s *schema) {
	for _, p := range s.positionals {
		if p.hidden {
			continue
		}
		out.WriteString(" ")
		writePositionalUsage(out, p)
	}
	for _, f := range s.flags {
		if f.hidden {
			continue
		}
		out.WriteString(" ")
		writeFlagUsage(out, f)
	}
	if s.subcommand != nil {
		out.WriteString(" ")
		if s.subcommand.optional {
			out.WriteString("[<command>]")
		} else {
			out.WriteString("<command>")
		}
		out.WriteString(" [<args>]")
	}
}

func writePositionalUsage(out *strings.Builder, p *positionalSpec) {
	if p.opt.rendersOptional() {
		out.WriteString("[")
	}
	out.WriteString("<" + p.name)
	if p.slot != nil && p.slot.repeating {
		out.WriteString("...")
	}
	out.WriteString(">")
	if p.opt.rendersOptional() {
		out.WriteString("]")
	}
}

func writeFlagUsage(out *strings.Builder, f *flagSpec) {
	if f.opt.rendersOptional() {
		out.WriteString("[")
	}
	if f.short != "" {
		out.WriteString(f.short)
	} else {
		out.WriteString(f.long)
	}
	if f.kind == kindOption {
		out.WriteString(" <" + f.argName)
		if f.slot.repeating {
			out.WriteString("...")
		}
		out.WriteString(">")
	}
	if f.opt.rendersOptional() {
		out.WriteString("]")
	}
}

// label is the name column of a flag's Options entry, e.g. "-n, --n".
// Synonyms do not appear in help text.
func (f *flagSpec) label() string {
	if f.short != "" {
		return f.short + ", " + f.long
	}
	return f.long
}

func (s *schema) anyVisiblePositional() bool {
	for _, p := range s.positionals {
		if !p.hidden {
			return true
		}
	}
	return false
}

// allEntries merges static and dynamically-discovered subcommands in
// declaration/discovery order.
func (sc *subcommandSpec) allEntries() []*subcommandEntry {
	entries := make([]*subcommandEntry, 0, len(sc.static))
	entries = append(entries, sc.static...)
	entries = append(entries, sc.dynamicEntries()...)
	return entries
}

// writeHelpSection appends an Examples or Notes block. Each section text
// keeps its own line structure, indented two columns, with the
// {command_name} placeholder substituted.
func writeHelpSection(out *strings.Builder, commandName, heading string, sections []string) {
	if len(sections) == 0 {
		return
	}
	out.WriteString(sectionSep)
	for _, section := range sections {
		section = strings.ReplaceAll(section, "{command_name}", commandName)
		out.WriteString(heading)
		for _, line := range strings.Split(section, "\n") {
			out.WriteString("\n" + helpIndent + line)
		}
	}
}

// writeDescription lays out one two-column entry. Names at or past the
// description column push the description to a continuation line; long
// descriptions word-wrap with continuation lines at the description
// column.
func writeDescription(out *strings.Builder, name, description string) {
	line := helpIndent + name
	if description == "" {
		flushLine(out, &line)
		return
	}
	if !padTo(&line, descriptionCol) {
		flushLine(out, &line)
	}
	words := strings.Split(description, " ")
	for i := 0; i < len(words); i++ {
		padTo(&line, descriptionCol)
		line += words[i]
		for i+1 < len(words) {
			next := words[i+1]
			if runeLen(line)+runeLen(next)+1 > wrapWidth {
				flushLine(out, &line)
				break
			}
			i++
			line += " " + next
		}
	}
	flushLine(out, &line)
}

// padTo space-pads line out to col, reporting whether padding fit.
func padTo(line *string, col int) bool {
	n := runeLen(*line)
	if n >= col {
		return false
	}
	*line += strings.Repeat(" ", col-n)
	return true
}

func flushLine(out *strings.Builder, line *string) {
	out.WriteString("\n" + *line)
	*line = ""
}

func runeLen(s string) int {
	return len([]rune(s))
}

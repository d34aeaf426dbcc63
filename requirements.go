package argot

import "strings"

const newlineIndent = "\n    "

// checkRequirements builds the consolidated end-of-scan deficiency
// report. Nothing is reported incrementally during the scan; a single
// message covers every missing positional, option and subcommand.
func (s *schema) checkRequirements(dispatched bool) error {
	var sections []string

	var positionals []string
	for _, p := range s.positionals {
		if p.opt.isRequired() && p.slot.count == 0 {
			positionals = append(positionals, p.name)
		}
	}
	if len(positionals) > 0 {
		sections = append(sections, "Required positional arguments not provided:"+indentList(positionals))
	}

	var options []string
	for _, f := range s.flags {
		if f.kind == kindOption && f.opt.isRequired() && f.slot.count == 0 {
			options = append(options, f.long)
		}
	}
	if len(options) > 0 {
		sections = append(sections, "Required options not provided:"+indentList(options))
	}

	if s.subcommand != nil && !s.subcommand.optional && !dispatched {
		names := []string{"help"}
		for _, e := range s.subcommand.static {
			names = append(names, e.name)
		}
		for _, e := range s.subcommand.dynamicEntries() {
			names = append(names, e.name)
		}
		sections = append(sections, "One of the following subcommands must be present:"+indentList(names))
	}

	if len(sections) == 0 {
		return nil
	}
	return &EarlyExit{Output: strings.Join(sections, "\n") + "\n", Code: 1}
}

func indentList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(newlineIndent)
		b.WriteString(item)
	}
	return b.String()
}

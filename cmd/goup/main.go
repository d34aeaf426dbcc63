package main

import (
	"fmt"
	"strings"

	"github.com/TheGrizzlyDev/argot"
)

// goUp is the demo schema: two flags, an optional option and a
// subcommand set.
type goUp struct {
	Jump          bool     `argot_switch:"jump" argot_short:"j" argot_help:"whether or not to jump"`
	Height        int      `argot_option:"height" argot_env:"GO_UP_HEIGHT" argot_help:"how high to go"`
	PilotNickname *string  `argot_option:"pilot-nickname" argot_help:"an optional nickname for the pilot"`
	Command       *landing `argot_subcommand:"true"`
}

func (goUp) CommandDescription() string { return "Reach new heights." }

func (goUp) CommandExamples() []string {
	return []string{"Launch with a nickname:\n$ {command_name} --height 5 --pilot-nickname Wes"}
}

type landing struct {
	Descend *descend
}

type descend struct {
	Rate uint `argot_option:"rate" argot_default:"1" argot_help:"descent rate"`
}

func (descend) CommandName() string        { return "descend" }
func (descend) CommandDescription() string { return "Come back down." }
func (descend) CommandShortName() string   { return "d" }

func main() {
	up := argot.Parse[goUp]()

	nickname := "anonymous"
	if up.PilotNickname != nil {
		nickname = *up.PilotNickname
	}

	var actions []string
	if up.Jump {
		actions = append(actions, "jumps")
	}
	actions = append(actions, fmt.Sprintf("climbs to %d", up.Height))
	if up.Command != nil && up.Command.Descend != nil {
		actions = append(actions, fmt.Sprintf("descends at rate %d", up.Command.Descend.Rate))
	}

	fmt.Printf("%s %s\n", nickname, strings.Join(actions, ", then "))
}

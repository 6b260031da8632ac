package game

import (
	"fmt"
	"strconv"
	"strings"

	"tamalife/internal/pet"
)

// Loop-only commands that never reach the pet.
const (
	ActionQuit   pet.Action = "quit"
	ActionStatus pet.Action = "status"
	ActionHelp   pet.Action = "help"
)

// Command is a parsed player instruction.
type Command struct {
	Action pet.Action
	Arg    string
}

func (c Command) String() string {
	if c.Arg == "" {
		return string(c.Action)
	}
	return string(c.Action) + " " + c.Arg
}

var aliases = map[string]pet.Action{
	"q":        ActionQuit,
	"exit":     ActionQuit,
	"quit":     ActionQuit,
	"s":        ActionStatus,
	"":         ActionStatus,
	"?":        ActionHelp,
	"h":        ActionHelp,
	"eat":      pet.ActionFeed,
	"bath":     pet.ActionClean,
	"nap":      pet.ActionSleep,
	"study":    pet.ActionRead,
	"give":     pet.ActionUseItem,
	"shop":     pet.ActionBuy,
	"skill":    pet.ActionSpendPoint,
	"heirloom": pet.ActionBuyLegacy,
}

// needsArg lists actions that take a name.
var needsArg = map[pet.Action]string{
	pet.ActionUseItem:    "item",
	pet.ActionBuy:        "item or decoration",
	pet.ActionSpendPoint: "skill",
	pet.ActionBuyLegacy:  "bonus",
}

var known = map[pet.Action]bool{
	ActionQuit: true, ActionStatus: true, ActionHelp: true,
	pet.ActionUseItem: true, pet.ActionBuy: true, pet.ActionSpendPoint: true,
	pet.ActionBuyLegacy: true, pet.ActionRetire: true,
}

func init() {
	for _, a := range pet.CareActions {
		known[a] = true
	}
}

// ParseCommand turns a line of input into a Command. A bare number selects
// the matching entry of the care menu, starting at 1.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	word := ""
	if len(fields) > 0 {
		word = fields[0]
	}

	var action pet.Action
	if n, err := strconv.Atoi(word); err == nil {
		if n < 1 || n > len(pet.CareActions) {
			return Command{}, fmt.Errorf("no menu entry %d", n)
		}
		action = pet.CareActions[n-1]
	} else if a, ok := aliases[word]; ok {
		action = a
	} else {
		action = pet.Action(word)
	}
	if !known[action] {
		return Command{}, fmt.Errorf("unknown command %q", word)
	}

	cmd := Command{Action: action}
	if len(fields) > 1 {
		cmd.Arg = strings.Join(fields[1:], "_")
	}
	if what, ok := needsArg[action]; ok && cmd.Arg == "" {
		return Command{}, fmt.Errorf("%s needs a %s", action, what)
	}
	return cmd, nil
}

// HelpText lists the commands accepted by ParseCommand.
func HelpText() string {
	var b strings.Builder
	for i, a := range pet.CareActions {
		fmt.Fprintf(&b, "%d) %s  ", i+1, a)
	}
	b.WriteString("\nuse <item> · buy <item|decor> · spend <skill> · legacy <bonus> · retire · status · quit")
	return b.String()
}

package engine

import (
	"errors"
	"fmt"
)

// Command is a discrete player or timer request against a session.
type Command int

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandRotate
	CommandRotateCCW
	CommandSoftDrop
	CommandHardDrop
	CommandTick
	CommandRestart
)

var commandNames = map[Command]string{
	CommandMoveLeft:  "move-left",
	CommandMoveRight: "move-right",
	CommandRotate:    "rotate",
	CommandRotateCCW: "rotate-ccw",
	CommandSoftDrop:  "soft-drop",
	CommandHardDrop:  "hard-drop",
	CommandTick:      "tick",
	CommandRestart:   "restart",
}

// ErrUnknownCommand is returned by ParseCommand for unrecognised names.
var ErrUnknownCommand = errors.New("engine: unknown command")

// Commands lists every command in declaration order.
func Commands() []Command {
	return []Command{
		CommandMoveLeft, CommandMoveRight,
		CommandRotate, CommandRotateCCW,
		CommandSoftDrop, CommandHardDrop,
		CommandTick, CommandRestart,
	}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand maps a kebab-case name such as "hard-drop" to its Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

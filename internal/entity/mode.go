package entity

import (
	"errors"
	"fmt"
)

// Mode - how a round is played.
type Mode string

const (
	ModeNone        Mode = ""
	ModeMultiplayer Mode = "multiplayer"
	ModeBot         Mode = "ai"
)

var ErrUnknownMode = errors.New("unknown game mode")

// ParseMode - accepts "multiplayer", "ai" or an empty string for no preset mode.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "":
		return ModeNone, nil
	case "multiplayer":
		return ModeMultiplayer, nil
	case "ai":
		return ModeBot, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

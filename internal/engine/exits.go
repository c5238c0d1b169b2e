package engine

import (
	"fmt"

	"github.com/tatianab/three-doors/internal/models"
)

// ExitOutcome is the result of resolving an exit against player state.
// Either the player moves to Destination, or they are blocked; Message is
// the narration for both cases.
type ExitOutcome struct {
	Moved       bool
	Destination string
	Message     string
}

// ResolveExit decides whether the player may traverse an exit. The checks
// run in a fixed order: a completion-flag closure beats the lock check, so
// a door that has closed behind the player stays shut even if they hold
// the key, and a locked exit without the key blocks before anything else
// happens. ResolveExit never mutates state.
func ResolveExit(spec *models.ExitSpec, state *models.PlayerState, direction string) ExitOutcome {
	if spec == nil {
		return ExitOutcome{Message: fmt.Sprintf("You can't go %s from here.", direction)}
	}

	if spec.CompletionFlag != "" && state.FlagBool(spec.CompletionFlag) {
		return ExitOutcome{Message: fmt.Sprintf("The way %s has closed behind you for good.", direction)}
	}

	if !spec.Locked {
		return ExitOutcome{
			Moved:       true,
			Destination: spec.Destination,
			Message:     fmt.Sprintf("You go %s.", direction),
		}
	}

	if state.HasItem(spec.RequiredItemID) {
		msg := spec.UnlockMessage
		if msg == "" {
			msg = fmt.Sprintf("You unlock the way %s and step through.", direction)
		}
		return ExitOutcome{Moved: true, Destination: spec.Destination, Message: msg}
	}

	msg := spec.LockedMessage
	if msg == "" {
		msg = fmt.Sprintf("The way %s is locked.", direction)
	}
	return ExitOutcome{Message: msg}
}

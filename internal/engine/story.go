package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tatianab/three-doors/internal/models"
)

// choose advances the story machine in the current room. A branch choice
// only moves the cursor and re-renders; a leaf choice narrates its outcome,
// grants any reward, marks the room's story complete, and follows the
// room's "return" exit automatically when one exists. Any invalid input
// leaves all state unchanged.
func (e *Engine) choose(args []string) string {
	room := e.rooms[e.state.CurrentRoomID]
	node := room.CurrentNode(e.state)
	if node == nil || len(node.Choices) == 0 {
		return "There are no choices to make here."
	}

	if len(args) == 0 {
		return fmt.Sprintf("Choose which option? Pick a number between 1 and %d.", len(node.Choices))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(node.Choices) {
		return fmt.Sprintf("That's not one of your options. Pick a number between 1 and %d.", len(node.Choices))
	}

	choice := node.Choices[n-1]
	if !choice.IsLeaf() {
		e.state.StoryCursor[room.ID] = choice.Next
		return room.Look(e.state)
	}
	return e.resolveLeaf(room, choice)
}

func (e *Engine) resolveLeaf(room *models.Room, choice *models.Choice) string {
	parts := []string{choice.Outcome.Text}

	if reward := choice.Outcome.Reward; reward != "" {
		switch e.inventory.Add(reward) {
		case Added:
			e.state.AddItem(reward)
			item, _ := e.catalog.Get(reward)
			parts = append(parts, fmt.Sprintf("You now have: %s.", item.Name))
		case Full:
			parts = append(parts, "Your hands are too full to take anything with you.")
		}
		// AlreadyHeld and UnknownItem grant nothing; the narration stands
		// on its own.
	}

	if room.CompletionFlag != "" {
		e.state.SetFlag(room.CompletionFlag, true)
	}
	e.state.CompleteDoor(room.ID)

	if ret, ok := room.Exits["return"]; ok {
		outcome := ResolveExit(ret, e.state, "back")
		if outcome.Moved {
			e.state.CurrentRoomID = outcome.Destination
			parts = append(parts, "You find yourself back where you started.")
			parts = append(parts, e.rooms[outcome.Destination].Enter(e.state))
		}
	}

	return strings.Join(parts, "\n\n")
}

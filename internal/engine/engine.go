// Package engine owns the game's mutable state and resolves parsed
// commands into state transitions and narration. One Engine serves one
// interactive session; nothing here is safe for concurrent use because
// nothing needs to be.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tatianab/three-doors/internal/models"
	"github.com/tatianab/three-doors/internal/parser"
)

// Engine is the command-to-effect dispatcher. It owns the room model, the
// catalog, the player state and the derived inventory cache.
type Engine struct {
	rooms     map[string]*models.Room
	catalog   models.Catalog
	state     *models.PlayerState
	inventory *Inventory
}

// New starts a fresh session at the world's starting room.
func New(rooms map[string]*models.Room, catalog models.Catalog, start string, capacity int) (*Engine, error) {
	return NewWithState(rooms, catalog, models.NewPlayerState(start), capacity)
}

// NewWithState starts a session from an existing player state and
// reconciles the derived views with it: the inventory cache is rebuilt
// from the held-id set, and every held item is removed from its room so a
// previously collected item does not reappear.
func NewWithState(rooms map[string]*models.Room, catalog models.Catalog, state *models.PlayerState, capacity int) (*Engine, error) {
	if _, ok := rooms[state.CurrentRoomID]; !ok {
		return nil, fmt.Errorf("current room %q does not exist", state.CurrentRoomID)
	}

	e := &Engine{
		rooms:     rooms,
		catalog:   catalog,
		state:     state,
		inventory: NewInventory(catalog, capacity),
	}

	heldIDs := make([]string, 0, len(state.HeldItemIDs))
	for id := range state.HeldItemIDs {
		heldIDs = append(heldIDs, id)
	}
	sort.Strings(heldIDs)
	for _, id := range heldIDs {
		e.inventory.Add(id)
		for _, room := range rooms {
			room.RemoveItem(id)
		}
	}

	return e, nil
}

// State exposes the player state for presenters; callers must not mutate it.
func (e *Engine) State() *models.PlayerState {
	return e.state
}

// Inventory exposes the held-item cache for presenters.
func (e *Engine) Inventory() *Inventory {
	return e.inventory
}

// CurrentRoom returns the room the player is in.
func (e *Engine) CurrentRoom() *models.Room {
	return e.rooms[e.state.CurrentRoomID]
}

// Intro renders the opening text and the starting room.
func (e *Engine) Intro() string {
	intro := strings.Join([]string{
		"You find yourself in a mysterious place...",
		"A friendly dog approaches you with a wagging tail.",
		"",
		"Type 'help' for a list of commands. Type 'quit' to leave.",
	}, "\n")
	return intro + "\n\n" + e.CurrentRoom().Enter(e.state)
}

// ProcessTurn applies one line of player input and returns the narration
// for it, plus whether the session should end. Every failure path leaves
// all state unchanged; blank input returns empty narration.
func (e *Engine) ProcessTurn(line string) (output string, quit bool) {
	verb, args := parser.Parse(line)

	switch verb {
	case "":
		return "", false
	case "quit":
		return "Thanks for playing!", true
	case "help":
		return e.help(args), false
	case "look":
		return e.look(args), false
	case "go":
		return e.move(args), false
	case "inventory":
		return e.listInventory(), false
	case "take":
		return e.take(args), false
	case "choose":
		return e.choose(args), false
	case "talk", "use":
		return fmt.Sprintf("You can't %s here yet.", verb), false
	default:
		return fmt.Sprintf("I don't understand %q. Type 'help' for a list of commands.", verb), false
	}
}

// look with no target renders the current room; with a target it searches
// the inventory before the room's items, so something just picked up is
// described from the player's hands.
func (e *Engine) look(args []string) string {
	if len(args) == 0 {
		return e.CurrentRoom().Look(e.state)
	}

	name := strings.Join(args, " ")
	item, ok := e.inventory.FindByName(name)
	if !ok {
		item, ok = e.CurrentRoom().FindItemByName(name)
	}
	if !ok {
		return fmt.Sprintf("You don't see any %q here.", name)
	}

	if item.FlavorText != "" {
		return item.Description + "\n" + item.FlavorText
	}
	return item.Description
}

func (e *Engine) move(args []string) string {
	if len(args) == 0 {
		return "Go where? Try 'go north'."
	}

	direction := args[0]
	outcome := ResolveExit(e.CurrentRoom().Exits[direction], e.state, direction)
	if !outcome.Moved {
		return outcome.Message
	}

	e.state.CurrentRoomID = outcome.Destination
	return outcome.Message + "\n\n" + e.CurrentRoom().Enter(e.state)
}

func (e *Engine) listInventory() string {
	if e.inventory.Empty() {
		return "You aren't carrying anything."
	}

	lines := []string{"You are carrying:"}
	for _, item := range e.inventory.List() {
		lines = append(lines, "  - "+item.Name)
	}
	return strings.Join(lines, "\n")
}

// take moves an item from the current room into the inventory and records
// it in the player state. The inventory is checked before the room is
// touched, so a full inventory leaves the item where it was.
func (e *Engine) take(args []string) string {
	if len(args) == 0 {
		return "Take what?"
	}

	name := strings.Join(args, " ")
	room := e.CurrentRoom()
	item, ok := room.FindItemByName(name)
	if !ok {
		return fmt.Sprintf("There is no %q here to take.", name)
	}

	switch e.inventory.Add(item.ID) {
	case Full:
		return "Your hands are full. You'll have to leave it for now."
	case AlreadyHeld:
		return fmt.Sprintf("You already have the %s.", item.Name)
	case UnknownItem:
		return fmt.Sprintf("The %s slips through your fingers like it was never there.", item.Name)
	}

	room.RemoveItem(item.ID)
	e.state.AddItem(item.ID)

	msg := fmt.Sprintf("You take the %s.", item.Name)
	if item.FlavorText != "" {
		msg += "\n" + item.FlavorText
	}
	return msg
}

var helpTopics = map[string]string{
	"help":      "help [command] - Show available commands, or details for one.",
	"quit":      "quit - Leave the game.",
	"look":      "look [item] - Look around the room, or examine a named item.",
	"go":        "go <direction> - Move through an exit, e.g. 'go north'.",
	"inventory": "inventory - List what you are carrying.",
	"take":      "take <item> - Pick up a named item from the room.",
	"choose":    "choose <number> - Pick a numbered option in a story.",
	"talk":      "talk - Strike up a conversation. (Not available yet.)",
	"use":       "use <item> - Put an item to work. (Not available yet.)",
}

func (e *Engine) help(args []string) string {
	if len(args) > 0 {
		if topic, ok := helpTopics[args[0]]; ok {
			return topic
		}
		return fmt.Sprintf("No such command %q. Try 'help' on its own.", args[0])
	}

	return strings.Join([]string{
		"Available commands:",
		"  help, h       - Show this help message",
		"  look, l       - Look around, or 'look <item>' to examine",
		"  go <dir>      - Move through an exit",
		"  take <item>   - Pick up an item",
		"  inventory, i  - List what you are carrying",
		"  choose <n>    - Pick a story option by number",
		"  quit, q       - Leave the game",
	}, "\n")
}

package models

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// RoomKind is the closed set of room variants.
type RoomKind string

const (
	HubRoom   RoomKind = "hub"
	StoryRoom RoomKind = "story"
)

// ExitSpec is the traversal rule attached to a direction. In world data it
// is either a bare destination room id or a full mapping with lock and
// closure conditions.
type ExitSpec struct {
	Destination    string `yaml:"destination"`
	Locked         bool   `yaml:"locked"`
	RequiredItemID string `yaml:"required_item"`
	LockedMessage  string `yaml:"locked_message"`
	UnlockMessage  string `yaml:"unlock_message"`
	CompletionFlag string `yaml:"completion_flag"`
}

// UnmarshalYAML accepts both the scalar shorthand ("return: hub") and the
// full mapping form.
func (e *ExitSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&e.Destination)
	}
	type plain ExitSpec
	return value.Decode((*plain)(e))
}

// Choice is one option on a story node. Exactly one of Next (branch: the
// choice advances the cursor) or Outcome (leaf: the choice resolves the
// sequence) is set; the loader rejects choices that carry both or neither.
type Choice struct {
	Text    string   `yaml:"text"`
	Next    string   `yaml:"next"`
	Outcome *Outcome `yaml:"outcome"`
}

// IsLeaf reports whether resolving this choice ends the branching sequence.
func (c *Choice) IsLeaf() bool {
	return c.Outcome != nil
}

// Outcome is the resolution of a leaf choice.
type Outcome struct {
	Text   string `yaml:"text"`
	Reward string `yaml:"reward"` // item id, optional
}

// StoryNode is a single narrative beat: a prompt and the choices that
// follow from it.
type StoryNode struct {
	Prompt  string    `yaml:"prompt"`
	Choices []*Choice `yaml:"choices"`
}

// Room is a location in the world. The shared fields apply to every kind;
// Nodes, Entry and CompletionFlag are only set on story rooms. Rooms own
// no player state: rendering takes the PlayerState as a parameter so that
// Look stays a pure function of room content plus state.
type Room struct {
	ID          string
	Kind        RoomKind
	Name        string
	Description string
	Scenery     []string
	Items       []*Item // present in the room, insertion order
	Exits       map[string]*ExitSpec

	Nodes          map[string]*StoryNode
	Entry          string
	CompletionFlag string
}

// AddItem places an item in the room. Adding an item already present is a
// no-op.
func (r *Room) AddItem(item *Item) {
	for _, it := range r.Items {
		if it.ID == item.ID {
			return
		}
	}
	r.Items = append(r.Items, item)
}

// RemoveItem takes an item out of the room, reporting whether it was there.
func (r *Room) RemoveItem(id string) bool {
	for i, it := range r.Items {
		if it.ID == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// FindItemByName matches a present item by display name, case-insensitive.
func (r *Room) FindItemByName(name string) (*Item, bool) {
	for _, it := range r.Items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

// CurrentNode returns the story node the player is at in this room,
// defaulting to the entry node when the cursor is unset. Nil for non-story
// rooms.
func (r *Room) CurrentNode(state *PlayerState) *StoryNode {
	if r.Kind != StoryRoom {
		return nil
	}
	id, ok := state.StoryCursor[r.ID]
	if !ok {
		id = r.Entry
	}
	return r.Nodes[id]
}

// Enter marks the room visited and renders it.
func (r *Room) Enter(state *PlayerState) string {
	state.MarkVisited(r.ID)
	return r.Look(state)
}

// Look renders the room: description, scenery, present items, then either
// the exit list (hub) or the current story prompt and its numbered choices
// (story). It never mutates state.
func (r *Room) Look(state *PlayerState) string {
	lines := []string{r.Description}
	lines = append(lines, r.Scenery...)

	if len(r.Items) > 0 {
		names := make([]string, len(r.Items))
		for i, it := range r.Items {
			names[i] = it.Name
		}
		lines = append(lines, "You can see: "+strings.Join(names, ", "))
	}

	switch r.Kind {
	case HubRoom:
		if len(r.Exits) > 0 {
			dirs := make([]string, 0, len(r.Exits))
			for dir := range r.Exits {
				dirs = append(dirs, dir)
			}
			slices.Sort(dirs)
			lines = append(lines, "Exits: "+strings.Join(dirs, ", "))
		}
	case StoryRoom:
		if node := r.CurrentNode(state); node != nil {
			lines = append(lines, "", node.Prompt)
			for i, c := range node.Choices {
				lines = append(lines, fmt.Sprintf("  %d. %s", i+1, c.Text))
			}
		}
	}

	return strings.Join(lines, "\n")
}

package models

// PlayerState is the canonical mutable record of a play session: where the
// player is, what they hold, which doors they have finished, and how far
// into each story room's node graph they are. Held items are recorded here
// as ids; the engine's Inventory is a derived cache reconciled at startup.
type PlayerState struct {
	CurrentRoomID    string
	HeldItemIDs      map[string]bool
	CompletedDoorIDs map[string]bool
	Flags            map[string]any
	StoryCursor      map[string]string // room id -> story node id
	VisitedRoomIDs   map[string]bool
}

// NewPlayerState returns a fresh state positioned at the starting room.
func NewPlayerState(startRoomID string) *PlayerState {
	return &PlayerState{
		CurrentRoomID:    startRoomID,
		HeldItemIDs:      make(map[string]bool),
		CompletedDoorIDs: make(map[string]bool),
		Flags:            make(map[string]any),
		StoryCursor:      make(map[string]string),
		VisitedRoomIDs:   make(map[string]bool),
	}
}

// SetFlag sets a game flag to a value, e.g. "garden_complete" = true.
func (s *PlayerState) SetFlag(name string, value any) {
	s.Flags[name] = value
}

// Flag returns the value of a game flag, or nil if it was never set.
func (s *PlayerState) Flag(name string) any {
	return s.Flags[name]
}

// FlagBool reports whether a flag is set and truthy.
func (s *PlayerState) FlagBool(name string) bool {
	v, ok := s.Flags[name].(bool)
	return ok && v
}

func (s *PlayerState) AddItem(id string) {
	s.HeldItemIDs[id] = true
}

func (s *PlayerState) HasItem(id string) bool {
	return s.HeldItemIDs[id]
}

// CompleteDoor records that the story behind a door has been resolved.
func (s *PlayerState) CompleteDoor(id string) {
	s.CompletedDoorIDs[id] = true
}

func (s *PlayerState) DoorCompleted(id string) bool {
	return s.CompletedDoorIDs[id]
}

func (s *PlayerState) MarkVisited(roomID string) {
	s.VisitedRoomIDs[roomID] = true
}

func (s *PlayerState) Visited(roomID string) bool {
	return s.VisitedRoomIDs[roomID]
}

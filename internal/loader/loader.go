// Package loader ingests world definitions (items, rooms, story graphs)
// from YAML into the in-memory model. Individual malformed entries are
// skipped with a warning so a data typo degrades the world instead of
// killing the game; a world with no rooms at all is a fatal error.
package loader

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/three-doors/internal/models"
)

//go:embed data/items.yaml
var defaultItemsYAML []byte

//go:embed data/rooms.yaml
var defaultRoomsYAML []byte

// World is everything the engine needs to start a session.
type World struct {
	Start   string
	Rooms   map[string]*models.Room
	Catalog models.Catalog
}

// LoadWorldFiles loads the catalog and rooms from the given paths, falling
// back to the embedded defaults for any empty path.
func LoadWorldFiles(itemsPath, roomsPath string) (*World, error) {
	itemsData := defaultItemsYAML
	if itemsPath != "" {
		data, err := os.ReadFile(itemsPath)
		if err != nil {
			return nil, fmt.Errorf("read items data: %w", err)
		}
		itemsData = data
	}

	roomsData := defaultRoomsYAML
	if roomsPath != "" {
		data, err := os.ReadFile(roomsPath)
		if err != nil {
			return nil, fmt.Errorf("read rooms data: %w", err)
		}
		roomsData = data
	}

	catalog, err := LoadCatalog(itemsData)
	if err != nil {
		return nil, err
	}
	return LoadRooms(roomsData, catalog)
}

// LoadCatalog parses item definitions. Missing fields fall back to
// defaults rather than failing: an item with no name becomes "Unknown
// Item" so a data gap stays playable.
func LoadCatalog(data []byte) (models.Catalog, error) {
	var raw map[string]*models.Item
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse items data: %w", err)
	}

	catalog := make(models.Catalog, len(raw))
	for id, item := range raw {
		if item == nil {
			slog.Warn("skipping empty item entry", "item", id)
			continue
		}
		item.ID = id
		if item.Name == "" {
			item.Name = "Unknown Item"
		}
		catalog[id] = item
	}
	return catalog, nil
}

type roomDef struct {
	Type           string                       `yaml:"type"`
	Name           string                       `yaml:"name"`
	Description    string                       `yaml:"description"`
	Scenery        []string                     `yaml:"scenery"`
	Items          []string                     `yaml:"items"`
	Exits          map[string]*models.ExitSpec  `yaml:"exits"`
	Entry          string                       `yaml:"entry"`
	CompletionFlag string                       `yaml:"completion_flag"`
	Nodes          map[string]*models.StoryNode `yaml:"nodes"`
}

type worldDef struct {
	Start string             `yaml:"start"`
	Rooms map[string]roomDef `yaml:"rooms"`
}

// LoadRooms parses room definitions against an already-loaded catalog.
// Rooms of unknown kind, story rooms without a usable node graph, dangling
// node references and exits to unknown rooms are all dropped with a
// warning. Zero surviving rooms, or a starting room that does not resolve,
// is fatal.
func LoadRooms(data []byte, catalog models.Catalog) (*World, error) {
	var raw worldDef
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse rooms data: %w", err)
	}

	rooms := make(map[string]*models.Room)
	for id, def := range raw.Rooms {
		room, ok := buildRoom(id, def, catalog)
		if !ok {
			continue
		}
		rooms[id] = room
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms loaded")
	}

	// Exits can only be validated once every room exists.
	for id, room := range rooms {
		for dir, spec := range room.Exits {
			if _, ok := rooms[spec.Destination]; !ok {
				slog.Warn("dropping exit to unknown room",
					"room", id, "direction", dir, "destination", spec.Destination)
				delete(room.Exits, dir)
			}
		}
	}

	start := raw.Start
	if start == "" {
		start = "hub"
	}
	if _, ok := rooms[start]; !ok {
		return nil, fmt.Errorf("starting room %q not loaded", start)
	}

	return &World{Start: start, Rooms: rooms, Catalog: catalog}, nil
}

func buildRoom(id string, def roomDef, catalog models.Catalog) (*models.Room, bool) {
	kind := models.RoomKind(def.Type)
	switch kind {
	case models.HubRoom, models.StoryRoom:
	default:
		slog.Warn("skipping room with unknown type", "room", id, "type", def.Type)
		return nil, false
	}

	room := &models.Room{
		ID:             id,
		Kind:           kind,
		Name:           def.Name,
		Description:    def.Description,
		Scenery:        def.Scenery,
		Exits:          def.Exits,
		CompletionFlag: def.CompletionFlag,
	}
	if room.Exits == nil {
		room.Exits = make(map[string]*models.ExitSpec)
	}

	for _, itemID := range def.Items {
		item, ok := catalog.Get(itemID)
		if !ok {
			slog.Warn("dropping unknown item placement", "room", id, "item", itemID)
			continue
		}
		room.AddItem(item)
	}

	if kind == models.StoryRoom && !buildStoryGraph(id, def, room) {
		return nil, false
	}
	return room, true
}

// buildStoryGraph validates a story room's node graph in place. Choices
// that conflate or omit the branch/leaf arms, and branches pointing at
// nodes that do not exist, are dropped so the rest of the room stays
// playable.
func buildStoryGraph(id string, def roomDef, room *models.Room) bool {
	if len(def.Nodes) == 0 {
		slog.Warn("skipping story room without nodes", "room", id)
		return false
	}
	room.Nodes = def.Nodes

	for nodeID, node := range room.Nodes {
		if node == nil {
			slog.Warn("dropping empty story node", "room", id, "node", nodeID)
			delete(room.Nodes, nodeID)
			continue
		}
		kept := node.Choices[:0]
		for _, c := range node.Choices {
			switch {
			case c == nil:
				slog.Warn("dropping empty choice", "room", id, "node", nodeID)
			case c.Next != "" && c.Outcome != nil:
				slog.Warn("dropping choice with both branch and outcome",
					"room", id, "node", nodeID, "choice", c.Text)
			case c.Next == "" && c.Outcome == nil:
				slog.Warn("dropping choice with neither branch nor outcome",
					"room", id, "node", nodeID, "choice", c.Text)
			case c.Next != "" && room.Nodes[c.Next] == nil:
				slog.Warn("dropping choice with dangling node reference",
					"room", id, "node", nodeID, "next", c.Next)
			default:
				kept = append(kept, c)
			}
		}
		node.Choices = kept
	}

	room.Entry = def.Entry
	if room.Entry == "" {
		room.Entry = defaultEntry(room.Nodes)
	}
	if room.Nodes[room.Entry] == nil {
		slog.Warn("skipping story room with unresolved entry node",
			"room", id, "entry", room.Entry)
		return false
	}
	return true
}

// defaultEntry picks an entry node when the data does not mark one: a node
// named "start" if present, otherwise the first id in sorted order so the
// fallback is deterministic.
func defaultEntry(nodes map[string]*models.StoryNode) string {
	if _, ok := nodes["start"]; ok {
		return "start"
	}
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return ""
	}
	sort.Strings(ids)
	return ids[0]
}

package loader

import (
	"testing"

	"github.com/tatianab/three-doors/internal/models"
)

const testItems = `
key:
  name: Brass Key
  description: A small key.
  flavor_text: It hums faintly.
nameless:
  description: Who knows what this is.
`

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog([]byte(testItems))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	key, ok := catalog.Get("key")
	if !ok {
		t.Fatal("key not loaded")
	}
	if key.ID != "key" || key.Name != "Brass Key" || key.FlavorText != "It hums faintly." {
		t.Errorf("key fields wrong: %+v", key)
	}
}

func TestLoadCatalogDefaultsMissingName(t *testing.T) {
	catalog, err := LoadCatalog([]byte(testItems))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	item, ok := catalog.Get("nameless")
	if !ok {
		t.Fatal("nameless item should still load")
	}
	if item.Name != "Unknown Item" {
		t.Errorf("missing name should default to Unknown Item; got %q", item.Name)
	}
}

func TestLoadCatalogBadYAML(t *testing.T) {
	if _, err := LoadCatalog([]byte("{{not yaml")); err == nil {
		t.Fatal("expected error for unreadable catalog")
	}
}

func TestLoadRoomsFull(t *testing.T) {
	catalog, _ := LoadCatalog([]byte(testItems))
	data := `
start: hub
rooms:
  hub:
    type: hub
    name: The Hub
    description: A round room.
    items: [key, phantom]
    exits:
      north:
        destination: cave
        locked: true
        required_item: key
  cave:
    type: story
    name: The Cave
    description: A dark cave.
    entry: mouth
    completion_flag: cave_done
    exits:
      return: hub
      west: nowhere
    nodes:
      mouth:
        prompt: The dark presses in.
        choices:
          - text: Feel along the wall.
            next: wall
          - text: Strike a match.
            outcome:
              text: The cave is empty.
          - text: Step into the void.
            next: missing
          - text: Broken choice.
      wall:
        prompt: Cold stone under your fingers.
  vault:
    type: bank
    name: The Vault
    description: Should never load.
`
	world, err := LoadRooms([]byte(data), catalog)
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}

	if world.Start != "hub" {
		t.Errorf("Start = %q; want hub", world.Start)
	}
	if len(world.Rooms) != 2 {
		t.Fatalf("expected 2 rooms (vault skipped), got %d", len(world.Rooms))
	}
	if _, ok := world.Rooms["vault"]; ok {
		t.Error("unknown room type should be skipped")
	}

	hub := world.Rooms["hub"]
	if len(hub.Items) != 1 || hub.Items[0].ID != "key" {
		t.Errorf("unknown item placement should be dropped; got %v", hub.Items)
	}

	cave := world.Rooms["cave"]
	if _, ok := cave.Exits["west"]; ok {
		t.Error("exit to unknown room should be dropped")
	}
	if ret, ok := cave.Exits["return"]; !ok || ret.Destination != "hub" {
		t.Error("scalar return exit should survive")
	}

	// The mouth node declared 4 choices; only the valid branch and the
	// valid leaf survive.
	mouth := cave.Nodes["mouth"]
	if len(mouth.Choices) != 2 {
		t.Fatalf("expected 2 surviving choices, got %d", len(mouth.Choices))
	}
	if mouth.Choices[0].Next == "" || mouth.Choices[1].Outcome == nil {
		t.Errorf("wrong choices survived: %+v", mouth.Choices)
	}
}

func TestLoadRoomsMissingWallNode(t *testing.T) {
	// "wall" is referenced but never declared; the choice pointing at it
	// must be dropped while the rest of the node stays.
	catalog := models.Catalog{}
	data := `
rooms:
  hub:
    type: hub
    name: The Hub
    description: A round room.
  cave:
    type: story
    name: The Cave
    description: Dark.
    entry: mouth
    nodes:
      mouth:
        prompt: The dark presses in.
        choices:
          - text: Feel along the wall.
            next: wall
          - text: Give up.
            outcome:
              text: You give up.
`
	world, err := LoadRooms([]byte(data), catalog)
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	mouth := world.Rooms["cave"].Nodes["mouth"]
	if len(mouth.Choices) != 1 || mouth.Choices[0].Outcome == nil {
		t.Errorf("dangling branch should be dropped; got %+v", mouth.Choices)
	}
}

func TestLoadRoomsNoRoomsFatal(t *testing.T) {
	if _, err := LoadRooms([]byte("rooms: {}"), models.Catalog{}); err == nil {
		t.Fatal("expected error when no rooms load")
	}
}

func TestLoadRoomsMissingStartFatal(t *testing.T) {
	data := `
start: nowhere
rooms:
  hub:
    type: hub
    name: The Hub
    description: A round room.
`
	if _, err := LoadRooms([]byte(data), models.Catalog{}); err == nil {
		t.Fatal("expected error for unresolvable starting room")
	}
}

func TestStoryRoomWithoutNodesSkipped(t *testing.T) {
	data := `
rooms:
  hub:
    type: hub
    name: The Hub
    description: A round room.
  empty:
    type: story
    name: Empty Story
    description: Nothing here.
`
	world, err := LoadRooms([]byte(data), models.Catalog{})
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	if _, ok := world.Rooms["empty"]; ok {
		t.Error("story room without nodes should be skipped")
	}
}

func TestDefaultEntryPrefersStartNode(t *testing.T) {
	data := `
rooms:
  hub:
    type: hub
    name: The Hub
    description: A round room.
  cave:
    type: story
    name: The Cave
    description: Dark.
    nodes:
      alpha:
        prompt: Alpha.
      start:
        prompt: Start here.
`
	world, err := LoadRooms([]byte(data), models.Catalog{})
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	if got := world.Rooms["cave"].Entry; got != "start" {
		t.Errorf("entry = %q; want start", got)
	}
}

func TestEmbeddedWorldLoads(t *testing.T) {
	world, err := LoadWorldFiles("", "")
	if err != nil {
		t.Fatalf("embedded world should load: %v", err)
	}
	if _, ok := world.Rooms[world.Start]; !ok {
		t.Fatalf("start room %q missing", world.Start)
	}
	if len(world.Catalog) == 0 {
		t.Error("embedded catalog is empty")
	}

	// Every story room must have a resolvable entry node, and every branch
	// choice a resolvable target; the loader promises both.
	for id, room := range world.Rooms {
		if room.Kind != models.StoryRoom {
			continue
		}
		if room.Nodes[room.Entry] == nil {
			t.Errorf("room %s: entry %q unresolved", id, room.Entry)
		}
		for nodeID, node := range room.Nodes {
			for _, c := range node.Choices {
				if c.Next != "" && room.Nodes[c.Next] == nil {
					t.Errorf("room %s node %s: dangling next %q", id, nodeID, c.Next)
				}
			}
		}
	}
}

func TestLoadWorldFilesMissingPath(t *testing.T) {
	if _, err := LoadWorldFiles("does/not/exist.yaml", ""); err == nil {
		t.Fatal("expected error for missing items file")
	}
}

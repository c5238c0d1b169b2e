package engine

import (
	"strings"
	"testing"

	"github.com/tatianab/three-doors/internal/models"
)

func TestResolveNoExit(t *testing.T) {
	out := ResolveExit(nil, models.NewPlayerState("hub"), "north")
	if out.Moved {
		t.Fatal("missing exit must block")
	}
	if !strings.Contains(out.Message, "north") {
		t.Errorf("message should name the direction; got %q", out.Message)
	}
}

func TestResolveUnlocked(t *testing.T) {
	spec := &models.ExitSpec{Destination: "cave"}
	out := ResolveExit(spec, models.NewPlayerState("hub"), "north")
	if !out.Moved || out.Destination != "cave" {
		t.Fatalf("unlocked exit should move to cave; got %+v", out)
	}
}

func TestResolveLockedWithoutKey(t *testing.T) {
	spec := &models.ExitSpec{Destination: "cave", Locked: true, RequiredItemID: "key"}
	state := models.NewPlayerState("hub")

	out := ResolveExit(spec, state, "north")
	if out.Moved {
		t.Fatal("locked exit without key must block")
	}
	if !strings.Contains(out.Message, "locked") {
		t.Errorf("default locked message should mention the lock; got %q", out.Message)
	}
	if len(state.Flags) != 0 || len(state.HeldItemIDs) != 0 {
		t.Error("blocked resolve must not mutate state")
	}
}

func TestResolveLockedWithKey(t *testing.T) {
	spec := &models.ExitSpec{
		Destination:    "cave",
		Locked:         true,
		RequiredItemID: "key",
		UnlockMessage:  "The key turns with a click.",
	}
	state := models.NewPlayerState("hub")
	state.AddItem("key")

	out := ResolveExit(spec, state, "north")
	if !out.Moved || out.Destination != "cave" {
		t.Fatalf("locked exit with key should move; got %+v", out)
	}
	if out.Message != "The key turns with a click." {
		t.Errorf("unlock message = %q", out.Message)
	}
}

func TestResolveCustomLockedMessage(t *testing.T) {
	spec := &models.ExitSpec{
		Destination:    "cave",
		Locked:         true,
		RequiredItemID: "key",
		LockedMessage:  "The golden door doesn't budge.",
	}
	out := ResolveExit(spec, models.NewPlayerState("hub"), "north")
	if out.Moved || out.Message != "The golden door doesn't budge." {
		t.Errorf("custom locked message not used; got %+v", out)
	}
}

// A completed path stays closed even when the player also holds the key;
// the closure check runs before the lock check.
func TestResolveCompletionFlagBeatsKey(t *testing.T) {
	spec := &models.ExitSpec{
		Destination:    "cave",
		Locked:         true,
		RequiredItemID: "key",
		CompletionFlag: "cave_done",
	}
	state := models.NewPlayerState("hub")
	state.AddItem("key")
	state.SetFlag("cave_done", true)

	out := ResolveExit(spec, state, "north")
	if out.Moved {
		t.Fatal("completed path must block regardless of key")
	}
	if !strings.Contains(out.Message, "closed") {
		t.Errorf("closure message should mention the closed path; got %q", out.Message)
	}
}

func TestResolveCompletionFlagUnsetPassesThrough(t *testing.T) {
	spec := &models.ExitSpec{Destination: "cave", CompletionFlag: "cave_done"}
	out := ResolveExit(spec, models.NewPlayerState("hub"), "north")
	if !out.Moved {
		t.Fatal("an unset completion flag must not close the exit")
	}
}

package engine

import (
	"strings"

	"github.com/tatianab/three-doors/internal/models"
)

// AddResult is the outcome of an inventory add attempt.
type AddResult int

const (
	Added AddResult = iota
	AlreadyHeld
	Full
	UnknownItem
)

// Inventory is the player's held-item cache: an ordered subset of the
// catalog bounded by capacity. PlayerState's id set remains the source of
// truth; the engine keeps the two in sync.
type Inventory struct {
	catalog  models.Catalog
	items    []*models.Item
	capacity int
}

func NewInventory(catalog models.Catalog, capacity int) *Inventory {
	return &Inventory{catalog: catalog, capacity: capacity}
}

// Add puts the item with the given id into the inventory. Checks run
// capacity, then duplicate, then catalog lookup; nothing is mutated on any
// failure.
func (v *Inventory) Add(id string) AddResult {
	if len(v.items) >= v.capacity {
		return Full
	}
	if v.Has(id) {
		return AlreadyHeld
	}
	item, ok := v.catalog.Get(id)
	if !ok {
		return UnknownItem
	}
	v.items = append(v.items, item)
	return Added
}

func (v *Inventory) Has(id string) bool {
	for _, it := range v.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// FindByName matches a held item by display name, case-insensitive; the
// first match wins.
func (v *Inventory) FindByName(name string) (*models.Item, bool) {
	for _, it := range v.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

// List returns held items in insertion order.
func (v *Inventory) List() []*models.Item {
	return v.items
}

func (v *Inventory) Len() int {
	return len(v.items)
}

func (v *Inventory) Empty() bool {
	return len(v.items) == 0
}

package models

// Item is a collectible object defined by the world data. Items are
// immutable once loaded; the catalog owns the only instance of each.
type Item struct {
	ID          string `yaml:"-"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	FlavorText  string `yaml:"flavor_text"`
}

// Catalog maps item ids to their definitions. Read-only after load.
type Catalog map[string]*Item

func (c Catalog) Get(id string) (*Item, bool) {
	item, ok := c[id]
	return item, ok
}

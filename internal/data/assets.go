package data

// Category names an entity kind that carries a visual handle.
type Category string

const (
	CategoryAsteroid  Category = "asteroid"
	CategorySpaceship Category = "spaceship"
	CategoryMissile   Category = "missile"
	CategorySatellite Category = "satellite"
)

// AssetCatalog hands out opaque model handles per entity category. The
// handles are never inspected by the simulation.
type AssetCatalog struct {
	handles map[Category]string
}

// NewAssetCatalog builds a catalog from category -> handle pairs.
func NewAssetCatalog(handles map[string]string) *AssetCatalog {
	c := &AssetCatalog{handles: make(map[Category]string, len(handles))}
	for k, v := range handles {
		c.handles[Category(k)] = v
	}
	return c
}

// Handle returns the handle for cat, or an empty handle when unknown.
func (c *AssetCatalog) Handle(cat Category) string {
	if c == nil {
		return ""
	}
	return c.handles[cat]
}

// Count returns the number of registered handles.
func (c *AssetCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.handles)
}

// Package nav is the control side of waymark: per-category nearest-entity
// scanning, proximity-to-parameter mapping, zone callouts, and the
// Navigator facade the game integration drives once per frame.
package nav

// Category is a class of in-game object with its own cue, config, and
// targeting policy. The set is closed; each category owns exactly one
// generator and mixer channel for the process lifetime.
type Category int

const (
	CategoryBoss Category = iota
	CategoryElite
	CategoryCocoon
	CategoryCollectible
	CategoryCurrency
	CategoryEscort
	CategoryCheckpoint
	CategoryMechanism
	CategoryHazard
	CategoryTelegraph
	CategoryFootpath
	CategoryDoor

	numCategories
)

var categoryNames = [numCategories]string{
	"boss",
	"elite",
	"cocoon",
	"collectible",
	"currency",
	"escort",
	"checkpoint",
	"mechanism",
	"hazard",
	"telegraph",
	"footpath",
	"door",
}

// String returns the category's wire name, also used as the world-registry
// kind key.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// CategoryByName resolves a wire name back to a Category.
func CategoryByName(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

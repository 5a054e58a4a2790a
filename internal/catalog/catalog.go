// Package catalog holds the fixed category table: fallback questions,
// generation instructions and display metadata.
package catalog

type Category string

const (
	Spice   Category = "spice"
	Chuckle Category = "chuckle"
	Drift   Category = "drift"
	Edge    Category = "edge"
	Glow    Category = "glow"
	Flip    Category = "flip"
)

// CompositeSampleSize is how many leading questions each category
// contributes to the composite list.
const CompositeSampleSize = 2

// Entry describes one category.
type Entry struct {
	Key         Category
	Name        string
	Emoji       string
	Description string
	Instruction string
	Questions   []string

	// Composite entries ignore Questions and are filled from the other
	// entries when the catalog is built.
	Composite bool
}

// Catalog is built once at startup and never mutated afterwards.
type Catalog struct {
	order     []Category
	entries   map[Category]Entry
	composite Category
}

// New builds the catalog from the default category table.
func New() *Catalog {
	return Build(defaultEntries())
}

// Build assembles a catalog from entries in declaration order. The first
// composite entry becomes the default for unknown keys.
func Build(entries []Entry) *Catalog {
	c := &Catalog{
		order:   make([]Category, 0, len(entries)),
		entries: make(map[Category]Entry, len(entries)),
	}

	var mixed []string
	for _, e := range entries {
		if e.Composite {
			continue
		}
		n := min(CompositeSampleSize, len(e.Questions))
		mixed = append(mixed, e.Questions[:n]...)
	}

	for _, e := range entries {
		if e.Composite {
			e.Questions = mixed
			if c.composite == "" {
				c.composite = e.Key
			}
		} else {
			e.Questions = append([]string(nil), e.Questions...)
		}
		c.order = append(c.order, e.Key)
		c.entries[e.Key] = e
	}

	return c
}

// Resolve maps a raw category key onto a known category. Keys match
// exactly; anything else, including the empty string, maps to the
// composite category.
func (c *Catalog) Resolve(raw string) Category {
	key := Category(raw)
	if _, ok := c.entries[key]; ok {
		return key
	}
	return c.composite
}

func (c *Catalog) Composite() Category {
	return c.composite
}

// Questions returns a copy of the fallback list for cat.
func (c *Catalog) Questions(cat Category) []string {
	return append([]string(nil), c.entries[cat].Questions...)
}

// QuestionAt returns the i-th fallback question without copying the list.
func (c *Catalog) QuestionAt(cat Category, i int) (string, bool) {
	qs := c.entries[cat].Questions
	if i < 0 || i >= len(qs) {
		return "", false
	}
	return qs[i], true
}

func (c *Catalog) Count(cat Category) int {
	return len(c.entries[cat].Questions)
}

func (c *Catalog) Instruction(cat Category) string {
	return c.entries[cat].Instruction
}

// Entries returns every category in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		e := c.entries[key]
		e.Questions = append([]string(nil), e.Questions...)
		out = append(out, e)
	}
	return out
}

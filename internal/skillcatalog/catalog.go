package skillcatalog

import (
	"fmt"
	"slices"
)

// Catalog is an immutable, indexed set of skills.
type Catalog struct {
	skills     []Skill
	byID       map[string]int
	byCategory map[Category][]Skill
}

// New builds a catalog from skills after validating them.
func New(skills []Skill) (*Catalog, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}
	return build(skills), nil
}

// build indexes skills. Callers must have validated them.
func build(skills []Skill) *Catalog {
	c := &Catalog{
		skills:     slices.Clone(skills),
		byID:       make(map[string]int, len(skills)),
		byCategory: make(map[Category][]Skill),
	}
	for i, s := range c.skills {
		c.byID[s.ID] = i
		c.byCategory[s.Category] = append(c.byCategory[s.Category], s)
	}
	return c
}

// Get returns the skill with the given ID.
func (c *Catalog) Get(id string) (Skill, error) {
	i, ok := c.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill %q not found", id)
	}
	return c.skills[i], nil
}

// Has reports whether id names a skill in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every skill in catalog order. The slice is a copy.
func (c *Catalog) All() []Skill {
	return slices.Clone(c.skills)
}

// ByCategory returns the skills of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Skill {
	return slices.Clone(c.byCategory[cat])
}

// Len returns the number of skills.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Categories returns the categories that have at least one skill,
// in display order.
func (c *Catalog) Categories() []Category {
	var out []Category
	for _, cat := range AllCategories() {
		if len(c.byCategory[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

package skillcatalog

import (
	"testing"
)

func TestDefault_SeedPasses(t *testing.T) {
	if err := validateSkills(seedSkills); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestDefault_AllCategoriesPopulated(t *testing.T) {
	c := Default()
	for _, cat := range AllCategories() {
		if len(c.ByCategory(cat)) == 0 {
			t.Errorf("category %s has no skills", cat)
		}
	}
	if got := len(c.Categories()); got != len(AllCategories()) {
		t.Errorf("Categories() = %d, want %d", got, len(AllCategories()))
	}
}

func TestGet_Exists(t *testing.T) {
	s, err := Default().Get("ic-autoclave")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Category != CategoryInfectionControl {
		t.Errorf("Category = %s, want %s", s.Category, CategoryInfectionControl)
	}
}

func TestGet_NotFound(t *testing.T) {
	if _, err := Default().Get("no-such-skill"); err == nil {
		t.Fatal("expected error for unknown skill")
	}
	if Default().Has("no-such-skill") {
		t.Error("Has() = true for unknown skill")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "mutated"
	if c.All()[0].Name == "mutated" {
		t.Error("All() exposed internal slice")
	}
	if len(all) != c.Len() {
		t.Errorf("len(All()) = %d, Len() = %d", len(all), c.Len())
	}
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	_, err := New([]Skill{
		{ID: "a", Name: "A", Category: CategoryHygiene},
		{ID: "a", Name: "A again", Category: CategoryHygiene},
	})
	if err == nil {
		t.Fatal("expected duplicate ID error")
	}
}

func TestNew_DetectsUnknownCategory(t *testing.T) {
	_, err := New([]Skill{{ID: "a", Name: "A", Category: "surgery"}})
	if err == nil {
		t.Fatal("expected unknown category error")
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]Skill{
		{ID: "b", Name: "B", Category: CategoryReception},
		{ID: "a", Name: "A", Category: CategoryReception},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.ByCategory(CategoryReception)
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("ByCategory order = %v, want [b a]", got)
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryChairside.DisplayName(); got != "Chairside Assisting" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := Category("other").DisplayName(); got != "other" {
		t.Errorf("DisplayName fallback = %q", got)
	}
}

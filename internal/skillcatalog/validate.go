package skillcatalog

import (
	"errors"
	"fmt"
)

// validateSkills checks the skill set for structural issues.
func validateSkills(skills []Skill) error {
	if len(skills) == 0 {
		return errors.New("catalog has no skills")
	}

	known := make(map[Category]bool)
	for _, c := range AllCategories() {
		known[c] = true
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			return fmt.Errorf("skill %q has an empty ID", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate skill ID %q", s.ID)
		}
		seen[s.ID] = true

		if s.Name == "" {
			return fmt.Errorf("skill %q has an empty name", s.ID)
		}
		if !known[s.Category] {
			return fmt.Errorf("skill %q has unknown category %q", s.ID, s.Category)
		}
	}
	return nil
}

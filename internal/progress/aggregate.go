package progress

import "github.com/clinictrack/clinictrack/internal/skillcatalog"

// Compute returns the completion percentage (0-100) for a set of skills
// given one user's records. Each skill is worth MaxLevel points; a skill
// without a record earns nothing. Records for skills outside skills are
// ignored. An empty skill set yields 0.
//
// The percentage is rounded half up: 100*earned/max of 12.5 becomes 13.
func Compute(skills []skillcatalog.Skill, records []Record) int {
	if len(skills) == 0 {
		return 0
	}

	levels := make(map[string]Level, len(records))
	for _, r := range records {
		levels[r.SkillID] = r.Level
	}

	earned := 0
	for _, s := range skills {
		earned += int(levels[s.ID])
	}
	maxPoints := len(skills) * int(MaxLevel)

	return roundPercent(earned, maxPoints)
}

// ComputeByCategory applies Compute to each populated category of the catalog.
func ComputeByCategory(c *skillcatalog.Catalog, records []Record) map[skillcatalog.Category]int {
	out := make(map[skillcatalog.Category]int)
	for _, cat := range c.Categories() {
		out[cat] = Compute(c.ByCategory(cat), records)
	}
	return out
}

// roundPercent computes round-half-up(100*num/den) in integer arithmetic.
func roundPercent(num, den int) int {
	return (200*num + den) / (2 * den)
}

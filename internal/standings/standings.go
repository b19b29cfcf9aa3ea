package standings

import (
	"sort"
	"strings"

	"github.com/clinictrack/clinictrack/internal/progress"
	"github.com/clinictrack/clinictrack/internal/rank"
	"github.com/clinictrack/clinictrack/internal/skillcatalog"
	"github.com/clinictrack/clinictrack/internal/staff"
)

// Standing is one staff member's position on the clinic overview.
type Standing struct {
	User    staff.User
	Percent int
	Rank    rank.Rank
	// Independent counts skills the user performs unsupervised.
	Independent int
}

// Compute returns a standing per user, highest percentage first and ties
// broken by name. Users without records appear at 0%.
func Compute(c *skillcatalog.Catalog, ledger *progress.Ledger, users []staff.User) []Standing {
	skills := c.All()
	out := make([]Standing, 0, len(users))
	for _, u := range users {
		recs := ledger.Records(u.ID)
		pct := progress.Compute(skills, recs)

		indep := 0
		for _, r := range recs {
			if r.Level == progress.Independent && c.Has(r.SkillID) {
				indep++
			}
		}

		out = append(out, Standing{
			User:        u,
			Percent:     pct,
			Rank:        rank.Classify(pct),
			Independent: indep,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return strings.ToLower(out[i].User.Name) < strings.ToLower(out[j].User.Name)
	})
	return out
}

// CountByRank tallies standings per rank label.
func CountByRank(rows []Standing) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Rank.Label]++
	}
	return counts
}

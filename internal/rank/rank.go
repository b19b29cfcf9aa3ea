package rank

// Rank is a named tier reached at a minimum completion percentage.
type Rank struct {
	Label string
	Min   int
}

// table lists ranks in ascending order of Min. The first entry must have
// Min 0 so that every percentage classifies.
var table = []Rank{
	{Label: "Trainee", Min: 0},
	{Label: "Junior", Min: 21},
	{Label: "Standard", Min: 41},
	{Label: "Expert", Min: 61},
	{Label: "Master", Min: 81},
}

// Well-known ranks, exported for comparisons.
var (
	Trainee  = table[0]
	Junior   = table[1]
	Standard = table[2]
	Expert   = table[3]
	Master   = table[4]
)

// All returns every rank in ascending order.
func All() []Rank {
	out := make([]Rank, len(table))
	copy(out, table)
	return out
}

// Classify returns the highest rank whose minimum the percentage reaches.
// Percentages below zero classify as the lowest rank.
func Classify(pct int) Rank {
	for i := len(table) - 1; i > 0; i-- {
		if pct >= table[i].Min {
			return table[i]
		}
	}
	return table[0]
}

// Tier returns the rank's zero-based position in the table, or -1 for a
// rank that is not in the table.
func (r Rank) Tier() int {
	for i, t := range table {
		if t == r {
			return i
		}
	}
	return -1
}

// Next returns the rank after the one pct classifies as, and how many
// percentage points are still needed to reach it. ok is false at the top.
func Next(pct int) (next Rank, needed int, ok bool) {
	tier := Classify(pct).Tier()
	if tier == len(table)-1 {
		return Rank{}, 0, false
	}
	next = table[tier+1]
	return next, next.Min - pct, true
}

func (r Rank) String() string {
	return r.Label
}

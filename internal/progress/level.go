package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a staff member's mastery of a single skill, in increasing order.
type Level int

const (
	Unexperienced Level = iota // Never performed or observed
	Observed                   // Watched a mentor perform it
	Assisted                   // Performed with a mentor's help
	Independent                // Performs it unsupervised
)

// MaxLevel is the highest attainable level and the per-skill point cap.
const MaxLevel = Independent

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	return []Level{Unexperienced, Observed, Assisted, Independent}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Unexperienced && l <= MaxLevel
}

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Unexperienced:
		return "unexperienced"
	case Observed:
		return "observed"
	case Assisted:
		return "assisted"
	case Independent:
		return "independent"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case Unexperienced:
		return "Not yet"
	case Observed:
		return "Observed"
	case Assisted:
		return "Assisted"
	case Independent:
		return "Independent"
	default:
		return "Unknown"
	}
}

// ParseLevel accepts a level name ("assisted") or its ordinal ("2").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		l := Level(n)
		if !l.Valid() {
			return 0, fmt.Errorf("level %d out of range 0-%d", n, int(MaxLevel))
		}
		return l, nil
	}
	for _, l := range AllLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

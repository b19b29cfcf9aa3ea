package theme

import (
	"strings"
	"testing"

	"github.com/clinictrack/clinictrack/internal/rank"
)

func TestRankBadge_ContainsLabel(t *testing.T) {
	for _, r := range rank.All() {
		if got := RankBadge(r); !strings.Contains(got, r.Label) {
			t.Errorf("RankBadge(%s) = %q", r.Label, got)
		}
	}
	if got := RankBadge(rank.Rank{Label: "Legend"}); !strings.Contains(got, "Legend") {
		t.Errorf("fallback badge = %q", got)
	}
}

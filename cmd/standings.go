package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/rank"
	"github.com/clinictrack/clinictrack/internal/standings"
	"github.com/clinictrack/clinictrack/internal/ui/layout"
	"github.com/clinictrack/clinictrack/internal/ui/theme"
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show every staff member's overall progress and rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		name, err := a.ClinicName(cmd.Context())
		if err != nil {
			return err
		}

		rows := standings.Compute(a.Catalog, a.Mentor.Ledger(), a.Staff.List())
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, layout.RenderHeader(name, "Standings", fmt.Sprintf("%d staff", len(rows)), layout.DefaultWidth))
		fmt.Fprintf(out, "%-24s  %-8s  %5s  %11s  %s\n", "Name", "Role", "Score", "Independent", "Rank")
		fmt.Fprintln(out, layout.Rule(72))
		for _, s := range rows {
			fmt.Fprintf(out, "%-24s  %-8s  %4d%%  %5d/%-5d  %s\n",
				s.User.Name, s.User.Role.DisplayName(), s.Percent,
				s.Independent, a.Catalog.Len(), theme.RankBadge(s.Rank))
		}

		counts := standings.CountByRank(rows)
		var parts []string
		for _, r := range rank.All() {
			if n := counts[r.Label]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", r.Label, n))
			}
		}
		if len(parts) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Subtitle.Render(strings.Join(parts, " · ")))
		}
		return nil
	},
}

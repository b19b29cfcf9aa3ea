package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/app"
	"github.com/clinictrack/clinictrack/internal/mentor"
	"github.com/clinictrack/clinictrack/internal/progress"
	"github.com/clinictrack/clinictrack/internal/store"
	"github.com/clinictrack/clinictrack/internal/ui/components"
	"github.com/clinictrack/clinictrack/internal/ui/layout"
	"github.com/clinictrack/clinictrack/internal/ui/theme"
)

const barWidth = 48

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record and review skill progress",
}

var progressSetCmd = &cobra.Command{
	Use:   "set <user> <skill> <level>",
	Short: "Record a staff member's level on a skill (mentors and admins)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := progress.ParseLevel(args[2])
		if err != nil {
			return err
		}
		comment, _ := cmd.Flags().GetString("comment")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		by, err := actor(cmd, a)
		if err != nil {
			return err
		}
		target, err := a.Staff.Lookup(args[0])
		if err != nil {
			return err
		}

		rec, err := a.Mentor.Apply(cmd.Context(), by, mentor.UpdateRequest{
			TargetUserID: target.ID,
			SkillID:      args[1],
			Level:        level,
			Comment:      comment,
		})
		if err != nil {
			return err
		}

		sum := a.Mentor.Summary(target.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s → %s (overall %d%%, %s)\n",
			target.Name, skillName(a, rec.SkillID), rec.Level.Label(), sum.Percent, sum.Rank)
		return nil
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show [user]",
	Short: "Show a staff member's progress (defaults to --as)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := targetUser(cmd, a, args)
		if err != nil {
			return err
		}
		clinic, err := a.ClinicName(cmd.Context())
		if err != nil {
			return err
		}
		sum := a.Mentor.Summary(u.ID)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, layout.RenderHeader(clinic, u.Name, u.Role.DisplayName(), layout.DefaultWidth))
		fmt.Fprintln(out, theme.Title.Render("Rank")+"  "+theme.RankBadge(sum.Rank))
		fmt.Fprintln(out, components.NewProgressBar("Overall", sum.Percent, true, barWidth).View())
		if sum.NextRank != nil {
			fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%d points to %s", sum.Needed, sum.NextRank.Label)))
		}
		fmt.Fprintln(out)

		for _, c := range a.Catalog.Categories() {
			fmt.Fprintln(out, components.NewProgressBar(fmt.Sprintf("%-20s", c.DisplayName()), sum.ByCategory[c], true, barWidth).View())
		}

		if len(sum.Records) == 0 {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-32s  %-12s  %-16s  %s\n", "Skill", "Level", "Updated", "Comment")
		fmt.Fprintln(out, layout.Rule(84))
		for _, r := range sum.Records {
			fmt.Fprintf(out, "%-32s  %-12s  %-16s  %s\n",
				skillName(a, r.SkillID), r.Level.Label(), r.UpdatedAt.Local().Format("2006-01-02 15:04"), r.Comment)
		}
		return nil
	},
}

var progressHistoryCmd = &cobra.Command{
	Use:   "history [user]",
	Short: "Show recorded progress changes (defaults to --as)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := targetUser(cmd, a, args)
		if err != nil {
			return err
		}

		events, err := a.Events.QueryProgressEvents(cmd.Context(), u.ID, store.QueryOpts{})
		if err != nil {
			return err
		}
		if limit > 0 && len(events) > limit {
			events = events[len(events)-limit:]
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No progress recorded yet."))
			return nil
		}
		for _, e := range events {
			by := e.ActorID
			if m, err := a.Staff.Resolve(e.ActorID); err == nil {
				by = m.Name
			}
			from := "-"
			if e.PreviousLevel != nil {
				from = progress.Level(*e.PreviousLevel).Label()
			}
			fmt.Fprintf(out, "%s  %-32s  %s → %s  by %s",
				e.Timestamp.Local().Format("2006-01-02 15:04"), skillName(a, e.SkillID),
				from, progress.Level(e.Level).Label(), by)
			if e.Comment != "" {
				fmt.Fprintf(out, "  %q", e.Comment)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

// skillName returns the catalog name for id, or id itself for skills that
// have left the catalog.
func skillName(a *app.App, id string) string {
	if s, err := a.Catalog.Get(id); err == nil {
		return s.Name
	}
	return id
}

func init() {
	progressSetCmd.Flags().String("comment", "", "Mentor comment")
	progressHistoryCmd.Flags().Int("limit", 20, "Show at most this many recent changes (0 for all)")

	progressCmd.AddCommand(progressSetCmd)
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressHistoryCmd)
}

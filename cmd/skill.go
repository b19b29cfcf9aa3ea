package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/skillcatalog"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		catalog := skillcatalog.Default()

		skills := catalog.All()
		if category != "" {
			skills = catalog.ByCategory(skillcatalog.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s  %-40s  %s\n", "ID", "Name", "Category")
		fmt.Fprintln(out, strings.Repeat("─", 84))

		for _, s := range skills {
			name := s.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Fprintf(out, "%-18s  %-40s  %s\n", s.ID, name, s.Category.DisplayName())
		}

		fmt.Fprintf(out, "\n%d skills\n", len(skills))
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. infection-control)")

	skillCmd.AddCommand(skillListCmd)
}

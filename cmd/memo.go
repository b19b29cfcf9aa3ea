package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/ui/theme"
)

var memoCmd = &cobra.Command{
	Use:   "memo",
	Short: "Personal training notes",
}

var memoAddCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a memo for the acting user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := actor(cmd, a)
		if err != nil {
			return err
		}
		book, err := a.Memos(cmd.Context())
		if err != nil {
			return err
		}
		m, err := book.Add(cmd.Context(), u.ID, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved memo %s\n", m.ID)
		return nil
	},
}

var memoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the acting user's memos, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := actor(cmd, a)
		if err != nil {
			return err
		}
		book, err := a.Memos(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		memos := book.ForUser(u.ID)
		if len(memos) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No memos."))
			return nil
		}
		for _, m := range memos {
			fmt.Fprintf(out, "%s  %s\n  %s\n",
				theme.Subtitle.Render(m.CreatedAt.Local().Format("2006-01-02 15:04")), m.ID, m.Body)
		}
		return nil
	},
}

var memoDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a memo (owner or admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := actor(cmd, a)
		if err != nil {
			return err
		}
		book, err := a.Memos(cmd.Context())
		if err != nil {
			return err
		}
		if err := book.Delete(cmd.Context(), u, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
		return nil
	},
}

func init() {
	memoCmd.AddCommand(memoAddCmd)
	memoCmd.AddCommand(memoListCmd)
	memoCmd.AddCommand(memoDeleteCmd)
}

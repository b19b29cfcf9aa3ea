package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/staff"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage clinic staff",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a staff member (the first one must be an admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		roleFlag, _ := cmd.Flags().GetString("role")

		role, err := staff.ParseRole(roleFlag)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var by *staff.User
		if ref, _ := cmd.Flags().GetString("as"); ref != "" {
			u, err := a.Actor(ref)
			if err != nil {
				return err
			}
			by = &u
		}

		u, err := a.AddStaff(cmd.Context(), by, name, role)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) %s\n", u.Name, u.Role.DisplayName(), u.ID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff members",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		users := a.Staff.List()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-36s  %-24s  %s\n", "ID", "Name", "Role")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, u := range users {
			fmt.Fprintf(out, "%-36s  %-24s  %s\n", u.ID, u.Name, u.Role.DisplayName())
		}
		fmt.Fprintf(out, "\n%d staff\n", len(users))
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("name", "", "Display name")
	userAddCmd.Flags().String("role", string(staff.RoleNewbie), "Role: newbie, mentor or admin")
	_ = userAddCmd.MarkFlagRequired("name")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}

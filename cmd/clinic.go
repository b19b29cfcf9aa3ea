package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clinicCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Clinic settings",
}

var clinicNameCmd = &cobra.Command{
	Use:   "name [new name]",
	Short: "Show or change the clinic name (changing requires admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			name, err := a.ClinicName(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		}

		u, err := actor(cmd, a)
		if err != nil {
			return err
		}
		name := strings.Join(args, " ")
		if err := a.SetClinicName(cmd.Context(), u, name); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Clinic renamed to", strings.TrimSpace(name))
		return nil
	},
}

func init() {
	clinicCmd.AddCommand(clinicNameCmd)
}

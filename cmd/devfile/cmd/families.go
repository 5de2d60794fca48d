package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the families of the database",
	Args:  cobra.NoArgs,
	RunE:  runFamilies,
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}

func runFamilies(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	families, err := catalog.Families()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, family := range families {
		devices, err := catalog.Devices(family)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s %4d devices\n", family, len(devices))
	}
	return nil
}

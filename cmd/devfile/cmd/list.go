package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <family>",
	Short: "List the devices of a family",
	Long: `List the RefNames of all devices of a family.

Examples:
  devfile list STM32F4
  devfile list f1`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	family := familyName(args[0])
	devices, err := catalog.Devices(family)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return fmt.Errorf("no devices in family %s", family)
	}
	for _, ref := range devices {
		fmt.Fprintln(cmd.OutOrStdout(), ref)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/devfile/internal/export"
)

var memoryCmd = &cobra.Command{
	Use:   "memory <refname>",
	Short: "Show the memory map",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemory,
}

func init() {
	rootCmd.AddCommand(memoryCmd)
}

func runMemory(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	res, err := catalog.Device(args[0])
	if err != nil {
		return err
	}

	d := res.Device
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%s)\n", d.Name, d.Core, d.Architecture)
	if defines := d.Defines(); len(defines) > 0 {
		fmt.Fprintf(out, "defines: %v, header: %s\n", defines, d.Header)
	}
	export.RenderMemory(out, d)
	return nil
}

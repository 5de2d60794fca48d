package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/devfile/internal/export"
)

var pinsCmd = &cobra.Command{
	Use:   "pins <refname>",
	Short: "Show the alternate functions of every pin",
	Args:  cobra.ExactArgs(1),
	RunE:  runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
}

func runPins(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintf(out, "%s (%s%d)\n", d.Name, d.Package, d.PinCount)
	export.RenderPins(out, d)
	return nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/devfile/internal/export"
)

var (
	generateFamily string
	generateStdout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [refname...]",
	Short: "Write device files",
	Long: `Assemble devices and write one device file each into the output
directory. Devices are named by RefName; --family selects a whole family.

A device that fails to assemble is reported and skipped; the command exits
with an error after processing the rest.

Examples:
  devfile generate STM32F407VGTx STM32F103C8Tx
  devfile generate --family f4 --format cbor -o build/devices
  devfile generate STM32F030F4Px --stdout`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFamily, "family", "",
		"generate every device of a family")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false,
		"write to stdout instead of the output directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && generateFamily == "" {
		return fmt.Errorf("name at least one device or use --family")
	}

	catalog, err := openCatalog()
	if err != nil {
		return err
	}

	refs := args
	if generateFamily != "" {
		devices, err := catalog.Devices(familyName(generateFamily))
		if err != nil {
			return err
		}
		refs = append(refs, devices...)
	}

	format := cfg.OutputFormat()
	out := cmd.OutOrStdout()
	var failed []error
	for _, ref := range refs {
		res, err := catalog.Device(ref)
		if err != nil {
			logger.Error("device skipped", "device", ref, "error", err)
			failed = append(failed, err)
			continue
		}
		for _, w := range res.Warnings {
			logger.Warn("device assembled with warnings", "device", ref, "warning", w)
		}

		if generateStdout {
			if err := export.Encode(out, format, res.Device); err != nil {
				return err
			}
			continue
		}
		path, err := export.WriteFile(cfg.OutputDir, format, res.Device)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s\n", ref, path)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d devices failed: %w", len(failed), len(refs), errors.Join(failed...))
	}
	return nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/devfile/internal/config"
	"github.com/OpenTraceLab/devfile/pkg/stm32"
	"github.com/OpenTraceLab/devfile/pkg/tables"
)

var (
	// Global flags
	cfgFile string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "devfile",
	Short: "STM32CubeMX device description normalizer",
	Long: `Reads the STM32CubeMX part database and turns every device into a
family-agnostic device file: memory map, peripherals, packaging, compiler
defines and the alternate functions of each pin.

Examples:
  devfile families --data-dir ~/STM32CubeMX/db/mcu       # List families
  devfile list STM32F4                                   # List devices of a family
  devfile generate STM32F407VGTx --format json           # Write one device file
  devfile generate --family STM32F1 -o devices           # Write a whole family
  devfile pins STM32F103C8Tx                             # Show pin alternate functions`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		if cfg.File != "" {
			logger.Debug("using config file", "path", cfg.File)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./"+config.DefaultFile+")")
	flags.StringP("data-dir", "d", config.DefaultDataDir, "STM32CubeMX database directory (db/mcu)")
	flags.String("tables", "", "reference table file replacing the built-in tables")
	flags.StringP("output-dir", "o", config.DefaultOutputDir, "output directory for generated files")
	flags.StringP("format", "f", config.DefaultFormat, "output format: json, yaml or cbor")
	flags.BoolP("verbose", "v", false, "verbose output")
}

// openCatalog opens the configured database with the configured tables.
func openCatalog() (*stm32.Catalog, error) {
	opts := stm32.Options{Logger: logger}
	if cfg.Tables != "" {
		t, err := tables.LoadFile(cfg.Tables)
		if err != nil {
			return nil, err
		}
		opts.Tables = t
	}
	return stm32.Open(cfg.DataDir, opts)
}

// familyName accepts "f4", "F4" or "STM32F4".
func familyName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "STM32") {
		s = "STM32" + s
	}
	return s
}

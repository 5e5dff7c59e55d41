package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger  *zap.Logger
	presets *kinetic.Config
)

// frameDT is the simulated frame step used by the offline commands.
const frameDT = 1.0 / 60

// maxFrames bounds offline simulations (ten simulated minutes).
const maxFrames = 60 * 60 * 10

var rootCmd = &cobra.Command{
	Use:   "kinetic",
	Short: "Inspect and preview kinetic motion presets",
	Long: `kinetic samples the built-in motion presets (scroll curves, staggered
disclosures, reveals and typewriters) on a simulated clock and prints
what a renderer would see each frame.

Use --config to layer a YAML preset file over the built-ins.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML preset file merged over the built-ins")

	rootCmd.AddCommand(curveCmd, menuCmd, revealCmd, typeCmd, presetsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	presets, err = loadPresets(configPath)
	return err
}

// loadPresets returns the built-in presets with the file at path, if any,
// merged on top. The file may use built-in springs.
func loadPresets(path string) (*kinetic.Config, error) {
	c := kinetic.DefaultConfig()
	if path == "" {
		return c, nil
	}
	return kinetic.LoadConfigFileOver(c, path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

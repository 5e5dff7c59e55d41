package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
)

var (
	curveSteps  int
	curveSpring bool
)

var curveCmd = &cobra.Command{
	Use:   "curve <preset>",
	Short: "Print the style curve of a scroll preset",
	Long: `Samples a scroll preset's style map at evenly spaced progress values.

With --spring, prints the spring-smoothed response instead: progress jumps
from 0 to 1 and each row is one simulated 60 fps frame.`,
	Args: cobra.ExactArgs(1),
	RunE: runCurve,
}

func init() {
	curveCmd.Flags().IntVarP(&curveSteps, "steps", "n", 11, "number of rows to print")
	curveCmd.Flags().BoolVar(&curveSpring, "spring", false, "print the spring response to a 0 to 1 step")
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := presets.ScrollConfig(args[0])
	if err != nil {
		return err
	}
	if curveSteps < 2 {
		return fmt.Errorf("--steps must be at least 2, got %d", curveSteps)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if curveSpring {
		if err := springCurve(w, cfg); err != nil {
			return err
		}
		return w.Flush()
	}

	fmt.Fprintln(w, "progress\topacity\tblur\ttranslateX\ttranslateY\tscale")
	for i := 0; i < curveSteps; i++ {
		p := float64(i) / float64(curveSteps-1)
		writeStyleRow(w, fmt.Sprintf("%.3f", p), cfg.Styles.Evaluate(p))
	}
	return w.Flush()
}

func springCurve(w io.Writer, cfg kinetic.ScrollConfig) error {
	sc := kinetic.DefaultSpringConfig()
	if cfg.Spring != nil {
		sc = *cfg.Spring
	}
	s, err := kinetic.NewSpring(sc, 0)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "frame\tprogress\topacity\tblur\ttranslateX\ttranslateY\tscale")
	for i := 0; i < curveSteps; i++ {
		p := s.Step(1, frameDT)
		writeStyleRow(w, fmt.Sprintf("%d\t%.3f", i+1, p), cfg.Styles.Evaluate(p))
		if s.Settled() {
			fmt.Fprintf(w, "settled after %d frames\n", i+1)
			break
		}
	}
	return nil
}

func writeStyleRow(w io.Writer, label string, s kinetic.Style) {
	fmt.Fprintf(w, "%s\t%.3f\t%.2f\t%.2f\t%.2f\t%.3f\n",
		label, s.Opacity, s.Blur, s.TranslateX, s.TranslateY, s.Scale)
}

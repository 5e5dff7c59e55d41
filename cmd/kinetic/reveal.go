package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
)

var revealPreset string

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Simulate a staggered reveal preset",
	Long: `Makes a reveal's container visible at time zero and prints when each
item revealed and the style it settled on.`,
	Args: cobra.NoArgs,
	RunE: runReveal,
}

func init() {
	revealCmd.Flags().StringVarP(&revealPreset, "preset", "p", "projects", "reveal preset name")
}

func runReveal(cmd *cobra.Command, args []string) error {
	cfg, err := presets.Reveal(revealPreset)
	if err != nil {
		return err
	}

	engine := kinetic.NewEngine(logger)
	defer engine.Dispose()
	r, err := engine.NewReveal(revealPreset, cfg)
	if err != nil {
		return err
	}
	at := make([]time.Duration, r.Len())
	r.OnReveal(func(i int) { at[i] = engine.Now() })

	r.SetVisible(true)
	// Run until the last item's tween has had time to finish.
	var doneAt time.Duration
	for i := 0; i < maxFrames; i++ {
		engine.Update(frameDT)
		if !r.Done() {
			continue
		}
		if doneAt == 0 {
			doneAt = engine.Now()
		}
		if engine.Now()-doneAt > cfg.Duration {
			break
		}
	}
	if !r.Done() {
		return fmt.Errorf("reveal %q did not finish within %d frames", revealPreset, maxFrames)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "item\tdelay\trevealed\topacity\tblur\ttranslateX\ttranslateY\tscale")
	for _, it := range r.Items() {
		writeStyleRow(w, fmt.Sprintf("%d\t%v\t%v", it.Index, it.Delay, at[it.Index]), r.ItemStyle(it.Index))
	}
	return w.Flush()
}

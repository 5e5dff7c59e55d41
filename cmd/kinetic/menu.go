package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
)

var menuPreset string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Simulate opening and closing a disclosure preset",
	Long: `Opens a disclosure, closes it as soon as it is fully open, and prints
every state transition at its simulated time followed by the per-item
enter and exit schedule.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVarP(&menuPreset, "preset", "p", "floating-menu", "disclosure preset name")
}

type transition struct {
	at       time.Duration
	from, to kinetic.DisclosureState
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := presets.Disclosure(menuPreset)
	if err != nil {
		return err
	}

	engine := kinetic.NewEngine(logger)
	defer engine.Dispose()
	d, err := engine.NewDisclosure(menuPreset, cfg)
	if err != nil {
		return err
	}
	var log []transition
	d.OnChange(func(from, to kinetic.DisclosureState) {
		log = append(log, transition{at: engine.Now(), from: from, to: to})
		if to == kinetic.DisclosureOpen {
			d.Close()
		}
	})

	d.Open()
	for i := 0; i < maxFrames && d.State() != kinetic.DisclosureClosed; i++ {
		engine.Update(frameDT)
	}
	if d.State() != kinetic.DisclosureClosed {
		return fmt.Errorf("disclosure %q did not close within %d frames", menuPreset, maxFrames)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d items, collapse wait %v\n\n", menuPreset, cfg.ItemCount, d.WaitTime())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "time\tfrom\tto")
	for _, tr := range log {
		fmt.Fprintf(w, "%v\t%s\t%s\n", tr.at, tr.from, tr.to)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "item\tenter\texit\texit done")
	for i := 0; i < cfg.ItemCount; i++ {
		fmt.Fprintf(w, "%d\t%v\t%v\t%v\n", i, d.ItemEnterDelay(i), d.ItemExitDelay(i), d.ItemExitComplete(i))
	}
	return w.Flush()
}

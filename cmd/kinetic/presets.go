package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available presets and easings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		names := presets.Names()
		kinds := make([]string, 0, len(names))
		for k := range names {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(out, "%s: %s\n", k, strings.Join(names[k], ", "))
		}
		fmt.Fprintf(out, "easings: %s\n", strings.Join(kinetic.EaseNames(), ", "))
		return nil
	},
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
)

var (
	typePreset   string
	typeDuration time.Duration
	typeHeadless bool
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Run a typewriter preset in the terminal",
	Long: `Runs a typewriter preset live in the terminal until Esc, q or Ctrl-C,
or until --duration elapses.

With --headless, simulates --duration (default 10s) on a virtual clock and
prints every text change with its time instead.`,
	Args: cobra.NoArgs,
	RunE: runType,
}

func init() {
	typeCmd.Flags().StringVarP(&typePreset, "preset", "p", "hero", "typewriter preset name")
	typeCmd.Flags().DurationVarP(&typeDuration, "duration", "d", 0, "stop after this long (0 runs until quit)")
	typeCmd.Flags().BoolVar(&typeHeadless, "headless", false, "print text changes on a simulated clock instead of drawing")
}

func runType(cmd *cobra.Command, args []string) error {
	cfg, err := presets.Typewriter(typePreset)
	if err != nil {
		return err
	}
	if typeDuration < 0 {
		return fmt.Errorf("--duration must not be negative, got %v", typeDuration)
	}
	if typeHeadless {
		d := typeDuration
		if d == 0 {
			d = 10 * time.Second
		}
		return simulateTypewriter(cmd.OutOrStdout(), cfg, d)
	}
	return liveTypewriter(cmd.Context(), cfg, typeDuration)
}

func simulateTypewriter(out io.Writer, cfg kinetic.TypewriterConfig, d time.Duration) error {
	engine := kinetic.NewEngine(logger)
	defer engine.Dispose()
	tw, err := engine.NewTypewriter(typePreset, cfg)
	if err != nil {
		return err
	}
	tw.OnText(func(text string) {
		fmt.Fprintf(out, "%10v  %q\n", engine.Now(), text)
	})
	tw.Start()
	// Advance the timeline directly so changes print at their exact times.
	engine.Timeline().Advance(d)
	return nil
}

func liveTypewriter(ctx context.Context, cfg kinetic.TypewriterConfig, d time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	engine := kinetic.NewEngine(logger)
	defer engine.Dispose()
	tw, err := engine.NewTypewriter(typePreset, cfg)
	if err != nil {
		return err
	}
	engine.Subscribe(func(dt float64) {
		drawTypewriter(screen, tw.Text(), tw.Cursor(engine.Now()))
	})
	tw.Start()

	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	err = kinetic.Loop(ctx, engine, kinetic.DefaultFrameInterval)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func drawTypewriter(screen tcell.Screen, text string, cursor bool) {
	screen.Clear()
	w, h := screen.Size()
	runes := []rune(text)
	x := (w - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	y := h / 2
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
	if cursor {
		screen.SetContent(x+len(runes), y, ' ', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
	}
	screen.Show()
}

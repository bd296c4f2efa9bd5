// Command flexel-demo runs a small layout scenario against a text paint
// backend and prints the resulting paint commands per tick. It exists to
// exercise the full tick sequence end to end: build, measure, arrange,
// binding sync, hit testing, draw.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sorenbell/flexel"
)

var (
	width     float64
	height    float64
	ticks     int
	themeTOML string
	strict    bool
)

var rootCmd = &cobra.Command{
	Use:   "flexel-demo",
	Short: "Run a flexel layout scenario and print paint commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().Float64Var(&width, "width", 300, "panel width in pixels")
	rootCmd.Flags().Float64Var(&height, "height", 200, "panel height in pixels")
	rootCmd.Flags().IntVar(&ticks, "ticks", 3, "number of ticks to run")
	rootCmd.Flags().StringVar(&themeTOML, "theme", "", "path to a TOML theme file")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "panic on invariant violations instead of logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	styles := flexel.NewStyleResolver()
	if themeTOML != "" {
		loaded, err := flexel.LoadTheme(themeTOML)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		styles = loaded
	}

	opts := []flexel.EngineOption{
		flexel.WithLogger(log),
		flexel.WithStyles(styles),
		flexel.WithOwner("demo"),
	}
	if strict {
		opts = append(opts, flexel.WithStrict())
	}
	engine := flexel.NewEngine(opts...)

	// The counter feeds a binding so each tick actually sees a change.
	counter := 0

	out := cmd.OutOrStdout()
	backend := flexel.PaintFunc(func(rect flexel.Rect, style flexel.Style) {
		fmt.Fprintf(out, "  paint %.0fx%.0f@(%.0f,%.0f) fg=%s bg=%s\n",
			rect.Width, rect.Height, rect.X, rect.Y, style.Foreground, style.Background)
	})

	build := func(tc *flexel.TickContext) *flexel.Element {
		header := flexel.Leaf(0, 24,
			flexel.WithKey("header"),
			flexel.WithBasis(24),
			flexel.WithStyle("header"),
			flexel.WithBinding(flexel.Bind(
				func(tc *flexel.TickContext) (int, string, bool) {
					return counter, "counter", true
				},
				func(v int) {},
			)),
		)
		sidebar := flexel.Leaf(60, 0,
			flexel.WithKey("sidebar"),
			flexel.WithBasis(60),
			flexel.WithOnClick(func() {
				fmt.Fprintln(out, "  sidebar clicked")
			}),
		)
		content := flexel.Leaf(120, 0,
			flexel.WithKey("content"),
			flexel.WithWeight(1),
		)
		body := flexel.Row(
			flexel.WithKey("body"),
			flexel.WithWeight(1),
			flexel.WithSpacing(4),
			flexel.WithChildren(sidebar, content),
		)
		return flexel.Column(
			flexel.WithKey("root"),
			flexel.WithChildren(header, body),
		)
	}

	constraints := flexel.Tight(width, height)

	for epoch := int64(1); epoch <= int64(ticks); epoch++ {
		counter++
		fmt.Fprintf(out, "tick %d:\n", epoch)

		changed, err := engine.RunTick(epoch, build, constraints, flexel.Point{}, backend)
		if err != nil {
			return fmt.Errorf("tick %d failed: %w", epoch, err)
		}

		// Poke the middle of the sidebar so the interaction path runs too.
		engine.Dispatch(flexel.PointerEvent{Kind: flexel.PointerDown, X: 30, Y: height / 2})
		engine.Dispatch(flexel.PointerEvent{Kind: flexel.PointerUp, X: 30, Y: height / 2})

		fmt.Fprintf(out, "  changed=%v hits=%d\n", changed, engine.Hits().Len())
	}
	return nil
}

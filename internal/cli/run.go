package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/pkg/clock"
	"sparse-life/pkg/life"
)

func newRunCmd() *cobra.Command {
	cfg := app.NewConfig()
	var configFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless and print the view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(cmd, cfg, configFile); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runHeadless(ctx, cfg, cmd.OutOrStdout())
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file with flag values")
	return cmd
}

func runHeadless(ctx context.Context, cfg *app.Config, out io.Writer) error {
	p, err := cfg.ResolvePattern()
	if err != nil {
		return err
	}

	grid := life.New()
	grid.Seed(p.Cells)
	view := core.NewByteGrid(cfg.Width, cfg.Height)
	view.Origin = view.CenteredOn(life.Cell{})

	var (
		outMu    sync.Mutex
		writeErr error
		finished = make(chan struct{})
		once     sync.Once
	)
	frame := func(gens int) {
		outMu.Lock()
		defer outMu.Unlock()
		if writeErr != nil {
			return
		}
		if cfg.Follow {
			view.Follow(grid)
		}
		view.Project(grid.Cells())
		if _, err := fmt.Fprintf(out, "generation %d population %d\n", gens, grid.Population()); err != nil {
			writeErr = err
			return
		}
		writeErr = render.WriteText(out, view, 'O', '.')
	}

	clk := clock.New(
		clock.WithTicker(func(d time.Duration) clock.Ticker {
			return newLimitTicker(d, cfg.Generations)
		}),
		clock.WithOnTick(func(gens int, _ time.Duration) {
			if cfg.PrintEvery > 0 && gens%cfg.PrintEvery == 0 {
				frame(gens)
			}
			if cfg.Generations > 0 && gens >= cfg.Generations {
				once.Do(func() { close(finished) })
			}
		}),
	)

	logrus.Infof("running %q (%d cells) every %v", p.Name, len(p.Cells), cfg.Interval)
	if cfg.PrintEvery > 0 {
		frame(0)
	}
	if err := clk.Start(grid, cfg.Interval); err != nil {
		return err
	}
	select {
	case <-finished:
	case <-ctx.Done():
		logrus.Info("interrupted")
	}
	clk.Stop()

	stats := core.Snapshot(p.Name, grid, clk)
	outMu.Lock()
	defer outMu.Unlock()
	if writeErr != nil {
		return fmt.Errorf("writing frame: %w", writeErr)
	}
	if _, err := fmt.Fprintln(out, stats.String()); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// limitTicker forwards at most n ticks from a time.Ticker; n == 0 means no
// limit.
type limitTicker struct {
	t    *time.Ticker
	ch   chan time.Time
	quit chan struct{}
}

func newLimitTicker(d time.Duration, n int) *limitTicker {
	lt := &limitTicker{t: time.NewTicker(d), ch: make(chan time.Time), quit: make(chan struct{})}
	go func() {
		for i := 0; n == 0 || i < n; i++ {
			select {
			case <-lt.quit:
				return
			case now := <-lt.t.C:
				select {
				case lt.ch <- now:
				case <-lt.quit:
					return
				}
			}
		}
	}()
	return lt
}

func (l *limitTicker) C() <-chan time.Time { return l.ch }

func (l *limitTicker) Stop() {
	l.t.Stop()
	close(l.quit)
}

//go:build ebiten

package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sparse-life/internal/app"
	"sparse-life/pkg/life"
)

func init() {
	extraCommands = append(extraCommands, newGUICmd)
}

func newGUICmd() *cobra.Command {
	cfg := app.NewConfig()
	var configFile string
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open a window; click to toggle cells, space to start or stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(cmd, cfg, configFile); err != nil {
				return err
			}
			p, err := cfg.ResolvePattern()
			if err != nil {
				return err
			}

			ctl := app.NewController(life.New(), p, cfg)
			defer ctl.Shutdown()
			game := app.New(ctl, cfg)

			ebiten.SetWindowTitle("life: " + p.Name)
			ebiten.SetTPS(cfg.TPS)
			ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

			logrus.Infof("opening %dx%d view on %q", cfg.Width, cfg.Height, p.Name)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file with flag values")
	return cmd
}

//go:build !ebiten

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	extraCommands = append(extraCommands, newGUICmd)
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open a window (requires the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the GUI requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/life`")
		},
	}
}

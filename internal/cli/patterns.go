package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sparse-life/pkg/pattern"
)

func newPatternsCmd() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List built-in patterns or export one as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if export != "" {
				p, err := pattern.Lookup(export)
				if err != nil {
					return err
				}
				return pattern.EncodeYAML(out, p)
			}
			for _, name := range pattern.Names() {
				p, _ := pattern.Lookup(name)
				w, h := p.Size()
				fmt.Fprintf(out, "%-18s %3dx%-3d %s\n", name, w, h, p.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "print the named pattern as a YAML pattern file")
	return cmd
}

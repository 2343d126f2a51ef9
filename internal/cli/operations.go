package cli

import (
	"github.com/spf13/cobra"

	gio "github.com/matzehuels/genomeviz/pkg/io"
)

// operationsCommand lists the export operations accepted by --operation.
func (c *CLI) operationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List supported export operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gio.Operations() {
				op, err := gio.Lookup(name)
				if err != nil {
					return err
				}
				value := "." + op.Extension
				if name == gio.DefaultOperation {
					value += " (default)"
				}
				printKeyValue(name, value)
			}
			return nil
		},
	}
}

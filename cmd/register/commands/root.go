package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "register",
		Short: "Point-of-sale register for a single-location comic shop",
	}

	root.AddCommand(serveCmd(), seedCmd())
	return root.Execute()
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safar/go-pos-register/internal/catalog"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the built-in catalog seed as JSON",
		Long:  "Print the built-in catalog seed as JSON, a starting point for a custom REGISTER_SEED_PATH file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := catalog.DefaultSource().Load()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				return fmt.Errorf("encode seed: %w", err)
			}
			return nil
		},
	}
}

// Command remedyctl queries the bundled remedy catalog offline: search,
// symptom tags, Veda Lab matches and dosha scoring, without a running API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ashi-remedies/internal/adapter"
	"ashi-remedies/internal/content"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "remedyctl",
		Short:        "Query the bundled Ayurvedic remedy catalog",
		SilenceUsage: true,
	}
	root.AddCommand(newSearchCmd(), newTagsCmd(), newMatchCmd(), newScoreCmd())
	return root
}

// loadSnapshot builds a snapshot from the embedded seed content only.
func loadSnapshot(ctx context.Context) (*content.Snapshot, error) {
	snap, err := content.NewLoader(adapter.NewMemoryStore()).Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bundled content: %w", err)
	}
	return snap, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

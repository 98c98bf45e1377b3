package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/report"
	"github.com/vertex-lab/kpath/pkg/utils/redisutils"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the edges with the highest centrality saved in Redis",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntP("top", "k", 10, "the number of edges to print")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	config, err := setupConfig(cmd)
	if err != nil {
		return err
	}
	defer config.CloseLogs()

	if config.RedisAddress == "" {
		return errors.New("no redis address: set REDIS_ADDRESS or --redis")
	}

	cl := redisutils.SetupClient(config.RedisAddress)
	defer cl.Close()

	store, err := connectStore(cmd.Context(), cl, config.RedisKey)
	if err != nil {
		return err
	}

	return ShowTop(cmd.Context(), config, cmd.OutOrStdout(), store)
}

// ShowTop() writes the metadata of the saved run and its top edges to out.
func ShowTop(ctx context.Context, config *Config, out io.Writer, store models.CentralityStore) error {
	if store == nil {
		return models.ErrNilStorePointer
	}

	meta, err := store.Meta(ctx)
	if err != nil {
		return err
	}

	scores, err := store.Top(ctx, config.Top)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# %s kappa=%d rho=%d beta=%v seed=%d edges=%d\n",
		meta.Variant, meta.Kappa, meta.Rho, meta.Beta, meta.Seed, store.Size(ctx))

	return report.WriteCSV(out, scores)
}

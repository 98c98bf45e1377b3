package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/vertex-lab/kpath/pkg/centrality"
	"github.com/vertex-lab/kpath/pkg/edgelist"
	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/report"
	"github.com/vertex-lab/kpath/pkg/store/redistore"
	"github.com/vertex-lab/kpath/pkg/utils/redisutils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the edge centrality of the graph in an edge list file",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("graph", "", "the edge list file")
	runCmd.Flags().String("sep", "", "the separator of the node IDs (default any whitespace)")
	runCmd.Flags().String("variant", "erw", "erw (uniform-additive) or werw (weighted)")
	runCmd.Flags().Int("kappa", centrality.DefaultKappa, "the maximum length of a walk")
	runCmd.Flags().Int("rho", -1, "the number of walks (-1 means the number of edges)")
	runCmd.Flags().Float64("beta", -1, "the increment of erw (-1 means 1 / number of edges)")
	runCmd.Flags().Int64("seed", 42, "the seed of the random number generator")
	runCmd.Flags().Int("workers", 1, "the number of workers (erw only)")
	runCmd.Flags().String("strategy", "merge", "how the workers accumulate: merge or atomic")
	runCmd.Flags().String("output", "", "the CSV output file (default stdout)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	config, err := setupConfig(cmd)
	if err != nil {
		return err
	}
	defer config.CloseLogs()

	var store models.CentralityStore
	if config.RedisAddress != "" {
		cl := redisutils.SetupClient(config.RedisAddress)
		defer cl.Close()

		if store, err = connectStore(cmd.Context(), cl, config.RedisKey); err != nil {
			return err
		}
	}

	return Compute(cmd.Context(), config, cmd.OutOrStdout(), store)
}

// connectStore() pings Redis and returns the CentralityStore on it.
func connectStore(ctx context.Context, cl *redis.Client, key string) (*redistore.CentralityStore, error) {
	if err := cl.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	return redistore.NewCentralityStore(cl, key)
}

/*
Compute() loads the graph, runs the configured variant and writes the scores
sorted by descending centrality to the output file, or to out if none is set.
If store is not nil, the scores and the run metadata are saved there too.
*/
func Compute(ctx context.Context, config *Config, out io.Writer, store models.CentralityStore) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if config.GraphFile == "" {
		return errors.New("no graph file: set GRAPH_FILE or --graph")
	}

	G, readStats, err := edgelist.ReadFile(config.GraphFile, edgelist.Options{Separator: config.Separator})
	if err != nil {
		return fmt.Errorf("error reading %v: %w", config.GraphFile, err)
	}

	config.Log.Info("loaded %v: %d nodes, %d edges (%d lines, %d comments, %d self-loops, %d duplicates)",
		config.GraphFile, G.NodeCount(), G.EdgeCount(), readStats.Lines, readStats.Comments,
		readStats.SelfLoops, readStats.Duplicates)

	if readStats.SelfLoops > 0 || readStats.Duplicates > 0 {
		config.Log.Warn("skipped %d self-loops and %d duplicate edges", readStats.SelfLoops, readStats.Duplicates)
	}

	params := config.Params(G)
	config.Log.Info("running %s: kappa=%d rho=%d beta=%v seed=%d workers=%d",
		config.Variant, params.Kappa, params.Rho, params.Beta, config.Seed, config.Workers)

	start := time.Now()
	var stats centrality.Stats
	if config.Workers > 1 {
		stats, err = centrality.ParallelERW(G, params, config.Seed, config.Workers, config.Strategy)
	} else {
		stats, err = centrality.Run(G, config.Variant, params, rand.New(rand.NewSource(config.Seed)))
	}

	if err != nil {
		config.Log.Error("run failed: %v", err)
		return err
	}

	config.Log.Info("performed %d walks in %v: %d steps, %d dead ends",
		stats.Walks, time.Since(start), stats.Steps, stats.DeadEnds)

	scores, err := models.Snapshot(G)
	if err != nil {
		return err
	}

	summary := centrality.Summarize(scores)
	config.Log.Info("scores of %d edges: total=%v mean=%v stddev=%v min=%v median=%v max=%v",
		summary.Edges, summary.Total, summary.Mean, summary.StdDev, summary.Min, summary.Median, summary.Max)

	if err := writeScores(config, out, scores); err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(ctx, config.Meta(params), scores); err != nil {
			return fmt.Errorf("error saving the scores: %w", err)
		}
		config.Log.Info("saved %d scores to the store", store.Size(ctx))
	}

	return nil
}

func writeScores(config *Config, out io.Writer, scores models.CentralityMap) error {
	if config.OutputFile == "" {
		return report.WriteCSV(out, models.Sorted(scores))
	}

	if err := report.WriteFile(config.OutputFile, scores); err != nil {
		return fmt.Errorf("error writing %v: %w", config.OutputFile, err)
	}

	config.Log.Info("wrote %d scores to %v", len(scores), config.OutputFile)
	return nil
}

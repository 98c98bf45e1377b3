// kpath computes the edge centrality of an undirected graph with bounded
// random walks (ERW-KPath and WERW-KPath), and saves the results to a CSV
// table and optionally to Redis.
//
// The configuration is read from the environment (and an optional .env
// file); command line flags override it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "kpath",
	Short:        "Random-walk edge centrality of undirected graphs",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("env", ".env", "the .env file to load, if present")
	rootCmd.PersistentFlags().Bool("print-config", false, "print the configuration before running")
	rootCmd.PersistentFlags().String("redis", "", "the address of the Redis server")
	rootCmd.PersistentFlags().String("key", "", "the key prefix of the scores in Redis")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

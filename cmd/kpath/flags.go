package main

import (
	"github.com/spf13/cobra"
	"github.com/vertex-lab/kpath/pkg/centrality"
)

// setupConfig() loads the .env file and the environment into a config, then
// applies the flags set on the command line.
func setupConfig(cmd *cobra.Command) (*Config, error) {
	envFile, _ := cmd.Flags().GetString("env")
	if err := LoadEnv(envFile); err != nil {
		return nil, err
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := applyFlagOverrides(cmd, config); err != nil {
		config.CloseLogs()
		return nil, err
	}

	if show, _ := cmd.Flags().GetBool("print-config"); show {
		config.Print()
	}

	return config, nil
}

// applyFlagOverrides() applies the flags that have been set to the config.
// Flags not defined on the command are ignored.
func applyFlagOverrides(cmd *cobra.Command, config *Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("graph") {
		config.GraphFile, _ = flags.GetString("graph")
	}
	if flags.Changed("sep") {
		config.Separator, _ = flags.GetString("sep")
	}
	if flags.Changed("variant") {
		name, _ := flags.GetString("variant")
		if config.Variant, err = centrality.ParseVariant(name); err != nil {
			return err
		}
	}
	if flags.Changed("kappa") {
		config.Kappa, _ = flags.GetInt("kappa")
	}
	if flags.Changed("rho") {
		config.Rho, _ = flags.GetInt("rho")
	}
	if flags.Changed("beta") {
		config.Beta, _ = flags.GetFloat64("beta")
	}
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		config.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("strategy") {
		name, _ := flags.GetString("strategy")
		if config.Strategy, err = centrality.ParseStrategy(name); err != nil {
			return err
		}
	}
	if flags.Changed("output") {
		config.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("redis") {
		config.RedisAddress, _ = flags.GetString("redis")
	}
	if flags.Changed("key") {
		config.RedisKey, _ = flags.GetString("key")
	}
	if flags.Changed("top") {
		config.Top, _ = flags.GetInt("top")
	}

	return nil
}

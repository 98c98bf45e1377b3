package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/kpath/pkg/centrality"
	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/store/redistore"
	"github.com/vertex-lab/kpath/pkg/utils/logger"
)

// The configuration parameters of kpath.
type Config struct {
	Log       *logger.Aggregate
	LogWriter io.Writer

	// edge list input
	GraphFile string
	Separator string

	// the run. Rho and Beta equal to -1 mean the defaults of the graph.
	Variant  centrality.Variant
	Kappa    int
	Rho      int
	Beta     float64
	Seed     int64
	Workers  int
	Strategy centrality.Strategy

	// outputs. An empty OutputFile means stdout, an empty RedisAddress means no store.
	OutputFile   string
	RedisAddress string
	RedisKey     string
	Top          int
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		Log:       logger.New(os.Stderr),
		LogWriter: os.Stderr,
		Variant:   centrality.UniformAdditive,
		Kappa:     centrality.DefaultKappa,
		Rho:       -1,
		Beta:      -1,
		Seed:      42,
		Workers:   1,
		Strategy:  centrality.MergeLocal,
		RedisKey:  redistore.DefaultKey,
		Top:       10,
	}
}

func (c *Config) Print() {
	fmt.Println("Config:")
	fmt.Printf("  LogWriter: %T\n", c.LogWriter)
	fmt.Printf("  GraphFile: %s\n", c.GraphFile)
	fmt.Printf("  Separator: %q\n", c.Separator)
	fmt.Printf("  Variant: %s\n", c.Variant)
	fmt.Printf("  Kappa: %d\n", c.Kappa)
	fmt.Printf("  Rho: %d\n", c.Rho)
	fmt.Printf("  Beta: %v\n", c.Beta)
	fmt.Printf("  Seed: %d\n", c.Seed)
	fmt.Printf("  Workers: %d\n", c.Workers)
	fmt.Printf("  Strategy: %s\n", c.Strategy)
	fmt.Printf("  OutputFile: %s\n", c.OutputFile)
	fmt.Printf("  RedisAddress: %s\n", c.RedisAddress)
	fmt.Printf("  RedisKey: %s\n", c.RedisKey)
	fmt.Printf("  Top: %d\n", c.Top)
}

// LoadEnv() loads the variables of the .env file at path into the environment,
// without overriding the ones already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %v: %w", path, err)
	}
	return nil
}

// LoadConfig() read the variables from the enviroment and parses them into a config struct.
func LoadConfig() (*Config, error) {
	var config = NewConfig()
	var err error

	// the log file, if already opened, is closed on every error
	fail := func(err error) (*Config, error) {
		config.CloseLogs()
		return nil, err
	}

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stderr
			if strings.HasSuffix(val, ".log") {
				logs, file, err := logger.Open(val)
				if err != nil {
					return fail(fmt.Errorf("error opening file \"%v\": %v", val, err))
				}
				config.Log, config.LogWriter = logs, file
			}

		case "GRAPH_FILE":
			config.GraphFile = val

		case "SEPARATOR":
			config.Separator = val

		case "VARIANT":
			config.Variant, err = centrality.ParseVariant(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %w", keyVal, err))
			}

		case "KAPPA":
			config.Kappa, err = strconv.Atoi(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}

		case "RHO":
			config.Rho, err = strconv.Atoi(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}

		case "BETA":
			config.Beta, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}

		case "SEED":
			config.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}

		case "WORKERS":
			config.Workers, err = strconv.Atoi(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}

		case "STRATEGY":
			config.Strategy, err = centrality.ParseStrategy(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %w", keyVal, err))
			}

		case "OUTPUT_FILE":
			config.OutputFile = val

		case "REDIS_ADDRESS":
			config.RedisAddress = val

		case "REDIS_KEY":
			config.RedisKey = val

		case "TOP":
			config.Top, err = strconv.Atoi(val)
			if err != nil {
				return fail(fmt.Errorf("error parsing %v: %v", keyVal, err))
			}
		}
	}

	return config, nil
}

// Validate() returns an error if the config can't describe a run.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", models.ErrInvalidParameter, c.Workers)
	}

	if c.Workers > 1 && c.Variant != centrality.UniformAdditive {
		return fmt.Errorf("%w: only %s can run on multiple workers", models.ErrInvalidParameter, centrality.UniformAdditive)
	}

	if c.Rho < -1 {
		return fmt.Errorf("%w: rho must be -1 (default) or non-negative, got %d", models.ErrInvalidParameter, c.Rho)
	}

	if c.Beta < 0 && c.Beta != -1 {
		return fmt.Errorf("%w: beta must be -1 (default) or non-negative, got %v", models.ErrInvalidParameter, c.Beta)
	}

	return nil
}

// Params() returns the parameters of the run on G, replacing the -1 values
// of rho and beta with the defaults of G.
func (c *Config) Params(G models.WeightedGraph) centrality.Params {
	params := centrality.DefaultParams(G)
	params.Kappa = c.Kappa

	if c.Rho >= 0 {
		params.Rho = c.Rho
	}

	if c.Beta >= 0 {
		params.Beta = c.Beta
	}

	return params
}

// Meta() returns the metadata of a run with the specified params.
func (c *Config) Meta(params centrality.Params) models.Meta {
	return models.Meta{
		Variant: string(c.Variant),
		Kappa:   params.Kappa,
		Rho:     params.Rho,
		Beta:    params.Beta,
		Seed:    c.Seed,
	}
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout && file != os.Stderr {
		file.Close()
	}
}

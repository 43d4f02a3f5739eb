// Command xorshift128plus prints a reproducible xorshift128+ sequence, one
// value per line, so that outputs can be diffed against other implementations.
//
//	xorshift128plus --kind u32 --seed 4293262078 --count 5
//	xorshift128plus --config generator.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/LinusU/go-xorshift128plus"
	"github.com/LinusU/go-xorshift128plus/config"
	"github.com/LinusU/go-xorshift128plus/internal/telemetry"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type cli struct {
	Config    string `name:"config" short:"c" env:"XORSHIFT_CONFIG" help:"Path to a yaml generator config. Overrides the inline seed flags."`
	Kind      string `name:"kind" short:"k" env:"XORSHIFT_SEED_KIND" enum:"bytes,u32,u64,string" default:"u64" help:"Seed kind."`
	Seed      string `name:"seed" short:"s" env:"XORSHIFT_SEED" default:"0" help:"Seed value (hex bytes, integer or text depending on kind)."`
	Count     int    `name:"count" short:"n" env:"XORSHIFT_COUNT" default:"5" help:"Number of values to print."`
	LogLevel  string `name:"log-level" env:"XORSHIFT_LOG_LEVEL" default:"info" help:"Log level."`
	LogFormat string `name:"log-format" env:"XORSHIFT_LOG_FORMAT" enum:"console,json" default:"console" help:"Log format."`
}

func (c *cli) generatorConfig() (*config.Generator, error) {
	if c.Config != "" {
		return config.LoadConfig(c.Config)
	}

	cfg := &config.Generator{
		Seed:  config.Seed{Kind: config.SeedKind(c.Kind), Value: c.Seed},
		Count: c.Count,
		Logs:  config.LogsCfg{Level: c.LogLevel, Format: c.LogFormat},
	}
	cfg.AdjustConfig()
	return cfg, nil
}

func main() {
	// a missing .env is fine, environment and flags still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading dotenv failed: %s\n", err)
		os.Exit(1)
	}

	var args cli
	kctx := kong.Parse(&args,
		kong.Name("xorshift128plus"),
		kong.Description("Print a reproducible xorshift128+ sequence in [0, 1)."),
	)

	cfg, err := args.generatorConfig()
	kctx.FatalIfErrorf(err)

	kctx.FatalIfErrorf(run(cfg, os.Stdout, os.Stderr))
}

func run(cfg *config.Generator, stdout, stderr io.Writer) error {
	logger, err := telemetry.NewLogger(cfg.Logs, stderr)
	if err != nil {
		return err
	}

	rng, err := xorshift128plus.New(&cfg.Seed)
	if err != nil {
		return fmt.Errorf("build generator: %w", err)
	}

	logger.Debug().
		Str("kind", string(cfg.Seed.Kind)).
		Str("state", rng.String()).
		Int("count", cfg.Count).
		Msg("generator seeded")

	if rng.IsZero() {
		logger.Warn().
			Str("kind", string(cfg.Seed.Kind)).
			Str("seed", cfg.Seed.Value).
			Msg("seed expands to the all-zero state, every value will be 0")
	}

	sampler := telemetry.NewSampler()
	buf := make([]byte, 0, 32)
	for i := 0; i < cfg.Count; i++ {
		v := rng.Next()
		sampler.Observe(v)

		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err = stdout.Write(buf); err != nil {
			return fmt.Errorf("write value %d: %w", i, err)
		}
	}

	sampler.Snapshot().Log(logger)

	return nil
}

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cute-angelia/go-xrandom/syntax/irandom"
	"github.com/cute-angelia/go-xrandom/utils/conf"
	"github.com/cute-angelia/go-xrandom/utils/ilog"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	v       *viper.Viper
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{v: conf.New()}

	cmd := &cobra.Command{
		Use:           "xrandom",
		Short:         "Uniform random integers over an inclusive range",
		Long:          `xrandom draws integers uniformly from [start, end], both ends included.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Uint64("seed", 0, "seed for the seeded source")
	pf.String("source", conf.SourceGlobal, "random source: global, seeded or crypto")
	pf.String("format", conf.FormatText, "output format: text or json")
	pf.String("log-level", "info", "log level")
	pf.String("log-format", conf.LogFormatConsole, "log format: console or json")

	for key, flag := range map[string]string{
		"seed":       "seed",
		"source":     "source",
		"format":     "format",
		"log_level":  "log-level",
		"log_format": "log-format",
	} {
		// flags only win when set explicitly
		_ = opts.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(intCmd(opts))
	cmd.AddCommand(statsCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}

// load merges config file, env, flags and the optional [start] [end] positional arguments.
func (o *rootOptions) load(args []string) (*conf.Config, error) {
	if err := conf.LoadConfigFile(o.v, o.cfgFile); err != nil {
		return nil, err
	}

	keys := []string{"start", "end"}
	for i, arg := range args {
		n, err := cast.ToIntE(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", keys[i], arg)
		}
		o.v.Set(keys[i], n)
	}

	return conf.Decode(o.v)
}

func newSampler(cfg *conf.Config, log zerolog.Logger) (*irandom.Sampler, error) {
	switch cfg.Source {
	case conf.SourceGlobal:
		if cfg.Seed != 0 {
			log.Warn().Uint64("seed", cfg.Seed).Msg("seed ignored, use --source seeded")
		}
		return irandom.New(), nil
	case conf.SourceSeeded:
		return irandom.New(irandom.WithSeed(cfg.Seed)), nil
	case conf.SourceCrypto:
		return irandom.New(irandom.WithCrypto()), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// setup is the common prologue of the sampling subcommands.
// defaultCount is used when neither --count, the config file nor XRANDOM_COUNT set one.
func (o *rootOptions) setup(cmd *cobra.Command, args []string, defaultCount int) (*conf.Config, *irandom.Sampler, zerolog.Logger, error) {
	o.v.SetDefault("count", defaultCount)
	if f := cmd.Flags().Lookup("count"); f != nil && f.Changed {
		n, err := cmd.Flags().GetInt("count")
		if err != nil {
			return nil, nil, zerolog.Nop(), err
		}
		o.v.Set("count", n)
	}

	cfg, err := o.load(args)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	log := ilog.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	s, err := newSampler(cfg, log)
	if err != nil {
		return nil, nil, log, err
	}

	log.Debug().
		Int("start", cfg.Start).
		Int("end", cfg.End).
		Str("source", cfg.Source).
		Msg("sampler ready")

	return cfg, s, log, nil
}

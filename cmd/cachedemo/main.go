package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hedisam/cachedactor/actor"
	"github.com/hedisam/cachedactor/internal/config"
	"github.com/hedisam/cachedactor/internal/logging"
	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/hedisam/cachedactor/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cachedemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cachedemo", flag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "path to a TOML config file")
	metricsAddr := fs.String("metrics-addr", "", "serve prometheus metrics on this address")
	clients := fs.IntP("clients", "n", 0, "number of client processes")
	rounds := fs.IntP("rounds", "r", 0, "calls per client")
	linger := fs.Duration("linger", 0, "keep serving metrics this long before exiting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if *clients > 0 {
		cfg.Demo.Clients = *clients
	}
	if *rounds > 0 {
		cfg.Demo.Rounds = *rounds
	}

	logging.Configure(logging.ProfileRuntime, func(c *logging.Config) {
		if lvl, ok := logging.ParseLevel(cfg.Log.Level); ok {
			c.Level = lvl
		}
		c.NoColor = cfg.Log.NoColor
		if cfg.Log.Timestamp != nil {
			c.Timestamp = *cfg.Log.Timestamp
		}
	})

	err := actor.SetOptions(actor.Options{
		Mailbox:         mailbox.Kind(cfg.Runtime.Mailbox),
		MailboxCapacity: cfg.Runtime.MailboxCapacity,
		LookupTimeout:   cfg.LookupTimeout(),
	})
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		observability.RegisterMetrics()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("metrics server stopped")
			}
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")
	}

	if err := demo(cfg.Demo); err != nil {
		return err
	}
	if *linger > 0 {
		time.Sleep(*linger)
	}
	return nil
}

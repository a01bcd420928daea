package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/config"
	"gridsnake/game"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const title = "Snake"

var (
	cfg        = config.Default()
	logLevel   = "info"
	logFile    = ""
	promEnable = false
	promListen = ":9000"
)

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake plays snake on a wrapping grid",
	Run: func(c *cobra.Command, args []string) {
		windowCmd.Run(c, args)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.IntVar(&cfg.Speed, "speed", cfg.Speed, "ticks per second")
	f.IntVar(&cfg.ScreenWidth, "screen-width", cfg.ScreenWidth, "board width in pixels")
	f.IntVar(&cfg.ScreenHeight, "screen-height", cfg.ScreenHeight, "board height in pixels")
	f.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "cell edge in pixels")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 seeds from the clock")
	f.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	f.StringVar(&logFile, "log-file", logFile, "append logs to this file")
	f.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	f.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(ebitenCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup validates the configuration, points logging at its destination and
// starts the exporter. The returned closer releases the log file.
func setup(quiet bool) (func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	closer := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "log file")
		}
		log.SetOutput(f)
		closer = func() { f.Close() }
	case quiet:
		log.SetOutput(io.Discard)
	}

	prometheus()
	return closer, nil
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

// newGame builds a game from the resolved configuration.
func newGame() *game.Game {
	g := game.NewGame(cfg.Grid(), game.NewRandomizer(uint64(cfg.Seed)))
	log.WithFields(log.Fields{
		"Session": g.Session,
		"Speed":   cfg.Speed,
		"Seed":    cfg.Seed,
	}).Debug("configuration")
	return g
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// exit logs err and terminates with a non-zero status. Cancellation by
// signal counts as a normal stop.
func exit(err error) {
	if err == nil || errors.Cause(err) == context.Canceled {
		return
	}
	log.WithError(err).Error("game stopped")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

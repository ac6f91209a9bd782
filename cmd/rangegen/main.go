package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hasbyte1/go-collection-utils/internal/rangeflags"
)

var version = "(devel)"

func setupLogger(verbose bool, logFile string) error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// stdout carries the generated values
	logConsole := os.Stderr

	handlers := []slog.Handler{
		tint.NewHandler(logConsole, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logConsole.Fd()),
		}),
	}

	if logFile != "" {
		if st, err := os.Stat(logFile); err == nil && st.IsDir() {
			return errors.Errorf("log file %s is a directory", logFile)
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return errors.Wrapf(err, "failed to create log dir for %s", logFile)
		}

		handlers = append(handlers, slog.NewTextHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // MB
			MaxBackups: 4,
			MaxAge:     30, // days
			Compress:   true,
		}, &slog.HandlerOptions{
			Level: logLevel,
		}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return nil
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	var verbose bool
	var logFile string

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}

	return &cli.App{
		Name:                   "rangegen",
		Usage:                  "print ordered ranges of numbers or dates",
		UsageText:              "rangegen --start 1 --to 10 [--step 2]\n   rangegen --type date --start 2024-01-31 --until 2025-01-31 --step 1m",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		Writer:                 out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output (includes debug)",
				Destination: &verbose,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "also write logs to this file (rotated)",
				Destination: &logFile,
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "element type: int, float or date (YYYY-MM-DD)",
				Value:   string(rangeflags.KindInt),
			},
			&cli.StringFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "first value",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "last value, included when reached exactly",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "end value, never included",
			},
			&cli.StringFlag{
				Name:  "step",
				Usage: "increment per value; dates take 1d, 2w, 3m or 1y (default: one unit towards the end)",
			},
			&cli.IntFlag{
				Name:    "take",
				Aliases: []string{"n"},
				Usage:   "print at most this many values; required without --to/--until",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "output format: text, json or yaml",
				Value:   string(rangeflags.FormatText),
			},
		},
		Before: func(_ *cli.Context) error {
			setupLogger(verbose, logFile)

			return nil
		},
		Action: func(cCtx *cli.Context) error {
			plan := rangeflags.Plan{
				Kind:  rangeflags.Kind(cCtx.String("type")),
				Start: cCtx.String("start"),
				To:    cCtx.String("to"),
				Until: cCtx.String("until"),
				Step:  cCtx.String("step"),
				Take:  cCtx.Int("take"),
			}

			values, err := plan.Generate(slog.Default())
			if err != nil {
				return errors.Wrapf(err, "failed to generate range")
			}
			slog.Debug("Generated range", "count", values.Count())

			return errors.Wrapf(rangeflags.Render(cCtx.App.Writer, rangeflags.Format(cCtx.String("format")), values),
				"failed to write range")
		},
	}
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/etnz/stockpile/cmd"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	setupLogging()

	// Shell completion runs (and exits) before flag parsing when the shell
	// asks for it.
	completion().Complete("spk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// setupLogging configures colored structured logging on stderr at the level
// given by the LOG_LEVEL environment variable (default: info).
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func completion() *complete.Command {
	account := map[string]complete.Predictor{
		"ns":   predict.Nothing,
		"id":   predict.Nothing,
		"item": predict.Nothing,
		"n":    predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.json"),
			"settings-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"register": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing, "id": predict.Nothing, "name": predict.Nothing,
			}},
			"deposit":  {Flags: account},
			"withdraw": {Flags: account},
			"set": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing, "id": predict.Nothing, "item": predict.Nothing,
			}},
			"transfer": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing,
				"item": predict.Nothing, "n": predict.Nothing,
			}},
			"amount":  {Flags: account},
			"amounts": {Flags: account},
			"accounts": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing,
			}},
			"reset": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing, "yes": predict.Nothing,
			}},
			"settings": {Flags: map[string]complete.Predictor{
				"ns": predict.Nothing, "set": predict.Nothing,
			}},
			"query": {Flags: map[string]complete.Predictor{
				"p": predict.Nothing,
			}},
			"fmt": {},
		},
	}
}

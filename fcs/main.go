package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. It mirrors the
// commands registered in cmd: flags predict their value, positional arguments
// predict files or topic names.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file":   predict.Files("*.jsonl"),
		"symbols-file":  predict.Files("*.jsonl"),
		"prices-file":   predict.Files("*.jsonl"),
		"currency":      predict.Set{"AUD", "EUR", "GBP", "USD"},
		"source":        predict.Set{"eodhd", "tradegate", "static"},
		"eodhd-api-key": predict.Something,
	},
	Sub: map[string]*complete.Command{
		"import": {
			Flags: map[string]complete.Predictor{
				"merge": predict.Nothing,
				"v":     predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"export": {
			Flags: map[string]complete.Predictor{
				"o": predict.Files("*.csv"),
			},
		},
		"fmt": {
			Flags: map[string]complete.Predictor{
				"o": predict.Files("*.jsonl"),
			},
		},
		"summary": {
			Flags: map[string]complete.Predictor{
				"d":       predict.Something,
				"priced":  predict.Nothing,
				"refresh": predict.Nothing,
			},
		},
		"holdings": {
			Flags: map[string]complete.Predictor{
				"d":       predict.Something,
				"priced":  predict.Nothing,
				"sectors": predict.Nothing,
				"refresh": predict.Nothing,
			},
		},
		"dividends": {},
		"history": {
			Flags: map[string]complete.Predictor{
				"d":       predict.Something,
				"priced":  predict.Nothing,
				"refresh": predict.Nothing,
			},
		},
		"topic": {
			Args: predict.Set{"accounting", "import", "ledger", "pricing", "readme", "*"},
		},
	},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Complete exits when the shell asks for completions; it must run before
	// flag.Parse.
	completion.Complete("fcs")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

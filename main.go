package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mavin-tools/mavinfetch/internal/fetch"
	"github.com/mavin-tools/mavinfetch/internal/summary"
	"github.com/mavin-tools/mavinfetch/internal/view"
	"github.com/mavin-tools/mavinfetch/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mavinfetch",
		Usage: "fetch, index, label and summarize B-area inspection artifacts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the YAML config file"},
			&cli.StringFlag{Name: "db", Usage: "path to the history database (default: next to the binary)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "copy SourceMap images for one or more days into a per-class output tree",
				Flags: append(dateFlags(),
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "destination directory (overrides config output_dir)"},
					&cli.StringFlag{Name: "model", Usage: "model code, e.g. JF2"},
					&cli.StringFlag{Name: "drives", Usage: "comma-separated drive letters to probe, e.g. E,F,G"},
					&cli.BoolFlag{Name: "include-activemap", Usage: "also copy the paired ActiveMap image"},
				),
				Action: fetch.Action,
			},
			{
				Name:  "summary",
				Usage: "verbatim per-region class counts from result files",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "csv", Usage: "result file (.csv or .xlsx), repeatable"},
					&cli.IntFlag{Name: "top", Value: 10, Usage: "number of classes to show per region"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or yaml"},
				},
				Action: summary.RawAction,
			},
			{
				Name:  "barea",
				Usage: "normalized B-area defect summary with unique cell counts",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "csv", Usage: "result file (.csv or .xlsx), repeatable"},
					&cli.StringFlag{Name: "csv-dir", Usage: "directory to search for result files by day"},
					&cli.StringFlag{Name: "date", Usage: "day for --csv-dir lookup (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "dates", Usage: "comma-separated days for --csv-dir lookup"},
					&cli.StringFlag{Name: "model", Usage: "model code used in result file names"},
					&cli.IntFlag{Name: "top", Value: 10, Usage: "number of classes to show"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or yaml"},
				},
				Action: summary.BAreaAction,
			},
			{
				Name:  "index",
				Usage: "list fetched occurrences grouped by class",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "fetched output tree to index"},
					&cli.StringFlag{Name: "class", Usage: "only show this class (folder name or key)"},
				},
				Action: view.IndexAction,
			},
			{
				Name:  "label",
				Usage: "move an occurrence into HumanReview as RealNG or Overkill",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "fetched output tree"},
					&cli.StringFlag{Name: "class", Usage: "class folder name or key"},
					&cli.StringFlag{Name: "cell", Usage: "cell key of the occurrence"},
					&cli.StringFlag{Name: "region", Usage: "region, e.g. LOWER_B_L"},
					&cli.StringFlag{Name: "label", Usage: "RealNG or Overkill"},
					&cli.BoolFlag{Name: "undo-last", Usage: "undo the most recent labeling move instead"},
				},
				Action: view.LabelAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML cheat sheet of common invocations",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "runs",
				Usage: "list recorded fetch runs, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list"},
				},
				Action: fetch.RunsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// dateFlags is the day selection shared by commands that operate on
// production days. Exactly one of --date, --from/--to or --dates is used.
func dateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "single day (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "from", Usage: "range start day, inclusive"},
		&cli.StringFlag{Name: "to", Usage: "range end day, inclusive"},
		&cli.StringFlag{Name: "dates", Usage: "comma-separated list of days"},
	}
}

package summary

import (
	"fmt"
	"os"
	"strings"

	"github.com/mavin-tools/mavinfetch/internal/common"
	"github.com/mavin-tools/mavinfetch/models"
	"github.com/mavin-tools/mavinfetch/pkg/csvsummary"
	"github.com/mavin-tools/mavinfetch/pkg/dateutil"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// bareaYAML is the structured form of the B-area report for --format yaml.
type bareaYAML struct {
	TotalRows  int                       `yaml:"total_rows"`
	TotalCells int                       `yaml:"total_cells"`
	Classes    map[string]bareaClassYAML `yaml:"classes"`
}

type bareaClassYAML struct {
	Cells       int            `yaml:"cells"`
	Occurrences int            `yaml:"occurrences"`
	ByRegion    map[string]int `yaml:"by_region"`
}

// resolvePaths collects input files from --csv, plus autofind
// (--csv-dir + --date/--dates) when requested.
func resolvePaths(c *cli.Context, model string) ([]string, error) {
	paths := append([]string(nil), c.StringSlice("csv")...)

	if c.IsSet("csv-dir") {
		var days []string
		if c.IsSet("date") {
			days = append(days, c.String("date"))
		}
		if c.IsSet("dates") {
			days = append(days, common.SplitList(c.String("dates"))...)
		}
		if len(days) == 0 {
			return nil, fmt.Errorf("--csv-dir requires --date or --dates")
		}

		dayList, err := dateutil.ParseDatesCSV(strings.Join(days, ","))
		if err != nil {
			return nil, err
		}

		matches, err := csvsummary.FindCSVsForDays(c.String("csv-dir"), model, dayList)
		if err != nil {
			return nil, err
		}
		paths = append(paths, csvsummary.FlattenPaths(matches)...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files (use --csv, or --csv-dir with --date)")
	}
	return paths, nil
}

// RawAction handles the summary command: verbatim class counts per
// region, no normalization.
func RawAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	paths := c.StringSlice("csv")
	if len(paths) == 0 {
		return cli.Exit("at least one --csv file required", 1)
	}

	s, err := csvsummary.Summarize(paths)
	if err != nil {
		logger.Error("summarize failed", "error", err)
		os.Exit(2)
	}

	if c.String("format") == "yaml" {
		out, err := yaml.Marshal(map[string]interface{}{
			"total_rows": s.Rows,
			"overall":    s.Overall,
			"by_region":  s.ByRegion,
		})
		if err != nil {
			logger.Error("failed to marshal summary", "error", err)
			os.Exit(2)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Print(csvsummary.FormatSummary(s, c.Int("top")))
	return nil
}

// BAreaAction handles the barea command: normalized classes with unique
// cell counts, optionally locating input files by day.
func BAreaAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	model := cfg.Model
	if c.IsSet("model") {
		model = c.String("model")
	}

	paths, err := resolvePaths(c, model)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result, err := Run(paths, c.Int("top"),
		func(msg string) { logger.Info(msg) },
		func(done, total int) { logger.Debug("progress", "done", done, "total", total) },
	)
	if err != nil {
		logger.Error("summarize failed", "error", err)
		os.Exit(2)
	}

	if c.String("format") == "yaml" {
		b := result.Summary
		out := bareaYAML{
			TotalRows:  b.TotalRows,
			TotalCells: b.TotalCells,
			Classes:    make(map[string]bareaClassYAML, len(b.RegionCounts)),
		}
		for cls, byRegion := range b.RegionCounts {
			out.Classes[cls] = bareaClassYAML{
				Cells:       b.CellCounts[cls],
				Occurrences: b.Occurrences(cls),
				ByRegion:    byRegion,
			}
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			logger.Error("failed to marshal summary", "error", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Print(result.Text)
	return nil
}

package fetch

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/mavin-tools/mavinfetch/internal/common"
	"github.com/mavin-tools/mavinfetch/models"
	"github.com/mavin-tools/mavinfetch/pkg/dateutil"
	"github.com/mavin-tools/mavinfetch/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ResolveDays interprets the date selection flags: --date, --from/--to,
// or --dates. Exactly one mode must be used.
func ResolveDays(c *cli.Context) ([]time.Time, error) {
	modes := 0
	if c.IsSet("date") {
		modes++
	}
	if c.IsSet("from") || c.IsSet("to") {
		modes++
	}
	if c.IsSet("dates") {
		modes++
	}
	if modes != 1 {
		return nil, fmt.Errorf("select exactly one of --date, --from/--to, --dates")
	}

	switch {
	case c.IsSet("date"):
		day, err := dateutil.ParseYMD(c.String("date"))
		if err != nil {
			return nil, err
		}
		return []time.Time{day}, nil

	case c.IsSet("dates"):
		return dateutil.ParseDatesCSV(c.String("dates"))

	default:
		if !c.IsSet("from") || !c.IsSet("to") {
			return nil, fmt.Errorf("--from and --to must be used together")
		}
		start, err := dateutil.ParseYMD(c.String("from"))
		if err != nil {
			return nil, err
		}
		end, err := dateutil.ParseYMD(c.String("to"))
		if err != nil {
			return nil, err
		}
		return dateutil.DateRangeInclusive(start, end), nil
	}
}

// detailLogInterval spaces out per-file progress lines so long runs stay
// readable at the default log level.
const detailLogInterval = 25

// detailLogDue reports whether the per-file progress line for (done,
// total) should be emitted: the first file, every interval-th file, and
// the last file.
func detailLogDue(done, total int) bool {
	return done == 1 || done == total || done%detailLogInterval == 0
}

// Action handles the fetch command.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	days, err := ResolveDays(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	outDir := c.String("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		return cli.Exit("output directory required (--out or config output_dir)", 1)
	}

	model := cfg.Model
	if c.IsSet("model") {
		model = c.String("model")
	}
	drives := cfg.Drives
	if c.IsSet("drives") {
		drives = common.SplitList(c.String("drives"))
	}
	includeActive := cfg.IncludeActiveMap
	if c.IsSet("include-activemap") {
		includeActive = c.Bool("include-activemap")
	}

	// Ctrl-C flips the cooperative cancel flag; the engine exits at the
	// next safe point with partial stats.
	var cancelled atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancelled.Store(true)
	}()

	logger.Info("starting fetch", "days", len(days), "model", model, "out", outDir)

	stats, err := Run(Options{
		Days:             days,
		OutDir:           outDir,
		Model:            model,
		Drives:           drives,
		IncludeActiveMap: includeActive,
		ExcludedClasses:  cfg.ExcludedClasses,
		Log: func(msg string) {
			logger.Info(msg)
		},
		DetailProgress: func(done, total int, className, filename string) {
			if detailLogDue(done, total) {
				logger.Info("copied", "done", done, "total", total, "class", className, "file", filename)
			}
		},
		IsCancelled: cancelled.Load,
	})
	if err != nil {
		logger.Error("fetch failed", "error", err)
		os.Exit(2)
	}

	recordRun(logger, c.String("db"), model, days, outDir, includeActive, stats)

	out, err := yaml.Marshal(stats)
	if err != nil {
		logger.Error("failed to marshal stats", "error", err)
		os.Exit(2)
	}
	fmt.Print(string(out))

	if stats.Cancelled {
		return cli.Exit("cancelled", 3)
	}
	return nil
}

// recordRun persists the run to the history database. History is an
// audit trail: failure to record is logged, never fatal.
func recordRun(logger *slog.Logger, dbPath, model string, days []time.Time, outDir string, includeActive bool, stats *Stats) {
	database, err := openHistory(dbPath)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer database.Close()

	dayStrs := make([]string, len(days))
	for i, d := range days {
		dayStrs[i] = d.Format("2006-01-02")
	}

	if _, err := database.InsertFetchRun(db.FetchRun{
		Model:            model,
		Days:             dayStrs,
		OutDir:           outDir,
		IncludeActiveMap: includeActive,
		TotalCopied:      stats.TotalCopied,
		TotalOverwritten: stats.TotalOverwritten,
		MissingDays:      stats.MissingDays,
		ActiveIncluded:   stats.ActiveIncluded,
		ActiveMissing:    stats.ActiveMissing,
		Cancelled:        stats.Cancelled,
	}); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}

func openHistory(dbPath string) (*db.DB, error) {
	if dbPath != "" {
		return db.OpenAt(dbPath)
	}
	return db.Open()
}

// RunsAction lists recorded fetch runs, newest first.
func RunsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	database, err := openHistory(c.String("db"))
	if err != nil {
		logger.Error("failed to open run history", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListFetchRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(2)
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, r := range runs {
		status := "ok"
		if r.Cancelled {
			status = "cancelled"
		}
		fmt.Printf("#%d %s model=%s days=%d out=%s copied=%d overwrote=%d missing=%d [%s]\n",
			r.RunID, r.CreatedAt.Format("2006-01-02 15:04"), r.Model, len(r.Days),
			r.OutDir, r.TotalCopied, r.TotalOverwritten, r.MissingDays, status)
	}
	return nil
}

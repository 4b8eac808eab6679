package fetch

import "time"

// LogFn receives human-readable progress lines.
type LogFn func(msg string)

// ProgressFn receives coarse (done, total) file counts.
type ProgressFn func(done, total int)

// DetailProgressFn receives per-file progress: running (done, total), the
// class being copied and the current filename.
type DetailProgressFn func(done, total int, className, filename string)

// CancelFn is polled at safe points; returning true stops the run with
// partial stats.
type CancelFn func() bool

// Options configures one fetch run. Callback fields may be nil.
type Options struct {
	Days             []time.Time
	OutDir           string
	Model            string
	Drives           []string
	IncludeActiveMap bool
	ExcludedClasses  []string

	Log            LogFn
	Progress       ProgressFn
	DetailProgress DetailProgressFn
	IsCancelled    CancelFn
}

// Stats is the accumulated outcome of one fetch run. A cancelled run
// returns whatever had been counted so far.
type Stats struct {
	TotalCopied      int            `yaml:"total_copied"`
	TotalOverwritten int            `yaml:"total_overwritten"`
	MissingDays      int            `yaml:"missing_days"`
	ActiveIncluded   int            `yaml:"active_included"`
	ActiveMissing    int            `yaml:"active_missing"`
	PerClassCopied   map[string]int `yaml:"per_class_copied"`
	Cancelled        bool           `yaml:"cancelled"`
}

func (o *Options) log(msg string) {
	if o.Log != nil {
		o.Log(msg)
	}
}

func (o *Options) progress(done, total int) {
	if o.Progress != nil {
		o.Progress(done, total)
	}
}

func (o *Options) detailProgress(done, total int, className, filename string) {
	if o.DetailProgress != nil {
		o.DetailProgress(done, total, className, filename)
	}
}

func (o *Options) cancelled() bool {
	return o.IsCancelled != nil && o.IsCancelled()
}

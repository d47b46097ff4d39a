package cmdutil

import (
	"github.com/charmbracelet/log"

	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/scaffold"
)

// ProgressReporter renders materialization events as log lines, one
// prefixed logger per stage.
type ProgressReporter struct {
	// Verbose shows one line per written file instead of per stage.
	Verbose bool

	loggers map[scaffold.Stage]*log.Logger
}

// NewProgressReporter creates a log-based reporter.
func NewProgressReporter(verbose bool) *ProgressReporter {
	return &ProgressReporter{Verbose: verbose, loggers: map[scaffold.Stage]*log.Logger{}}
}

func (p *ProgressReporter) logger(stage scaffold.Stage) *log.Logger {
	l, ok := p.loggers[stage]
	if !ok {
		l = output.StageLogger(string(stage))
		p.loggers[stage] = l
	}
	return l
}

// Report implements scaffold.Reporter.
func (p *ProgressReporter) Report(e scaffold.Event) {
	l := p.logger(e.Stage)

	switch e.Kind {
	case scaffold.StageStarted:
		l.Debug("stage started")
	case scaffold.FileWritten:
		status := output.StatusCreated
		if e.Merged {
			status = output.StatusMerged
		}
		if p.Verbose {
			l.Info(output.FormatFileLine(e.Path, status), "bytes", e.Bytes)
		}
	case scaffold.StageFinished:
		if !p.Verbose && e.Files > 0 {
			l.Info("wrote files", "count", e.Files)
		}
	}
}

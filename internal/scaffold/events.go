package scaffold

// Stage names a materialization step.
type Stage string

const (
	StageBase      Stage = "base"
	StageAuth      Stage = "auth"
	StageDatabase  Stage = "database"
	StageAddons    Stage = "addons"
	StageManifests Stage = "manifests"
)

// EventKind identifies the type of progress event.
type EventKind int

const (
	// StageStarted is emitted before a stage resolves its files.
	StageStarted EventKind = iota

	// FileWritten is emitted after each file reaches the filesystem.
	FileWritten

	// StageFinished is emitted after the last file of a stage is written.
	StageFinished
)

func (k EventKind) String() string {
	switch k {
	case StageStarted:
		return "stage-started"
	case FileWritten:
		return "file-written"
	case StageFinished:
		return "stage-finished"
	default:
		return "unknown"
	}
}

// Event is a structured progress notification.
type Event struct {
	Kind  EventKind
	Stage Stage

	// Path is the project-relative file path (FileWritten only).
	Path string

	// Bytes is the size written (FileWritten only).
	Bytes int

	// Merged is true when the file combines content from several stages.
	Merged bool

	// Files is the number of files the stage wrote (StageFinished only).
	Files int
}

// Reporter receives progress events. Implementations decide presentation.
type Reporter interface {
	Report(Event)
}

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// NopReporter discards every event.
var NopReporter Reporter = nopReporter{}

package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTask is returned when a required graph task has neither been computed nor provided.
	ErrMissingTask = zerr.New("missing task")
	// ErrTaskAlreadyProvided is returned when a graph task is provided twice with different values.
	ErrTaskAlreadyProvided = zerr.New("task already provided with a different value")
	// ErrTaskCycle is returned when a graph task transitively requests itself.
	ErrTaskCycle = zerr.New("task requested itself")
	// ErrUnimplementedTaskKind is returned for project task kinds that cannot be exported yet.
	ErrUnimplementedTaskKind = zerr.New("unimplemented task kind")
	// ErrEncoderUnavailable is returned when no encoder is configured for the requested export kind.
	ErrEncoderUnavailable = zerr.New("no encoder available for export kind")
	// ErrExportWriteFailed is returned when an export artifact cannot be written.
	ErrExportWriteFailed = zerr.New("failed to write export output")
	// ErrExportFailed is returned when one or more export tasks fail.
	ErrExportFailed = zerr.New("export failed")
	// ErrConversionFailed is returned when a document cannot be converted to text or markdown.
	ErrConversionFailed = zerr.New("failed to convert document")
	// ErrCompileFailed is returned when the compiler cannot produce a result at all.
	ErrCompileFailed = zerr.New("failed to compile document")
	// ErrInvalidTaskWhen is returned when an export trigger is not recognized.
	ErrInvalidTaskWhen = zerr.New(
		"invalid export trigger, expected one of " +
			"'never', 'onType', 'onSave', 'onDocumentChange', 'onDocumentHasTitle' or 'script'",
	)
	// ErrInvalidTaskType is returned when a task type in the configuration is not recognized.
	ErrInvalidTaskType = zerr.New("invalid task type")
	// ErrInvalidTaskName is returned when a task name contains invalid characters.
	ErrInvalidTaskName = zerr.New("invalid task name")
	// ErrInvalidProjectName is returned when the project name contains invalid characters.
	ErrInvalidProjectName = zerr.New("invalid project name")
	// ErrTaskNotFound is returned when a requested task is not configured.
	ErrTaskNotFound = zerr.New("task not found")
	// ErrMissingEntry is returned when the configuration does not name an entry file.
	ErrMissingEntry = zerr.New("missing entry file")
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")
	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find mist.yaml")
	// ErrStoreCreateFailed is returned when the export store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create export store directory")
	// ErrStoreReadFailed is returned when an export record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read export record")
	// ErrStoreUnmarshalFailed is returned when an export record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal export record")
	// ErrStoreMarshalFailed is returned when an export record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal export record")
	// ErrStoreWriteFailed is returned when an export record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write export record")
	// ErrFileNotFound is returned when a source file exists neither in memory nor on disk.
	ErrFileNotFound = zerr.New("file not found")
	// ErrInvalidLocation is returned when a source location cannot be parsed.
	ErrInvalidLocation = zerr.New("invalid source location, expected FILE:LINE:COLUMN")
	// ErrResolutionFailed is returned when a position cannot be mapped between source and document.
	ErrResolutionFailed = zerr.New("failed to resolve position")
	// ErrMemoryFilesFailed is returned when unsaved editor content cannot be applied.
	ErrMemoryFilesFailed = zerr.New("failed to apply memory files")
	// ErrNoDocumentPosition is returned when a source location is not rendered anywhere.
	ErrNoDocumentPosition = zerr.New("source location is not rendered in the document")
	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)

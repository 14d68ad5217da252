// Package app implements the application layer for mist.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/engine/export"
	"go.trai.ch/mist/internal/engine/graph"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.ExportStore
	tracer       ports.Tracer
	watcher      ports.Watcher
	features     export.Features

	workers  int
	debounce time.Duration
	now      func() time.Time

	mu      sync.Mutex
	outputs map[string]struct{}
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.ExportStore,
	tracer ports.Tracer,
	watcher ports.Watcher,
	features export.Features,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		tracer:       tracer,
		watcher:      watcher,
		features:     features,
		workers:      runtime.NumCPU(),
		debounce:     DefaultDebounceWindow,
		now:          time.Now,
		outputs:      make(map[string]struct{}),
	}
}

// WithWorkers limits how many tasks are exported concurrently.
func (a *App) WithWorkers(n int) *App {
	a.workers = max(n, 1)
	return a
}

// WithDebounce sets the quiet period of the watch loop.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// WithClock replaces the clock used to timestamp export records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ExportOptions configuration for the Export and Watch methods.
type ExportOptions struct {
	// Tasks names the tasks to export. Empty means every configured task.
	Tasks []string
}

// Export compiles the project once and exports the selected tasks as an
// explicit request, so every task not configured as never runs.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tasks, err := selectTasks(project, opts.Tasks)
	if err != nil {
		return err
	}

	world := vfs.NewWorld(project.Root, project.Entry)
	return a.exportPass(ctx, project, world, tasks, domain.ExportSignal{ByEntryUpdate: true})
}

// exportPass runs the selected tasks against one snapshot of the project.
// Failures are logged per task and reported as ErrExportFailed.
func (a *App) exportPass(
	ctx context.Context,
	project *domain.Project,
	world ports.World,
	tasks []export.SelectedTask,
	signal domain.ExportSignal,
) error {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	a.tracer.EmitPlan(ctx, names)

	var (
		mu     sync.Mutex
		failed int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for _, task := range tasks {
		g.Go(func() error {
			if err := a.exportTask(ctx, project, world, task, signal); err != nil {
				a.logger.Error(zerr.With(err, "task", task.Name))
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed > 0 {
		return domain.ErrExportFailed
	}
	return nil
}

func (a *App) exportTask(
	ctx context.Context,
	project *domain.Project,
	world ports.World,
	task export.SelectedTask,
	signal domain.ExportSignal,
) (err error) {
	ctx, span := a.tracer.Start(ctx, task.Name, ports.WithAttribute("kind", string(task.Task.Kind())))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	snap := graph.Snapshot{World: world, Signal: signal}
	record, err := a.store.Get(project.Root, task.Name)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("%s: ignoring unreadable export record: %v", task.Name, err))
	} else if record != nil {
		snap.LastExported = record.Fingerprint
	}

	g, err := export.Prepare(snap, a.tracer, a.features, task)
	if err != nil {
		return err
	}

	compilation, err := graph.Compute(ctx, g, export.ProjectCompilationKey)
	if err != nil {
		return err
	}
	for _, d := range compilation.Diagnostics {
		a.logger.Warn(formatDiagnostic(d))
	}

	art, err := graph.Compute(ctx, g, export.ProjectExportKey)
	if err != nil {
		return err
	}
	if !art.Written {
		a.logger.Debug(fmt.Sprintf("%s: nothing to export", task.Name))
		return nil
	}

	a.mu.Lock()
	a.outputs[art.Path] = struct{}{}
	a.mu.Unlock()

	span.SetAttribute("bytes", art.Size)
	fmt.Fprintf(span, "wrote %s\n", art.Path)
	a.logger.Info(fmt.Sprintf("exported %s to %s (%d bytes)", task.Name, relativePath(project.Root, art.Path), art.Size))

	return a.store.Put(project.Root, domain.ExportRecord{
		Task:        task.Name,
		Path:        art.Path,
		Fingerprint: art.Fingerprint,
		Timestamp:   a.now().UTC(),
	})
}

// selectTasks returns the named tasks, or all tasks sorted by name when names is empty.
func selectTasks(project *domain.Project, names []string) ([]export.SelectedTask, error) {
	if len(names) == 0 {
		for name := range project.Tasks {
			names = append(names, name)
		}
		slices.Sort(names)
	}

	tasks := make([]export.SelectedTask, 0, len(names))
	for _, name := range names {
		task, ok := project.Tasks[name]
		if !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "task", name)
		}
		tasks = append(tasks, export.SelectedTask{Name: name, Task: task})
	}
	return tasks, nil
}

func formatDiagnostic(d domain.Diagnostic) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		d.Location.Filepath, d.Location.Pos.Line+1, d.Location.Pos.Column+1, d.Severity, d.Message)
}

func relativePath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// Clean removes the export records of the project.
func (a *App) Clean(_ context.Context) error {
	root, err := a.configLoader.DiscoverRoot(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := filepath.Join(root, domain.DefaultStorePath())
	a.logger.Info("removing export records...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove export records"), "path", path)
	}
	a.logger.Info("removed export records")
	return nil
}

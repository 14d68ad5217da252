package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/adapters/watcher"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounceWindow is the quiet period after which file changes trigger an export.
const DefaultDebounceWindow = watcher.DefaultDebounceWindow

// Watch exports the selected tasks as if saved, then again after every batch
// of file changes until ctx is done. A change to the configuration reloads it.
// Export failures are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, opts ExportOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if _, err := selectTasks(project, opts.Tasks); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	a.logger.Info(fmt.Sprintf("watching %s", project.Root))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for event := range a.watcher.Events() {
			if a.relevant(project.Root, event.Path) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})
	g.Go(func() error {
		a.rebuild(ctx, project, opts, nil)
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				project = a.reload(project, paths)
				a.rebuild(ctx, project, opts, paths)
			}
		}
	})

	return g.Wait()
}

func (a *App) rebuild(ctx context.Context, project *domain.Project, opts ExportOptions, changed []string) {
	if len(changed) > 0 {
		a.logger.Info(fmt.Sprintf("%d file(s) changed", len(changed)))
	}

	tasks, err := selectTasks(project, opts.Tasks)
	if err != nil {
		a.logger.Error(err)
		return
	}

	start := time.Now()
	world := vfs.NewWorld(project.Root, project.Entry)
	if err := a.exportPass(ctx, project, world, tasks, domain.ExportSignal{ByFsEvents: true}); err != nil {
		a.logger.Warn(fmt.Sprintf("export pass finished with failures in %s", time.Since(start).Round(time.Millisecond)))
		return
	}
	a.logger.Debug(fmt.Sprintf("export pass finished in %s", time.Since(start).Round(time.Millisecond)))
}

// reload returns the new project when the configuration is among paths.
// An invalid configuration keeps the previous project.
func (a *App) reload(project *domain.Project, paths []string) *domain.Project {
	configPath := filepath.Join(project.Root, domain.MistFileName)
	for _, p := range paths {
		if p != configPath {
			continue
		}
		next, err := a.configLoader.Load(project.Root)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "keeping previous configuration"))
			return project
		}
		a.logger.Info("configuration reloaded")
		return next
	}
	return project
}

// relevant reports whether a change to path can affect an export.
// Changes inside the state directory and to written artifacts are ignored.
func (a *App) relevant(root, path string) bool {
	state := filepath.Join(root, domain.MistDirName)
	if path == state || strings.HasPrefix(path, state+string(filepath.Separator)) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	_, written := a.outputs[path]
	return !written
}

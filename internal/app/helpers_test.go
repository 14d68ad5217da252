package app_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/adapters/cas"
	"go.trai.ch/mist/internal/adapters/plaintext"
	"go.trai.ch/mist/internal/adapters/telemetry"
	"go.trai.ch/mist/internal/app"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.trai.ch/mist/internal/engine/export"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// logRecorder keeps what the app logged.
type logRecorder struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []error
}

func (r *logRecorder) info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

func (r *logRecorder) warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, msg)
}

func (r *logRecorder) error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

// exported counts the info lines reporting an export of task.
func (r *logRecorder) exported(task string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, msg := range r.infos {
		if strings.HasPrefix(msg, "exported "+task+" ") {
			n++
		}
	}
	return n
}

func (r *logRecorder) errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

func newLogger(ctrl *gomock.Controller) (*mocks.MockLogger, *logRecorder) {
	rec := &logRecorder{}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).Do(rec.info).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).Do(rec.warn).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Do(rec.error).AnyTimes()
	return logger, rec
}

// fixture is a project on disk with an app wired to the plain-text backend.
type fixture struct {
	root  string
	app   *app.App
	log   *logRecorder
	store *cas.Store
}

func newFixture(t *testing.T, w ports.Watcher, tasks map[string]domain.ProjectTask) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.txt"), "= Mist\n\nHello world\n  indented\n")

	project := &domain.Project{Name: "mist", Root: root, Entry: "main.txt", Tasks: tasks}
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(project, nil).AnyTimes()
	loader.EXPECT().DiscoverRoot(gomock.Any()).Return(root, nil).AnyTimes()

	f := newApp(ctrl, loader, w)
	f.root = root
	return f
}

// newApp wires an app to the plain-text backend and a real export store.
func newApp(ctrl *gomock.Controller, loader ports.ConfigLoader, w ports.Watcher) *fixture {
	logger, rec := newLogger(ctrl)
	store := cas.NewStore()
	compiler := plaintext.NewCompiler()
	features := export.Features{Compiler: compiler, Markdown: compiler, Svg: plaintext.NewSvgEncoder()}

	a := app.New(loader, logger, store, telemetry.NewNoOpTracer(), w, features).WithWorkers(2)
	return &fixture{app: a, log: rec, store: store}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func errMeta(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}

func exportTask(when domain.TaskWhen) domain.ExportTask {
	return domain.ExportTask{When: when, Output: "$root/out/$name"}
}

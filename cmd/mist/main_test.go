package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mist/internal/adapters/cas"
	"go.trai.ch/mist/internal/adapters/telemetry"
	"go.trai.ch/mist/internal/app"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.trai.ch/mist/internal/engine/export"
	"go.uber.org/mock/gomock"
)

func newProvider(application *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, logger), func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mockLogger,
		mocks.NewMockExportStore(ctrl),
		mocks.NewMockTracer(ctrl),
		mocks.NewMockWatcher(ctrl),
		export.Features{},
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	loadErr := errors.New("load failed")
	mockLoader.EXPECT().Load(".").Return(nil, loadErr)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	application := app.New(
		mockLoader,
		mockLogger,
		mocks.NewMockExportStore(ctrl),
		mocks.NewMockTracer(ctrl),
		mocks.NewMockWatcher(ctrl),
		export.Features{},
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"export"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExportFailure verifies that failed tasks are not reported twice.
func TestRun_ExportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	mockLoader.EXPECT().Load(".").Return(&domain.Project{
		Name:  "mist",
		Root:  root,
		Entry: "main.txt",
		Tasks: map[string]domain.ProjectTask{
			"text": &domain.ExportTextTask{Export: domain.ExportTask{When: domain.WhenOnSave, Output: "$root/$name"}},
		},
	}, nil)
	// Only the task failure itself is logged.
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	// Without a compiler every task fails.
	application := app.New(
		mockLoader,
		mockLogger,
		cas.NewStore(),
		telemetry.NewNoOpTracer(),
		mocks.NewMockWatcher(ctrl),
		export.Features{},
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"export"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

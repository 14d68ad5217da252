// Package config loads the project configuration from mist.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// defaultPngPPI is the pixel density of PNG exports that do not set one.
const defaultPngPPI = 144

// Load finds mist.yaml in cwd or one of its parents and returns the project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Mistfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Project != "" && !validNameRegex.MatchString(file.Project) {
		return nil, zerr.With(domain.ErrInvalidProjectName, "project", file.Project)
	}
	if file.Entry == "" {
		return nil, zerr.With(domain.ErrMissingEntry, "path", configPath)
	}

	project := &domain.Project{
		Name:  file.Project,
		Root:  resolveRoot(configPath, file.Root),
		Entry: filepath.ToSlash(file.Entry),
		Tasks: make(map[string]domain.ProjectTask, len(file.Tasks)),
	}

	for name, dto := range file.Tasks {
		if !validNameRegex.MatchString(name) {
			return nil, zerr.With(domain.ErrInvalidTaskName, "task_name", name)
		}
		if dto == nil {
			dto = &TaskDTO{}
		}
		task, err := buildTask(dto)
		if err != nil {
			return nil, zerr.With(err, "task_name", name)
		}
		project.Tasks[name] = task
	}

	if len(project.Tasks) == 0 {
		l.Logger.Warn(fmt.Sprintf("no tasks defined in %s", configPath))
	}

	return project, nil
}

// DiscoverRoot returns the directory of the nearest mist.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func findConfiguration(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(dir, domain.MistFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

func buildTask(dto *TaskDTO) (domain.ProjectTask, error) {
	when, err := domain.ParseTaskWhen(dto.When)
	if err != nil {
		return nil, err
	}
	export := domain.ExportTask{When: when, Output: domain.PathPattern(dto.Output)}

	switch domain.TaskKind(dto.Type) {
	case domain.KindPreview:
		return &domain.PreviewTask{When: when}, nil
	case domain.KindExportPdf:
		return &domain.ExportPdfTask{Export: export, Standards: dto.Standards, Creation: dto.Creation}, nil
	case domain.KindExportPng:
		ppi := dto.PPI
		if ppi <= 0 {
			ppi = defaultPngPPI
		}
		return &domain.ExportPngTask{Export: export, PPI: ppi, Fill: dto.Fill}, nil
	case domain.KindExportSvg:
		return &domain.ExportSvgTask{Export: export}, nil
	case domain.KindExportHtml:
		return &domain.ExportHtmlTask{Export: export}, nil
	case domain.KindExportMarkdown:
		return &domain.ExportMarkdownTask{Export: export}, nil
	case domain.KindExportText:
		return &domain.ExportTextTask{Export: export}, nil
	case domain.KindQuery:
		return &domain.QueryTask{
			Export:   export,
			Format:   dto.Format,
			Selector: dto.Selector,
			Field:    dto.Field,
			One:      dto.One,
		}, nil
	default:
		return nil, zerr.With(domain.ErrInvalidTaskType, "type", dto.Type)
	}
}

// resolveRoot resolves the project root relative to the directory of the config file.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

// Package storage persists the workspace schedule and generated reports
// under the .scurve directory.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

const WorkspaceDir = ".scurve"
const ScheduleFile = "schedule.yaml"
const ReportFile = "report.json"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .scurve directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, WorkspaceDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Must stay a direct child of the workspace dir
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, WorkspaceDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .scurve directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, WorkspaceDir))
	return err == nil
}

// SchedulePath returns the absolute path of the schedule file, for watchers.
func (r *FilesystemRepository) SchedulePath() string {
	return filepath.Join(r.root, WorkspaceDir, ScheduleFile)
}

func (r *FilesystemRepository) SaveSchedule(tasks []schedule.Task) error {
	path, err := r.ResolvePath(ScheduleFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadSchedule() ([]schedule.Task, error) {
	retryer := retry.New[[]schedule.Task](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]schedule.Task, error) {
		path, err := r.ResolvePath(ScheduleFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule file: %w", err)
		}

		var tasks []schedule.Task
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
		}

		return tasks, nil
	})
}

func (r *FilesystemRepository) SaveReport(rep *report.Report) error {
	if rep == nil {
		return fmt.Errorf("report is nil")
	}

	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadReport() (*report.Report, error) {
	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &rep, nil
}

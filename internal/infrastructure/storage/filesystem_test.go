package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

func initializedRepo(t *testing.T) *FilesystemRepository {
	t.Helper()
	repo := NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return repo
}

func TestInitialize(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	if repo.IsInitialized() {
		t.Error("fresh dir must not report initialized")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("expected initialized workspace")
	}
	// idempotent
	if err := repo.Initialize(); err != nil {
		t.Errorf("second Initialize: %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())

	got, err := repo.ResolvePath("schedule.yaml")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	want := filepath.Join(repo.Root(), WorkspaceDir, "schedule.yaml")
	if got != want {
		t.Errorf("ResolvePath = %s, want %s", got, want)
	}

	for _, bad := range []string{"", "../escape.yaml", "../../etc/passwd", "sub/dir.yaml"} {
		if _, err := repo.ResolvePath(bad); err == nil {
			t.Errorf("ResolvePath(%q) must be rejected", bad)
		}
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	repo := initializedRepo(t)

	start, _ := schedule.ParseDate("2024-01-01")
	end, _ := schedule.ParseDate("2024-01-10")
	tasks := []schedule.Task{
		{ID: "t1", Name: "Design", Start: start, End: end, Progress: 40, Kind: schedule.KindTask},
		{ID: "m1", Name: "Kickoff", Start: start, End: start, Kind: schedule.KindMilestone},
	}

	if err := repo.SaveSchedule(tasks); err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}

	loaded, err := repo.LoadSchedule()
	if err != nil {
		t.Fatalf("LoadSchedule: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(loaded))
	}
	if loaded[0].Name != "Design" || loaded[0].Progress != 40 {
		t.Errorf("task fields lost: %+v", loaded[0])
	}
	if !loaded[0].Start.Equal(start) || !loaded[0].End.Equal(end) {
		t.Errorf("dates lost: %+v", loaded[0])
	}
	if loaded[1].Kind != schedule.KindMilestone {
		t.Errorf("kind lost: %+v", loaded[1])
	}
}

func TestLoadSchedule_Missing(t *testing.T) {
	repo := initializedRepo(t)
	if _, err := repo.LoadSchedule(); err == nil {
		t.Error("expected error when the schedule file is absent")
	}
}

func TestReportRoundTrip(t *testing.T) {
	repo := initializedRepo(t)

	d, _ := schedule.ParseDate("2024-01-01")
	rep := &report.Report{
		ID:          "r1",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		SCurveData: curve.Series{
			Points:    []curve.Point{{Day: 1, Date: d, Planned: 0, Actual: 25.5}},
			TotalDays: 1,
		},
		Analysis: report.Analysis{Analysis: "fine", Outlook: "good"},
	}

	if err := repo.SaveReport(rep); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	loaded, err := repo.LoadReport()
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a report")
	}
	if loaded.ID != "r1" || loaded.Analysis.Outlook != "good" {
		t.Errorf("report fields lost: %+v", loaded)
	}
	if loaded.SCurveData.TotalDays != 1 || loaded.SCurveData.Points[0].Actual != 25.5 {
		t.Errorf("series lost: %+v", loaded.SCurveData)
	}
	if !loaded.GeneratedAt.Equal(rep.GeneratedAt) {
		t.Errorf("timestamp changed: %s", loaded.GeneratedAt)
	}
}

func TestLoadReport_MissingIsNotAnError(t *testing.T) {
	repo := initializedRepo(t)
	rep, err := repo.LoadReport()
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if rep != nil {
		t.Error("missing report must load as nil")
	}
}

func TestSaveReport_Nil(t *testing.T) {
	repo := initializedRepo(t)
	if err := repo.SaveReport(nil); err == nil {
		t.Error("expected error for nil report")
	}
}

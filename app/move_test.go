package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/moyu-x/files-mover/pkg/separator"
)

func writeFiles(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%02d.txt", i)), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
}

func TestRunInfo(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 5)

	report, err := RunInfo(&MoveOptions{WorkDir: dir, Num: 2, Prefix: "p", Start: 1, Sort: "name"})
	if err != nil {
		t.Fatalf("RunInfo() error = %v", err)
	}
	if report.FolderCount != 3 || report.FirstFolder != "p1" || report.LastFolder != "p3" {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestRunInfo_InvalidSort(t *testing.T) {
	_, err := RunInfo(&MoveOptions{WorkDir: t.TempDir(), Num: 2, Sort: "colour"})
	var cfgErr *separator.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "sort" {
		t.Fatalf("Expected sort ConfigurationError, got %v", err)
	}
}

func TestRunMove_Declined(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 3)

	asked := false
	_, result, err := RunMove(&MoveOptions{WorkDir: dir, Num: 2, Prefix: "folder-", Start: 1, LockDir: t.TempDir()},
		func(r *separator.Report) (bool, error) {
			asked = true
			return false, nil
		})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Expected ErrAborted, got %v", err)
	}
	if !asked || result != nil {
		t.Errorf("asked = %v, result = %v", asked, result)
	}
	if _, err := os.Stat(filepath.Join(dir, "folder-1")); !os.IsNotExist(err) {
		t.Error("folder-1 should not exist after declining")
	}
}

func TestRunMove_Confirmed(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 3)

	report, result, err := RunMove(&MoveOptions{WorkDir: dir, Num: 2, Prefix: "folder-", Start: 1, LockDir: t.TempDir()},
		func(r *separator.Report) (bool, error) { return true, nil })
	if err != nil {
		t.Fatalf("RunMove() error = %v", err)
	}
	if report.FolderCount != 2 || result.Moved != 3 {
		t.Errorf("report = %+v, result = %+v", report, result)
	}
}

func TestRunMove_EmptyDirSkipsConfirm(t *testing.T) {
	_, result, err := RunMove(&MoveOptions{WorkDir: t.TempDir(), Num: 2, LockDir: t.TempDir()},
		func(r *separator.Report) (bool, error) {
			t.Error("confirm should not be called for an empty directory")
			return false, nil
		})
	if err != nil {
		t.Fatalf("RunMove() error = %v", err)
	}
	if result.Moved != 0 {
		t.Errorf("Moved = %d", result.Moved)
	}
}

func TestSelfExcludes(t *testing.T) {
	paths := SelfExcludes("/etc/files-mover/config.yaml")
	if len(paths) == 0 || paths[len(paths)-1] != "/etc/files-mover/config.yaml" {
		t.Errorf("Unexpected excludes: %v", paths)
	}
}

package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestLister_List(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := []string{
		"file1.txt",
		"file2.txt",
		".hidden_file",
		"subdir/file3.txt",
		".hidden_dir/.hidden_file2",
	}

	for _, file := range testFiles {
		fullPath := filepath.Join(tempDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	lister := NewLister(afero.NewOsFs())
	entries, err := lister.List(tempDir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{".hidden_file", "file1.txt", "file2.txt"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d files, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Name, name)
		}
		if entries[i].Path != filepath.Join(tempDir, name) {
			t.Errorf("entries[%d].Path = %s", i, entries[i].Path)
		}
		if entries[i].Size != int64(len("test content")) {
			t.Errorf("entries[%d].Size = %d", i, entries[i].Size)
		}
		if entries[i].CreateTime.IsZero() {
			t.Errorf("entries[%d].CreateTime is zero", i)
		}
	}
}

func TestLister_List_Exclude(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"a.txt", "files-mover", "b.txt"} {
		if err := afero.WriteFile(fs, filepath.Join("/work", name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	lister := NewLister(fs)
	lister.Exclude("/work/files-mover", "")

	entries, err := lister.List("/work")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Name == "files-mover" {
			t.Error("excluded file should not be listed")
		}
	}
}

func TestLister_List_MemFsUsesModTimeAsCreateTime(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/work/a.txt"
	if err := afero.WriteFile(fs, path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := fs.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	entries, err := NewLister(fs).List("/work")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !entries[0].CreateTime.Equal(mtime) {
		t.Errorf("CreateTime = %v, want %v", entries[0].CreateTime, mtime)
	}
}

func TestLister_DetectKind(t *testing.T) {
	fs := afero.NewMemMapFs()
	testFiles := map[string]string{
		"photo.bin":  "\xff\xd8\xff\xe0\x00\x10JFIF",
		"image.png":  "\x89PNG\r\n\x1a\n",
		"notes.TXT":  "plain text",
		"README":     "no extension",
		"report.pdf": "%PDF-1.4",
	}
	for name, content := range testFiles {
		if err := afero.WriteFile(fs, filepath.Join("/work", name), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	lister := NewLister(fs)
	lister.DetectKind = true

	entries, err := lister.List("/work")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := map[string]string{
		"photo.bin":  "jpg",
		"image.png":  "png",
		"notes.TXT":  "txt",
		"README":     UnknownKind,
		"report.pdf": "pdf",
	}
	for _, e := range entries {
		if e.Kind != want[e.Name] {
			t.Errorf("Kind(%s) = %s, want %s", e.Name, e.Kind, want[e.Name])
		}
	}
}

func TestLister_List_EmptyDir(t *testing.T) {
	tempDir := t.TempDir()

	entries, err := NewLister(afero.NewOsFs()).List(tempDir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if count := len(entries); count != 0 {
		t.Errorf("Expected 0 files, got %d", count)
	}
}

func TestLister_List_NonExistentDir(t *testing.T) {
	_, err := NewLister(afero.NewOsFs()).List("/non/existent/directory")
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}

func TestLister_List_WithSymlinks(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	subDir := filepath.Join(tempDir, "sub")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	if err := os.Symlink(filePath, filepath.Join(tempDir, "link.txt")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}
	if err := os.Symlink(subDir, filepath.Join(tempDir, "link-dir")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	entries, err := NewLister(afero.NewOsFs()).List(tempDir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if count := len(entries); count != 2 {
		t.Errorf("Expected 2 files (original + symlink), got %d", count)
	}
}

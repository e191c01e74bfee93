package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cvkit/md2cv/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp file creation with cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and cleans up", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("", "<html></html>", "html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- test-created path
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(data) != "<html></html>" {
			t.Errorf("content = %q, want %q", data, "<html></html>")
		}
		if !strings.HasSuffix(path, ".html") {
			t.Errorf("path %q should end in .html", path)
		}

		cleanup()
		if fileutil.FileExists(path) {
			t.Error("cleanup should remove the file")
		}
	})

	t.Run("honors target directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path, cleanup, err := fileutil.WriteTempFile(dir, "x", "html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		if filepath.Dir(path) != dir {
			t.Errorf("temp file in %q, want %q", filepath.Dir(path), dir)
		}
	})

	t.Run("rejects empty extension", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile("", "x", "")
		if !errors.Is(err, fileutil.ErrExtensionEmpty) {
			t.Errorf("error = %v, want ErrExtensionEmpty", err)
		}
	})

	t.Run("rejects traversal in extension", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile("", "x", "html/../../etc")
		if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
			t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cv.md")
	if err := os.WriteFile(file, []byte("# CV"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("existing file should be detected")
	}
	if fileutil.FileExists(dir) {
		t.Error("directories are not files")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("missing file should not be detected")
	}
}

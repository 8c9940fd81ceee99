package sysfont

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// writeFonts writes the embedded Go fonts into a temp directory tree,
// one of them nested, and returns the root.
func writeFonts(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "goregular.ttf"), goregular.TTF, 0o600); err != nil {
		t.Fatalf("Failed to write font: %v", err)
	}

	nested := filepath.Join(root, "extra")
	if err := os.Mkdir(nested, 0o700); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "gobold.ttf"), gobold.TTF, 0o600); err != nil {
		t.Fatalf("Failed to write font: %v", err)
	}

	return root
}

// TestResolveByStem tests lookup by file stem.
func TestResolveByStem(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	path, err := r.Resolve("goregular")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(path) != "goregular.ttf" {
		t.Errorf("Expected goregular.ttf, got %s", path)
	}
}

// TestResolveByFamilyName tests lookup by the name-table family name.
func TestResolveByFamilyName(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	// The embedded Go fonts carry the family name "Go".
	path, err := r.Resolve("Go")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("Expected an existing file, got %s: %v", path, statErr)
	}
}

// TestResolveCaseInsensitive tests that matching ignores case.
func TestResolveCaseInsensitive(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	lower, err := r.Resolve("goregular")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	upper, err := r.Resolve("GoRegular")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if lower != upper {
		t.Errorf("Expected case-insensitive match, got %s vs %s", lower, upper)
	}
}

// TestResolveScansNestedDirs tests that the scan walks subdirectories.
func TestResolveScansNestedDirs(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	path, err := r.Resolve("gobold")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(path) != "gobold.ttf" {
		t.Errorf("Expected gobold.ttf, got %s", path)
	}
}

// TestResolveNotFound tests the miss error.
func TestResolveNotFound(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	if _, err := r.Resolve("No Such Family"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestResolveEmptyDir tests an empty directory set.
func TestResolveEmptyDir(t *testing.T) {
	r := New(WithDirs(t.TempDir()))

	if _, err := r.Resolve("anything"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestResolveMissingDir tests that a nonexistent directory is skipped,
// not an error.
func TestResolveMissingDir(t *testing.T) {
	root := writeFonts(t)
	r := New(WithDirs(filepath.Join(root, "does-not-exist"), root))

	if _, err := r.Resolve("goregular"); err != nil {
		t.Errorf("Expected the missing dir to be skipped: %v", err)
	}
}

// TestResolveSkipsNonFontFiles tests that unparsable and non-font files
// do not break the scan.
func TestResolveSkipsNonFontFiles(t *testing.T) {
	root := writeFonts(t)
	if err := os.WriteFile(filepath.Join(root, "junk.ttf"), []byte("junk"), 0o600); err != nil {
		t.Fatalf("Failed to write junk: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatalf("Failed to write txt: %v", err)
	}

	r := New(WithDirs(root))
	if _, err := r.Resolve("goregular"); err != nil {
		t.Errorf("Expected scan to survive junk files: %v", err)
	}
	// Junk keeps its stem key (so a host can still address it by file
	// name) but is never indexed under a real family.
	if _, err := r.Resolve("notes"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected non-font extensions to be ignored, got %v", err)
	}
}

// TestResolveConcurrent tests that the one-time scan is race-free.
func TestResolveConcurrent(t *testing.T) {
	r := New(WithDirs(writeFonts(t)))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = r.Resolve("goregular")
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

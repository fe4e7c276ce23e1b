package doctor_test

import (
	"os"
	"path/filepath"
	"testing"

	"brewtrack/internal/doctor"
	"brewtrack/internal/testsupport"
)

func TestRunAgainstFreshInstall(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	for _, result := range doctor.Run(cfg) {
		if !result.Passed {
			t.Fatalf("expected all checks to pass on a fresh install: %+v", result)
		}
	}
}

func TestRunFlagsCorruptState(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.WriteFile(cfg.StateFilePath(), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	failed := 0
	for _, result := range doctor.Run(cfg) {
		if !result.Passed {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly the state file check to fail, got %d failures", failed)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := doctor.CheckDirectoryAccess("dir", dir); !result.Passed {
		t.Fatalf("expected pass for writable dir: %+v", result)
	}
	if result := doctor.CheckDirectoryAccess("dir", filepath.Join(dir, "missing")); result.Passed {
		t.Fatalf("expected failure for missing dir: %+v", result)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := doctor.CheckDirectoryAccess("dir", file); result.Passed {
		t.Fatalf("expected failure for non-directory: %+v", result)
	}
}

func TestCheckStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brews.json")

	if result := doctor.CheckStateFile("state", path); !result.Passed {
		t.Fatalf("expected absent file to pass: %+v", result)
	}

	if err := os.WriteFile(path, []byte(`[{"name":"Fermenter 1","brew":null}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := doctor.CheckStateFile("state", path); !result.Passed {
		t.Fatalf("expected valid JSON to pass: %+v", result)
	}

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := doctor.CheckStateFile("state", path); result.Passed {
		t.Fatalf("expected invalid JSON to fail: %+v", result)
	}
}

func TestCheckDiskSpace(t *testing.T) {
	if result := doctor.CheckDiskSpace("disk", t.TempDir()); result.Detail == "" {
		t.Fatalf("expected detail, got %+v", result)
	}
}

// Package doctor runs environment health checks for the CLI doctor command:
// directory access, free disk space, and parseability of the persisted state
// files. Checks report results instead of failing so the full picture is
// always shown.
package doctor

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"brewtrack/internal/config"
)

// Result is the outcome of a single health check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// minFreeBytes is the free-space floor below which the disk check warns.
// State files are tiny; running this close to full risks losing the next
// atomic history write.
const minFreeBytes = 50 * 1024 * 1024

// Run executes every check against the given config.
func Run(cfg *config.Config) []Result {
	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckDiskSpace("Data disk space", cfg.Paths.DataDir),
		CheckStateFile("Slot state file", cfg.StateFilePath()),
		CheckStateFile("Brew history file", cfg.HistoryFilePath()),
	}
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable and
// writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies the filesystem holding path has headroom left.
func CheckDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	detail := fmt.Sprintf("%s (%.1f MiB free)", path, float64(free)/(1024*1024))
	if free < minFreeBytes {
		return Result{Name: name, Detail: detail + " (low)"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckStateFile verifies that a persisted JSON file, if present, parses. A
// missing file passes; fresh installs have none.
func CheckStateFile(name, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent, will be created)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: invalid JSON: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d bytes, valid JSON)", path, len(data))}
}

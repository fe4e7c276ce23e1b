package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, slotCount int) string {
	t.Helper()
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[vessels]
default_slot_count = %d
`, filepath.Join(base, "data"), filepath.Join(base, "logs"), slotCount)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestStatusListsDefaultSlots(t *testing.T) {
	configPath := writeTestConfig(t, 3)
	out, err := runCommand(t, "--config", configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, name := range []string{"Fermenter 1", "Fermenter 2", "Fermenter 3"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %q in output:\n%s", name, out)
		}
	}
	if strings.Contains(out, "Fermenter 4") {
		t.Fatalf("unexpected extra slot:\n%s", out)
	}
}

func TestBrewLifecycleThroughCLI(t *testing.T) {
	configPath := writeTestConfig(t, 3)

	if _, err := runCommand(t, "--config", configPath,
		"brew", "create", "1", "--name", "House IPA", "--volume", "20", "--og", "1.050"); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "House IPA") || !strings.Contains(out, "20L") {
		t.Fatalf("expected brew in status:\n%s", out)
	}

	if _, err := runCommand(t, "--config", configPath,
		"transfer", "1", "2", "--loss", "1.5"); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	out, err = runCommand(t, "--config", configPath, "status")
	if err != nil {
		t.Fatalf("status after transfer: %v", err)
	}
	if !strings.Contains(out, "18.5L") {
		t.Fatalf("expected reduced volume in status:\n%s", out)
	}

	if _, err := runCommand(t, "--config", configPath,
		"brew", "set", "2", "--fg", "1.010"); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err = runCommand(t, "--config", configPath, "brew", "show", "2")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "5.34%") {
		t.Fatalf("expected ABV in show output:\n%s", out)
	}

	if _, err := runCommand(t, "--config", configPath, "archive", "2"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	out, err = runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "House IPA") {
		t.Fatalf("expected archived brew in history:\n%s", out)
	}

	out, err = runCommand(t, "--config", configPath, "history", "show", "1")
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	if !strings.Contains(out, "House IPA") || !strings.Contains(out, "Archived to History") {
		t.Fatalf("expected full record in history show:\n%s", out)
	}
	if _, err := runCommand(t, "--config", configPath, "history", "show", "9"); err == nil {
		t.Fatal("expected error for out-of-range history entry")
	}
}

func TestBrewSetRejectsBadMetric(t *testing.T) {
	configPath := writeTestConfig(t, 2)
	if _, err := runCommand(t, "--config", configPath,
		"brew", "create", "1", "--name", "Porter", "--volume", "19"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := runCommand(t, "--config", configPath,
		"brew", "set", "1", "--og", "not-a-number"); err == nil {
		t.Fatal("expected rejection for non-numeric gravity")
	}

	// The rejected update must not have touched the brew.
	out, err := runCommand(t, "--config", configPath, "brew", "show", "1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "OG/FG:     - / -") {
		t.Fatalf("expected gravities unchanged:\n%s", out)
	}

	// "0" is a legitimate reading, distinct from an unparseable value.
	if _, err := runCommand(t, "--config", configPath,
		"brew", "set", "1", "--ph", "0"); err != nil {
		t.Fatalf("expected zero metric accepted: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	configPath := writeTestConfig(t, 4)
	out, err := runCommand(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "Default slots:    4") {
		t.Fatalf("expected configured slot count in output:\n%s", out)
	}
}

func TestLogAddAndShow(t *testing.T) {
	configPath := writeTestConfig(t, 2)
	if _, err := runCommand(t, "--config", configPath,
		"brew", "create", "1", "--name", "Saison", "--volume", "18"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := runCommand(t, "--config", configPath,
		"log", "add", "1", "--type", "Gravity Reading", "gravity 1.020"); err != nil {
		t.Fatalf("log add: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "log", "show", "1")
	if err != nil {
		t.Fatalf("log show: %v", err)
	}
	if !strings.Contains(out, "gravity 1.020") || !strings.Contains(out, "Gravity Reading") {
		t.Fatalf("expected log entry in output:\n%s", out)
	}

	out, err = runCommand(t, "--config", configPath, "chart", "gravity", "1")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !strings.Contains(out, "1.020") {
		t.Fatalf("expected reading in chart:\n%s", out)
	}
}

func TestArchiveEmptyVesselFails(t *testing.T) {
	configPath := writeTestConfig(t, 2)
	if _, err := runCommand(t, "--config", configPath, "archive", "1"); err == nil {
		t.Fatal("expected error for empty vessel")
	}
	if _, err := runCommand(t, "--config", configPath, "archive", "9"); err == nil {
		t.Fatal("expected error for absent vessel")
	}
}

func TestHistoryJSONEmpty(t *testing.T) {
	configPath := writeTestConfig(t, 2)
	out, err := runCommand(t, "--config", configPath, "history", "--json")
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", out)
	}
}

func TestExportCommand(t *testing.T) {
	configPath := writeTestConfig(t, 2)
	target := filepath.Join(t.TempDir(), "backup.json")
	if _, err := runCommand(t, "--config", configPath, "export", target); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"active"`) || !strings.Contains(string(data), `"history"`) {
		t.Fatalf("unexpected export shape:\n%s", data)
	}

	// A second export keeps the previous snapshot as .bak.
	if _, err := runCommand(t, "--config", configPath, "export", target); err != nil {
		t.Fatalf("second export: %v", err)
	}
	if _, err := os.Stat(target + ".bak"); err != nil {
		t.Fatalf("expected backup of previous export: %v", err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if _, err := runCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
}

func TestParseSlotArg(t *testing.T) {
	if index, err := parseSlotArg(" 3 "); err != nil || index != 2 {
		t.Fatalf("expected index 2, got %d (%v)", index, err)
	}
	for _, arg := range []string{"0", "-1", "abc", ""} {
		if _, err := parseSlotArg(arg); err == nil {
			t.Fatalf("expected error for %q", arg)
		}
	}
}

func TestBar(t *testing.T) {
	if got := bar(5, 0, 10); len(got) != barWidth/2 {
		t.Fatalf("expected half-width bar, got %q", got)
	}
	if got := bar(10, 0, 10); len(got) != barWidth {
		t.Fatalf("expected full bar, got %q", got)
	}
	if got := bar(0, 0, 10); len(got) != 1 {
		t.Fatalf("expected minimum bar, got %q", got)
	}
	if got := bar(1, 1, 1); got == "" {
		t.Fatal("expected non-empty bar for flat range")
	}
}

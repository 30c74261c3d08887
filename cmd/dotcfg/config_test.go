package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/dotcfg/internal/fixture"
	"github.com/gorewood/dotcfg/internal/output"
)

// newFixtureDir writes the canned fixture tree into a temp directory.
func newFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := fixture.Materialize(dir); err != nil {
		t.Fatalf("materializing fixture: %v", err)
	}
	return dir
}

func TestConfigCommand_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "no operation",
			args:     []string{"config"},
			wantOut:  "No function to call\n",
			wantCode: 1,
		},
		{
			name:     "unknown operation",
			args:     []string{"config", "config_delete"},
			wantOut:  "Function with name config_delete does not exist\n",
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCmd(t, tt.args...)
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
			if stdout != tt.wantOut {
				t.Errorf("output = %q, want %q", stdout, tt.wantOut)
			}
		})
	}
}

func TestConfigCommand_Read(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "config", "config_read", "--base-dir", base)
	if err != nil {
		t.Fatalf("config_read failed: %v\n%s", err, stdout)
	}

	want := strings.Join([]string{
		"CONFIG_FILE_PATH " + filepath.Join(base, "config", "config_profile.ini"),
		"PROFILE profile",
		"PROFILE_CONFIG_FILE " + filepath.Join(base, "profiles", "profile.ini"),
	}, "\n") + "\n"
	if stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}
}

func TestConfigCommand_ReadJSON(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "--json", "config", "config_read", "--base-dir", base)
	if err != nil {
		t.Fatalf("config_read failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if result["profile"] != "profile" {
		t.Errorf("profile = %v, want %q", result["profile"], "profile")
	}
}

func TestConfigCommand_Failures(t *testing.T) {
	base := newFixtureDir(t)

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "read: configuration file missing",
			args:     []string{"config_read", "--test=2"},
			wantOut:  "Configuration file not found! (test)\n",
			wantCode: 1,
		},
		{
			name:     "read: profile directory missing",
			args:     []string{"config_read", "--test=3"},
			wantOut:  "Profile path not found! (test)\n",
			wantCode: 2,
		},
		{
			name:     "read: no profile key",
			args:     []string{"config_read", "--test=4"},
			wantOut:  "Profile not found!\n",
			wantCode: 3,
		},
		{
			name:     "read: profile file missing",
			args:     []string{"config_read", "--test=5"},
			wantOut:  "Profile configuration file not found! (" + filepath.Join(base, "profiles", "profile_fake.ini") + ")\n",
			wantCode: 4,
		},
		{
			name:     "profile list: directory missing",
			args:     []string{"config_profile_list", "--test=3"},
			wantOut:  "Profile path not found! (test)\n",
			wantCode: 1,
		},
		{
			name:     "theme list: directory missing",
			args:     []string{"config_theme_list", "--test=8"},
			wantOut:  "Theme path not found! (test)\n",
			wantCode: 1,
		},
		{
			name:     "update: configuration file missing",
			args:     []string{"config_profile_update", "--test=2"},
			wantOut:  "Configuration file not found! (test)\n",
			wantCode: 1,
		},
		{
			name:     "update: profile file missing",
			args:     []string{"config_profile_update", "--test=5"},
			wantOut:  "Profile not found!\n",
			wantCode: 2,
		},
		{
			name:     "update: field missing",
			args:     []string{"config_profile_update", "--test=6"},
			wantOut:  "The profile field was not found in the global section\n",
			wantCode: 3,
		},
		{
			name:     "update: explicit field missing",
			args:     []string{"config_profile_update", "--field", "font"},
			wantOut:  "The profile field was not found in the global section\n",
			wantCode: 3,
		},
		{
			name:     "explicit flag overrides scenario",
			args:     []string{"config_read", "--test=2", "--config-file", "config/config_profile_no_profile.ini"},
			wantOut:  "Profile not found!\n",
			wantCode: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"config"}, tt.args...)
			args = append(args, "--base-dir", base)

			stdout, _, err := executeCmd(t, args...)
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
			if stdout != tt.wantOut {
				t.Errorf("output = %q, want %q", stdout, tt.wantOut)
			}
		})
	}
}

func TestConfigCommand_FailureJSON(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "--json", "config", "config_read", "--base-dir", base, "--test=4")
	if got := output.GetExitCode(err); got != 3 {
		t.Errorf("exit code = %d, want 3", got)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if result["error"] != "Profile not found!" {
		t.Errorf("error = %v", result["error"])
	}
	if result["code"] != float64(3) {
		t.Errorf("code = %v, want 3", result["code"])
	}
}

func TestConfigCommand_Lists(t *testing.T) {
	base := newFixtureDir(t)

	tests := []struct {
		op   string
		want string
	}{
		{op: "config_profile_list", want: "2\n"},
		{op: "config_theme_list", want: "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			stdout, _, err := executeCmd(t, "config", tt.op, "--base-dir", base)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.op, err)
			}
			if stdout != tt.want {
				t.Errorf("output = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestConfigCommand_Update(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "config", "config_profile_update", "--base-dir", base)
	if err != nil {
		t.Fatalf("config_profile_update failed: %v\n%s", err, stdout)
	}
	if stdout != "2\n" {
		t.Errorf("output = %q, want %q", stdout, "2\n")
	}

	data, err := os.ReadFile(filepath.Join(base, "profiles", "profile.ini"))
	if err != nil {
		t.Fatalf("reading profile: %v", err)
	}
	if !strings.Contains(string(data), "theme=2") {
		t.Errorf("profile file should contain theme=2:\n%s", data)
	}

	// The profile still resolves after the rewrite.
	if _, _, err := executeCmd(t, "config", "config_read", "--base-dir", base); err != nil {
		t.Errorf("config_read after update failed: %v", err)
	}
}

func TestConfigCommand_UpdateCyclePolicy(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "config", "config_profile_update", "--base-dir", base, "--policy", "cycle")
	if err != nil {
		t.Fatalf("config_profile_update failed: %v", err)
	}
	if stdout != "1\n" {
		t.Errorf("output = %q, want %q (one theme wraps to 1)", stdout, "1\n")
	}
}

func TestConfigCommand_UnknownPolicy(t *testing.T) {
	base := newFixtureDir(t)

	stdout, _, err := executeCmd(t, "config", "config_profile_update", "--base-dir", base, "--policy", "random")
	if got := output.GetExitCode(err); got != 5 {
		t.Errorf("exit code = %d, want 5", got)
	}
	if !strings.Contains(stdout, "unknown update policy") {
		t.Errorf("output = %q, want policy error", stdout)
	}
}

func TestConfigCommand_UnknownScenario(t *testing.T) {
	stdout, _, err := executeCmd(t, "config", "config_read", "--test=7")
	if got := output.GetExitCode(err); got != 5 {
		t.Errorf("exit code = %d, want 5", got)
	}
	if !strings.Contains(stdout, "no test scenario 7") {
		t.Errorf("output = %q, want scenario error", stdout)
	}
}

func TestConfigCommand_SettingsFile(t *testing.T) {
	base := newFixtureDir(t)
	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settingsPath, []byte("base-dir: "+base+"\n"), 0o600); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	stdout, _, err := executeCmd(t, "--settings", settingsPath, "config", "config_theme_list")
	if err != nil {
		t.Fatalf("config_theme_list failed: %v\n%s", err, stdout)
	}
	if stdout != "1\n" {
		t.Errorf("output = %q, want %q", stdout, "1\n")
	}
}

func TestConfigCommand_MissingExplicitSettingsFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, _, err := executeCmd(t, "--settings", missing, "config", "config_read")
	if got := output.GetExitCode(err); got != 5 {
		t.Errorf("exit code = %d, want 5", got)
	}
}

func TestConfigCommand_DebugLogsToStderr(t *testing.T) {
	base := newFixtureDir(t)

	stdout, stderr, err := executeCmd(t, "--debug", "config", "config_read", "--base-dir", base)
	if err != nil {
		t.Fatalf("config_read failed: %v", err)
	}
	if !strings.Contains(stderr, "check_config_file") {
		t.Errorf("stderr should log resolution steps: %q", stderr)
	}
	if strings.Contains(stdout, "check_config_file") {
		t.Errorf("stdout should only hold results: %q", stdout)
	}
}

func TestConfigCommand_CompletesOperations(t *testing.T) {
	want := []string{"config_profile_list", "config_profile_update", "config_read", "config_theme_list"}
	got := newConfigCmd().ValidArgs
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ValidArgs = %v, want %v", got, want)
	}
}

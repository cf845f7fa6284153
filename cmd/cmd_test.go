package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bender-renderfarm/bender-config/internal/config"
	"github.com/bender-renderfarm/bender-config/internal/errors"
	"github.com/bender-renderfarm/bender-config/internal/testutil"
)

func executeCommand(args ...string) (string, string, error) {
	return executeCommandWithInput("", args...)
}

func executeCommandWithInput(input string, args ...string) (string, string, error) {
	// Reset flag values before each test
	cfgFile = ""
	verbose = false
	jsonOutput = false
	initForce = false
	resetForce = false

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)
	cmd.SetIn(nil)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "bender-config") {
		t.Errorf("Help should mention bender-config, got: %s", stdout)
	}
	for _, sub := range []string{"init", "show", "get", "set", "path", "reset", "wizard", "profile"} {
		if !strings.Contains(stdout, sub) {
			t.Errorf("Help should list the %q command, got: %s", sub, stdout)
		}
	}
}

func TestInitCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, _, err := executeCommand("init", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if !env.ConfigExists() {
		t.Fatal("init should create the configuration file")
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load after init: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 5556 {
		t.Errorf("init wrote %s, want default server", cfg.Server.Addr())
	}
	if cfg.Paths.Config != env.ConfigPath {
		t.Errorf("paths.config = %q, want the resolved location %q", cfg.Paths.Config, env.ConfigPath)
	}
}

func TestInitCommand_ExistingFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommand("init", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("init over an existing file should fail without --force")
	}
	if errors.GetExitCode(err) != errors.ExitIOError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitIOError)
	}

	// The existing file is untouched.
	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "render.example.com" {
		t.Error("failed init must not modify the existing file")
	}
}

func TestInitCommand_Force(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommand("init", "--force", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("init --force should write defaults, got host %q", cfg.Server.Host)
	}
}

func TestShowCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	stdout, _, err := executeCommand("show", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	if !strings.Contains(stdout, "[server]") {
		t.Errorf("show output missing [server] table:\n%s", stdout)
	}
	if !strings.Contains(stdout, `host = "render.example.com"`) {
		t.Errorf("show output missing host value:\n%s", stdout)
	}
	if !strings.Contains(stdout, "max_workers = 16") {
		t.Errorf("show output missing max_workers value:\n%s", stdout)
	}
}

func TestShowCommand_MissingFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, _, err := executeCommand("show", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("show without a file should fail")
	}
	if errors.GetExitCode(err) != errors.ExitNotFound {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitNotFound)
	}
}

func TestGetCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	tests := []struct {
		key  string
		want string
	}{
		{"server.host", "render.example.com"},
		{"server.port", "7180"},
		{"limits.max_workers", "16"},
		{"paths.upload", "/data"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			stdout, _, err := executeCommand("get", tt.key, "--config", env.ConfigPath)
			if err != nil {
				t.Fatalf("get %s failed: %v", tt.key, err)
			}
			if got := strings.TrimSpace(stdout); got != tt.want {
				t.Errorf("get %s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetCommand_UnknownKey(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(config.Default())

	_, _, err := executeCommand("get", "server.protocol", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("get with an unknown key should fail")
	}
	if errors.GetExitCode(err) != errors.ExitValidationError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitValidationError)
	}
}

func TestSetCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(config.Default())

	_, _, err := executeCommand("set", "limits.max_workers", "16", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limits.MaxWorkers != 16 {
		t.Errorf("max_workers = %d, want 16", cfg.Limits.MaxWorkers)
	}
	// Everything else keeps its previous value.
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 5556 {
		t.Errorf("set touched unrelated fields: %+v", cfg)
	}
}

func TestSetCommand_InvalidValueLeavesFileUntouched(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(config.Default())

	before, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}

	_, _, cmdErr := executeCommand("set", "server.port", "99999", "--config", env.ConfigPath)
	if cmdErr == nil {
		t.Fatal("set with an out-of-range port should fail")
	}
	if errors.GetExitCode(cmdErr) != errors.ExitValidationError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(cmdErr), errors.ExitValidationError)
	}

	after, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed set must leave the file byte-identical")
	}
}

func TestSetCommand_NotANumber(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(config.Default())

	_, _, err := executeCommand("set", "server.port", "not-a-number", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("set with a non-numeric port should fail")
	}
}

func TestPathCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)

	stdout, _, err := executeCommand("path", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	if got := strings.TrimSpace(stdout); got != env.ConfigPath {
		t.Errorf("path = %q, want %q", got, env.ConfigPath)
	}
}

func TestResetCommand_Force(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommand("reset", "--force", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("after reset config = %+v, want defaults", cfg)
	}
}

func TestResetCommand_Confirmed(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommandWithInput("y\n", "reset", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *config.Default() {
		t.Error("confirmed reset should write defaults")
	}
}

func TestResetCommand_Aborted(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommandWithInput("n\n", "reset", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "render.example.com" {
		t.Error("aborted reset must leave the configuration unchanged")
	}
}

func TestProfileSaveAndList(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(testutil.ModifiedConfig())

	_, _, err := executeCommand("profile", "save", "workstation", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("profile save failed: %v", err)
	}

	stdout, _, err := executeCommand("profile", "list", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("profile list failed: %v", err)
	}
	if !strings.Contains(stdout, "workstation") {
		t.Errorf("profile list missing saved profile:\n%s", stdout)
	}
	if !strings.Contains(stdout, "render.example.com:7180") {
		t.Errorf("profile list missing server column:\n%s", stdout)
	}
}

func TestProfileShow(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddProfile("night-shift", testutil.ModifiedConfig())

	stdout, _, err := executeCommand("profile", "show", "night-shift", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("profile show failed: %v", err)
	}
	if !strings.Contains(stdout, `host = "render.example.com"`) {
		t.Errorf("profile show missing host:\n%s", stdout)
	}
}

func TestProfileApply(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig(config.Default())
	env.AddProfile("night-shift", testutil.ModifiedConfig())

	_, _, err := executeCommand("profile", "apply", "night-shift", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("profile apply failed: %v", err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "render.example.com" || cfg.Limits.MaxWorkers != 16 {
		t.Errorf("applied config = %+v, want the profile values", cfg)
	}
}

func TestProfileDelete(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddProfile("scratch", config.Default())

	_, _, err := executeCommand("profile", "delete", "scratch", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("profile delete failed: %v", err)
	}

	names, err := config.ListProfiles(env.ProfilesDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("profiles after delete = %v, want none", names)
	}
}

func TestProfileDelete_Missing(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, _, err := executeCommand("profile", "delete", "ghost", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("deleting a missing profile should fail")
	}
	if errors.GetExitCode(err) != errors.ExitNotFound {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitNotFound)
	}
}

func TestProfileApply_InvalidName(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, _, err := executeCommand("profile", "apply", "../escape", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("path traversal in a profile name should fail")
	}
	if errors.GetExitCode(err) != errors.ExitValidationError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitValidationError)
	}
}

func TestShowCommand_MalformedFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	data, err := testutil.MalformedConfigData()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteRaw(string(data))

	_, _, cmdErr := executeCommand("show", "--config", env.ConfigPath)
	if cmdErr == nil {
		t.Fatal("show on broken TOML should fail")
	}
	if errors.GetExitCode(cmdErr) != errors.ExitParseError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(cmdErr), errors.ExitParseError)
	}
}

func TestShowCommand_OutOfDomainValue(t *testing.T) {
	env := testutil.NewTestEnv(t)

	data, err := testutil.InvalidConfigData()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteRaw(string(data))

	_, _, cmdErr := executeCommand("show", "--config", env.ConfigPath)
	if cmdErr == nil {
		t.Fatal("show on an out-of-domain value should fail")
	}
	if errors.GetExitCode(cmdErr) != errors.ExitValidationError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(cmdErr), errors.ExitValidationError)
	}
}

func TestGetCommand_FixtureFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	cfg, err := testutil.ValidConfig()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteConfig(cfg)

	stdout, _, err := executeCommand("get", "server.host", "--config", env.ConfigPath)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := strings.TrimSpace(stdout); got != cfg.Server.Host {
		t.Errorf("get server.host = %q, want %q", got, cfg.Server.Host)
	}
}

func TestShowCommand_PartialFileFilledFromDefaults(t *testing.T) {
	env := testutil.NewTestEnv(t)

	data, err := testutil.LoadFixture("partial_config.toml")
	if err != nil {
		t.Fatal(err)
	}
	env.WriteRaw(string(data))

	partial, err := testutil.PartialConfig()
	if err != nil {
		t.Fatal(err)
	}

	stdout, _, cmdErr := executeCommand("show", "--config", env.ConfigPath)
	if cmdErr != nil {
		t.Fatalf("show failed: %v", cmdErr)
	}
	// Fields the file sets come through, the rest show their defaults.
	if !strings.Contains(stdout, `host = "`+partial.Server.Host+`"`) {
		t.Errorf("show missing host from the file:\n%s", stdout)
	}
	if !strings.Contains(stdout, "port = 5556") {
		t.Errorf("show should fall back to the default port:\n%s", stdout)
	}
	if !strings.Contains(stdout, "max_workers = 16") {
		t.Errorf("show missing max_workers from the file:\n%s", stdout)
	}
}

func TestEditCommand_MissingFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, _, err := executeCommand("edit", "--config", env.ConfigPath)
	if err == nil {
		t.Fatal("edit without a file should fail")
	}
	if errors.GetExitCode(err) != errors.ExitNotFound {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitNotFound)
	}
}

package config

import (
	"flag"
	"os"
	"testing"
)

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *CLIConfig
	}{
		{
			name: "no arguments",
			args: []string{},
			expected: &CLIConfig{
				LogLevel:   "",
				LocalPath:  "",
				RemoteName: "",
				ShowHelp:   false,
			},
		},
		{
			name: "both positional arguments",
			args: []string{"./output/events.jsonl", "events.jsonl"},
			expected: &CLIConfig{
				LogLevel:   "",
				LocalPath:  "./output/events.jsonl",
				RemoteName: "events.jsonl",
				ShowHelp:   false,
			},
		},
		{
			name: "only local path",
			args: []string{"./output/events.jsonl"},
			expected: &CLIConfig{
				LogLevel:   "",
				LocalPath:  "./output/events.jsonl",
				RemoteName: "",
				ShowHelp:   false,
			},
		},
		{
			name: "log level with positionals",
			args: []string{"--log-level", "DEBUG", "./snap.jsonl.gz", "snap.jsonl.gz"},
			expected: &CLIConfig{
				LogLevel:   "DEBUG",
				LocalPath:  "./snap.jsonl.gz",
				RemoteName: "snap.jsonl.gz",
				ShowHelp:   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset command line flags for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			// Backup original os.Args
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			// Set test arguments
			os.Args = append([]string{"test"}, tt.args...)

			// Parse CLI
			result := ParseCLI()

			// Compare results
			if result.LogLevel != tt.expected.LogLevel {
				t.Errorf("LogLevel = %q, want %q", result.LogLevel, tt.expected.LogLevel)
			}
			if result.LocalPath != tt.expected.LocalPath {
				t.Errorf("LocalPath = %q, want %q", result.LocalPath, tt.expected.LocalPath)
			}
			if result.RemoteName != tt.expected.RemoteName {
				t.Errorf("RemoteName = %q, want %q", result.RemoteName, tt.expected.RemoteName)
			}
			if result.ShowHelp != tt.expected.ShowHelp {
				t.Errorf("ShowHelp = %v, want %v", result.ShowHelp, tt.expected.ShowHelp)
			}
		})
	}
}

func TestCLIHasRequiredArgs(t *testing.T) {
	tests := []struct {
		name     string
		cli      CLIConfig
		expected bool
	}{
		{"both present", CLIConfig{LocalPath: "a", RemoteName: "b"}, true},
		{"missing remote name", CLIConfig{LocalPath: "a"}, false},
		{"missing local path", CLIConfig{RemoteName: "b"}, false},
		{"both empty", CLIConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cli.HasRequiredArgs(); got != tt.expected {
				t.Errorf("HasRequiredArgs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIValidate(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		expectError bool
	}{
		{"empty log level", "", false},
		{"valid log level", "DEBUG", false},
		{"valid lowercase log level", "warn", false},
		{"invalid log level", "VERBOSE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &CLIConfig{LogLevel: tt.logLevel}
			err := cli.Validate()
			if (err != nil) != tt.expectError {
				t.Errorf("Validate() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestCLIApplyToCfg(t *testing.T) {
	cli := &CLIConfig{LogLevel: "ERROR"}
	cfg := &EnvConfig{}
	cfg.Log.Level = "INFO"

	cli.ApplyToCfg(cfg)

	if cfg.Log.Level != "ERROR" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "ERROR")
	}

	// Leerer CLI-Wert darf die Konfiguration nicht überschreiben
	empty := &CLIConfig{}
	empty.ApplyToCfg(cfg)
	if cfg.Log.Level != "ERROR" {
		t.Errorf("Log.Level = %q, want %q after empty apply", cfg.Log.Level, "ERROR")
	}
}

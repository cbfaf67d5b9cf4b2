package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// CLIConfig holds command line argument configuration
type CLIConfig struct {
	LogLevel   string
	LocalPath  string
	RemoteName string
	ShowHelp   bool
}

// ParseCLI parses command line arguments and returns a CLIConfig
func ParseCLI() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Set log level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help message")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help message")

	// Custom usage function
	flag.Usage = PrintUsage

	// Check for help flags before parsing
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" {
			cfg.ShowHelp = true
			PrintUsage()
			os.Exit(0)
		}
	}

	// Parse flags
	flag.Parse()

	// Positionale Argumente: <local_path> <remote_name>
	args := flag.Args()
	if len(args) > 0 {
		cfg.LocalPath = args[0]
	}
	if len(args) > 1 {
		cfg.RemoteName = args[1]
	}

	return cfg
}

// HasRequiredArgs reports whether both positional arguments are present and
// non-empty.
func (cli *CLIConfig) HasRequiredArgs() bool {
	return cli.LocalPath != "" && cli.RemoteName != ""
}

// ApplyToCfg applies CLI configuration to EnvConfig
func (cli *CLIConfig) ApplyToCfg(cfg *EnvConfig) {
	// Apply log level
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
}

// PrintUsage prints the usage information
func PrintUsage() {
	_, err := fmt.Fprintf(os.Stderr, `Event Uploader - FTP/FTPS/SFTP-Upload für einzelne Event-Dateien

USAGE:
    %s [OPTIONS] <local_path> <remote_name>

ARGUMENTS:
    local_path           Local file to upload. If the file does not exist the
                         invocation is treated as a deliberate skip (exit 0).
    remote_name          File name to store under the remote base directory.

OPTIONS:
    --log-level LEVEL    Set log level (DEBUG, INFO, WARN, ERROR)
                        Default: INFO

    -h, --help           Show this help message

EXAMPLES:
    # Upload eines Event-Streams
    %s output/events_stream_20260825.jsonl events_stream_20260825.jsonl

    # Snapshot mit Debug-Ausgabe
    %s --log-level DEBUG output/snap.jsonl.gz snap.jsonl.gz

CONFIGURATION PRIORITY:
    1. Command line arguments (highest)
    2. Environment variables
    3. .env file
    4. env.yaml/env.yml file
    5. Default values (lowest)

ENVIRONMENT VARIABLES:
    FTP_SCHEME           Transfer scheme: ftp, ftps or sftp (default: ftp)
    FTP_HOST             Remote host, optionally with :port (required)
    FTP_USER             Auth username (required)
    FTP_PASS             Auth password (required)
    FTP_REMOTE_DIR       Remote base directory, normalized (default: /)
    SLEEP_BETWEEN        Seconds to pause after a successful upload (default: 2)
    LOG_LEVEL            Same as --log-level
    TRANSFER_ATTEMPTS    Total transfer attempts (default: 3)
    TRANSFER_RETRY_DELAY Seconds between attempts (default: 2)
    TRANSFER_TIMEOUT     Dial timeout in seconds (default: 30)

EXIT CODES:
    0   success, or local file missing (deliberate skip)
    1   configuration error (missing credential, unsupported scheme)
    2   usage error (missing positional argument)
    3   transfer failed after all attempts

`, os.Args[0], os.Args[0], os.Args[0])
	if err != nil {
		return
	}
}

// Validate validates CLI configuration
func (cli *CLIConfig) Validate() error {
	// Validate log level if provided
	if cli.LogLevel != "" {
		level := strings.ToUpper(cli.LogLevel)
		if level != "DEBUG" && level != "INFO" && level != "WARN" && level != "ERROR" {
			return fmt.Errorf("invalid log level: %s (allowed: DEBUG, INFO, WARN, ERROR)", cli.LogLevel)
		}
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Unterstützte Übertragungsschemata. Alles andere ist ein Konfigurationsfehler.
const (
	SchemeFTP  = "ftp"
	SchemeFTPS = "ftps"
	SchemeSFTP = "sftp"
)

type EnvConfig struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	FTP struct {
		Scheme    string `yaml:"scheme"`
		Host      string `yaml:"host"`
		User      string `yaml:"user"`
		Pass      string `yaml:"pass"`
		RemoteDir string `yaml:"remote-dir"`
	} `yaml:"ftp"`
	SleepBetween *int `yaml:"sleep-between"` // Pause nach erfolgreichem Upload in Sekunden, 0 deaktiviert
	Transfer     struct {
		Attempts   int `yaml:"attempts"`    // Gesamtzahl der Übertragungsversuche
		RetryDelay int `yaml:"retry-delay"` // Wartezeit zwischen Versuchen in Sekunden
		Timeout    int `yaml:"timeout"`     // Verbindungs-Timeout in Sekunden
	} `yaml:"transfer"`
}

// LoadFromEnvironment loads the configuration from environment variables
func (c *EnvConfig) LoadFromEnvironment() error {
	// Log Level - support different formats
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Log.Level = logLevel
	} else if logLevel := os.Getenv("log.level"); logLevel != "" {
		c.Log.Level = logLevel
	}

	if scheme := os.Getenv("FTP_SCHEME"); scheme != "" {
		c.FTP.Scheme = scheme
	}
	if host := os.Getenv("FTP_HOST"); host != "" {
		c.FTP.Host = host
	}
	if user := os.Getenv("FTP_USER"); user != "" {
		c.FTP.User = user
	}
	if pass := os.Getenv("FTP_PASS"); pass != "" {
		c.FTP.Pass = pass
	}
	if remoteDir := os.Getenv("FTP_REMOTE_DIR"); remoteDir != "" {
		c.FTP.RemoteDir = remoteDir
	}

	// SLEEP_BETWEEN=0 ist gültig und schaltet die Pause ab
	if sleep := os.Getenv("SLEEP_BETWEEN"); sleep != "" {
		if val, err := strconv.Atoi(strings.TrimSpace(sleep)); err == nil && val >= 0 {
			c.SleepBetween = &val
		}
	}

	c.loadTransferFromEnv()

	return nil
}

// loadTransferFromEnv lädt die Übertragungsparameter aus Umgebungsvariablen
func (c *EnvConfig) loadTransferFromEnv() {
	if attempts := os.Getenv("TRANSFER_ATTEMPTS"); attempts != "" {
		if val, err := strconv.Atoi(attempts); err == nil && val > 0 {
			c.Transfer.Attempts = val
		}
	}

	if delay := os.Getenv("TRANSFER_RETRY_DELAY"); delay != "" {
		if val, err := strconv.Atoi(delay); err == nil && val >= 0 {
			c.Transfer.RetryDelay = val
		}
	}

	if timeout := os.Getenv("TRANSFER_TIMEOUT"); timeout != "" {
		if val, err := strconv.Atoi(timeout); err == nil && val > 0 {
			c.Transfer.Timeout = val
		}
	}
}

// SetDefaults setzt Standard-Werte für die Konfiguration
func (c *EnvConfig) SetDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.FTP.Scheme == "" {
		c.FTP.Scheme = SchemeFTP
	}
	if c.FTP.RemoteDir == "" {
		c.FTP.RemoteDir = "/"
	}
	if c.SleepBetween == nil {
		sleep := 2 // 2 Sekunden Drosselung für Aufrufer in Schleifen
		c.SleepBetween = &sleep
	}
	// Transfer Defaults
	if c.Transfer.Attempts == 0 {
		c.Transfer.Attempts = 3 // 3 Versuche
	}
	if c.Transfer.RetryDelay == 0 {
		c.Transfer.RetryDelay = 2 // 2 Sekunden zwischen Versuchen
	}
	if c.Transfer.Timeout == 0 {
		c.Transfer.Timeout = 30 // 30 Sekunden Verbindungs-Timeout
	}
}

// Normalize bereinigt alle Felder: einzeilige Werte werden getrimmt, das
// Remote-Verzeichnis wird in kanonische Form gebracht.
func (c *EnvConfig) Normalize() {
	c.FTP.Scheme = strings.ToLower(cleanLine(c.FTP.Scheme))
	c.FTP.Host = cleanLine(c.FTP.Host)
	c.FTP.User = cleanLine(c.FTP.User)
	c.FTP.Pass = cleanLine(c.FTP.Pass)
	c.FTP.RemoteDir = NormalizeRemoteDir(c.FTP.RemoteDir)
}

// Validate checks the configuration for completeness. Jede fehlende Variable
// wird im Fehler namentlich aufgeführt.
func (c *EnvConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.FTP.Host) == "" {
		missing = append(missing, "FTP_HOST")
	}
	if strings.TrimSpace(c.FTP.User) == "" {
		missing = append(missing, "FTP_USER")
	}
	if strings.TrimSpace(c.FTP.Pass) == "" {
		missing = append(missing, "FTP_PASS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("fehlende Konfiguration: %s", strings.Join(missing, ", "))
	}

	switch c.FTP.Scheme {
	case SchemeFTP, SchemeFTPS, SchemeSFTP:
	default:
		return fmt.Errorf("nicht unterstütztes Schema: %q (erlaubt: ftp, ftps, sftp)", c.FTP.Scheme)
	}

	return nil
}

// SleepDuration returns the configured pacing delay.
func (c *EnvConfig) SleepDuration() time.Duration {
	if c.SleepBetween == nil {
		return 0
	}
	return time.Duration(*c.SleepBetween) * time.Second
}

// GetLogLevel returns the configured log level.
func (c *EnvConfig) GetLogLevel() string {
	level := strings.ToUpper(c.Log.Level)
	switch level {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return level
	default:
		return "INFO"
	}
}

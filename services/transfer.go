package services

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"event-uploader/config"
)

// Options steuert das Verhalten einer Übertragung.
type Options struct {
	CreateMissingDirs bool // fehlende Remote-Verzeichnisse anlegen (FTP/FTPS)
	NoCwd             bool // Dateien über den vollen Pfad ansprechen statt per CWD zu wechseln (FTP/FTPS)

	Attempts   int           // Gesamtzahl der Versuche inklusive des ersten
	RetryDelay time.Duration // feste Wartezeit zwischen den Versuchen
	Timeout    time.Duration // Verbindungs-Timeout
}

// DefaultOptions liefert die Standard-Optionen für ein Schema. Die beiden
// FTP-Familien bekommen Verzeichnis-Autoanlage und Voll-Pfad-Adressierung,
// SFTP keine schema-spezifischen Extras.
func DefaultOptions(scheme string) Options {
	opts := Options{
		Attempts:   3,
		RetryDelay: 2 * time.Second,
		Timeout:    30 * time.Second,
	}
	switch scheme {
	case config.SchemeFTP, config.SchemeFTPS:
		opts.CreateMissingDirs = true
		opts.NoCwd = true
	}
	return opts
}

// Transferer überträgt genau eine lokale Datei an eine Ziel-URL.
type Transferer interface {
	Transfer(localPath, destURL string, opts Options) error
}

// NewTransferer baut den passenden Transferer für ein Schema.
func NewTransferer(scheme, username, password string) (Transferer, error) {
	switch scheme {
	case config.SchemeFTP:
		return &FTPTransferer{Username: username, Password: password}, nil
	case config.SchemeFTPS:
		return &FTPTransferer{Username: username, Password: password, UseTLS: true}, nil
	case config.SchemeSFTP:
		return &SFTPTransferer{Username: username, Password: password}, nil
	default:
		return nil, fmt.Errorf("nicht unterstütztes Schema: %q", scheme)
	}
}

// TransferWithRetry führt die Übertragung bis zu opts.Attempts mal aus und
// wartet zwischen den Versuchen opts.RetryDelay.
func TransferWithRetry(t Transferer, localPath, destURL string, opts Options) error {
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			slog.Warn("Übertragung fehlgeschlagen - neuer Versuch",
				"versuch", attempt,
				"von", attempts,
				"fehler", lastErr)
			time.Sleep(opts.RetryDelay)
		}

		if err := t.Transfer(localPath, destURL, opts); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("übertragung nach %d Versuchen fehlgeschlagen: %w", attempts, lastErr)
}

// parseDestination zerlegt eine Ziel-URL in Host (mit Port) und Remote-Pfad.
// Der Remote-Pfad ist relativ, wie vom jeweiligen Server-Login-Verzeichnis
// aus gesehen.
func parseDestination(destURL, defaultPort string) (host, remotePath string, err error) {
	u, err := url.Parse(destURL)
	if err != nil {
		return "", "", fmt.Errorf("ungültige Ziel-URL: %w", err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("ungültige Ziel-URL: kein Host in %q", destURL)
	}

	host = u.Host
	remotePath = strings.TrimPrefix(u.Path, "/")

	// Standard-Port setzen falls nicht angegeben
	if !strings.Contains(host, ":") {
		host += ":" + defaultPort
	}

	return host, remotePath, nil
}

package services

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"event-uploader/config"
)

// Result klassifiziert den Ausgang eines Upload-Aufrufs.
type Result int

const (
	ResultUploaded Result = iota
	ResultSkipped
	ResultFailed
)

// Uploader überträgt genau eine lokale Datei an das konfigurierte Ziel.
type Uploader struct {
	Config     *config.EnvConfig
	Transferer Transferer
	Options    Options

	sleep func(time.Duration)
}

// NewUploader baut den Uploader aus der validierten Konfiguration.
func NewUploader(cfg *config.EnvConfig) (*Uploader, error) {
	transferer, err := NewTransferer(cfg.FTP.Scheme, cfg.FTP.User, cfg.FTP.Pass)
	if err != nil {
		return nil, err
	}

	opts := DefaultOptions(cfg.FTP.Scheme)
	if cfg.Transfer.Attempts > 0 {
		opts.Attempts = cfg.Transfer.Attempts
	}
	if cfg.Transfer.RetryDelay >= 0 {
		opts.RetryDelay = time.Duration(cfg.Transfer.RetryDelay) * time.Second
	}
	if cfg.Transfer.Timeout > 0 {
		opts.Timeout = time.Duration(cfg.Transfer.Timeout) * time.Second
	}

	return &Uploader{
		Config:     cfg,
		Transferer: transferer,
		Options:    opts,
		sleep:      time.Sleep,
	}, nil
}

// fileChecksum berechnet die SHA256-Prüfsumme einer Datei
func fileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("fehler beim Öffnen der Datei für Prüfsumme: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("fehler beim Berechnen der Prüfsumme: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// Upload prüft die Quelldatei, überträgt sie mit Wiederholungen und wartet
// danach die konfigurierte Drosselungspause. Eine fehlende Quelldatei ist
// kein Fehler, sondern ein bewusstes "nichts zu tun".
func (u *Uploader) Upload(localPath, remoteName string) (Result, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Lokale Datei nicht vorhanden - Upload übersprungen", "datei", localPath)
			return ResultSkipped, nil
		}
		return ResultFailed, fmt.Errorf("fehler beim Prüfen der Quelldatei: %w", err)
	}
	if !info.Mode().IsRegular() {
		slog.Info("Pfad ist keine reguläre Datei - Upload übersprungen", "datei", localPath)
		return ResultSkipped, nil
	}

	// Prüfsumme direkt nach dem Finden der Datei berechnen
	if checksum, err := fileChecksum(localPath); err != nil {
		slog.Warn("Prüfsumme konnte nicht berechnet werden", "datei", localPath, "fehler", err)
	} else {
		slog.Debug("Prüfsumme berechnet", "datei", localPath, "sha256", checksum)
	}

	destURL := u.Config.TargetURL(remoteName)
	slog.Info("Starte Upload", "quelle", localPath, "ziel", destURL, "groesse", info.Size())

	if err := TransferWithRetry(u.Transferer, localPath, destURL, u.Options); err != nil {
		return ResultFailed, err
	}

	slog.Info("Upload abgeschlossen", "quelle", localPath, "ziel", destURL)

	// Drosselung für Aufrufer, die den Uploader in einer Schleife starten.
	// Nur nach Erfolg, damit Fehler und Skips sofort zurückkehren.
	if delay := u.Config.SleepDuration(); delay > 0 {
		slog.Debug("Warte vor Rückkehr", "dauer", delay)
		u.sleep(delay)
	}

	return ResultUploaded, nil
}

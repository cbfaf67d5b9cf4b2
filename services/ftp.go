package services

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path"
	"strings"

	"github.com/jlaffaye/ftp"
)

// FTPTransferer lädt Dateien per FTP oder FTPS (explizites TLS) hoch.
type FTPTransferer struct {
	Username string
	Password string
	UseTLS   bool
}

func (t *FTPTransferer) Transfer(localPath, destURL string, opts Options) error {
	host, remotePath, err := parseDestination(destURL, "21")
	if err != nil {
		return err
	}

	// Verbindung aufbauen und anmelden
	client, err := t.dial(host, opts)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Login(t.Username, t.Password); err != nil {
		return fmt.Errorf("FTP-Anmeldung fehlgeschlagen: %w", err)
	}

	// Remote-Verzeichnisse anlegen (falls gewünscht)
	if opts.CreateMissingDirs {
		t.makeRemoteDirs(client, path.Dir(remotePath))
	}

	// Quelldatei öffnen
	srcFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("fehler beim Öffnen der Quelldatei: %w", err)
	}
	defer srcFile.Close()

	// Datei übertragen
	if opts.NoCwd {
		// STOR mit vollem Pfad, erspart die CWD-Kommandos
		err = client.Stor(remotePath, srcFile)
	} else {
		if dir := path.Dir(remotePath); dir != "." {
			if cdErr := client.ChangeDir(dir); cdErr != nil {
				return fmt.Errorf("fehler beim Wechsel ins Remote-Verzeichnis: %w", cdErr)
			}
		}
		err = client.Stor(path.Base(remotePath), srcFile)
	}
	if err != nil {
		return fmt.Errorf("fehler beim FTP-Upload: %w", err)
	}

	slog.Debug("Datei erfolgreich über FTP hochgeladen", "quelle", localPath, "ziel", remotePath, "host", host)
	return nil
}

// dial stellt die Verbindung her, bei FTPS mit explizitem TLS (AUTH TLS).
func (t *FTPTransferer) dial(host string, opts Options) (*ftp.ServerConn, error) {
	dialOpts := []ftp.DialOption{ftp.DialWithTimeout(opts.Timeout)}

	if t.UseTLS {
		hostname, _, err := net.SplitHostPort(host)
		if err != nil {
			hostname = host
		}
		tlsConfig := &tls.Config{
			ServerName: hostname,
			MinVersion: tls.VersionTLS12,
		}
		dialOpts = append(dialOpts, ftp.DialWithExplicitTLS(tlsConfig))
	}

	client, err := ftp.Dial(host, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("FTP-Verbindung fehlgeschlagen: %w", err)
	}
	return client, nil
}

// makeRemoteDirs legt das Remote-Verzeichnis schrittweise an. Fehler werden
// ignoriert, da die Verzeichnisse meist schon existieren.
func (t *FTPTransferer) makeRemoteDirs(client *ftp.ServerConn, remoteDir string) {
	if remoteDir == "" || remoteDir == "." || remoteDir == "/" {
		return
	}

	currentPath := ""
	for _, dir := range strings.Split(remoteDir, "/") {
		if dir == "" {
			continue
		}
		currentPath = path.Join(currentPath, dir)
		if err := client.MakeDir(currentPath); err != nil {
			slog.Debug("Verzeichnis existiert möglicherweise bereits", "verzeichnis", currentPath)
		}
	}
}

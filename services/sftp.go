package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPTransferer lädt Dateien über eine SSH-Verbindung hoch.
type SFTPTransferer struct {
	Username string
	Password string
}

// createSSHConfig erstellt eine SSH-Konfiguration für SFTP
func createSSHConfig(username, password string, timeout time.Duration) *ssh.ClientConfig {
	return &ssh.ClientConfig{
		User: username,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}
}

func (t *SFTPTransferer) Transfer(localPath, destURL string, opts Options) error {
	host, remotePath, err := parseDestination(destURL, "22")
	if err != nil {
		return err
	}

	// SSH-Verbindung aufbauen
	sshConfig := createSSHConfig(t.Username, t.Password, opts.Timeout)
	conn, err := ssh.Dial("tcp", host, sshConfig)
	if err != nil {
		return fmt.Errorf("SSH-Verbindung fehlgeschlagen: %w", err)
	}
	defer conn.Close()

	// SFTP-Client erstellen
	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("SFTP-Client-Erstellung fehlgeschlagen: %w", err)
	}
	defer client.Close()

	// Remote-Verzeichnis nur anlegen, wenn die Option gesetzt ist
	if opts.CreateMissingDirs {
		if remoteDir := path.Dir(remotePath); remoteDir != "." {
			if err := client.MkdirAll(remoteDir); err != nil {
				slog.Warn("Konnte Remote-Verzeichnis nicht erstellen", "verzeichnis", remoteDir, "fehler", err)
			}
		}
	}

	// Quelldatei öffnen
	srcFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("fehler beim Öffnen der Quelldatei: %w", err)
	}
	defer srcFile.Close()

	// Remote-Datei erstellen
	dstFile, err := client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("fehler beim Erstellen der Remote-Datei: %w", err)
	}
	defer dstFile.Close()

	// Datei übertragen
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("fehler beim SFTP-Upload: %w", err)
	}

	slog.Debug("Datei erfolgreich über SFTP hochgeladen", "quelle", localPath, "ziel", remotePath, "host", host)
	return nil
}

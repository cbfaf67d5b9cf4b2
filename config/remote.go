package config

import "strings"

// cleanLine trimmt Whitespace und Carriage Returns von einzeiligen Werten.
// Werte aus .env-Dateien tragen unter Windows gerne ein \r am Ende.
func cleanLine(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// flattenValue entfernt eingebettete Zeilenumbrüche aus mehrzeiligen
// Umgebungswerten und trimmt das Ergebnis.
func flattenValue(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.Trim(s, " \t")
}

// NormalizeRemoteDir bringt das Remote-Verzeichnis in kanonische Form:
// führender Slash, keine doppelten Slashes, kein Slash am Ende. Genau "/"
// wird zur leeren Zeichenkette, damit die URL-Konkatenation keinen doppelten
// Slash erzeugt. Die Funktion ist idempotent.
func NormalizeRemoteDir(dir string) string {
	dir = flattenValue(dir)
	if !strings.HasPrefix(dir, "/") {
		dir = "/" + dir
	}
	for strings.Contains(dir, "//") {
		dir = strings.ReplaceAll(dir, "//", "/")
	}
	return strings.TrimSuffix(dir, "/")
}

// BaseURL liefert scheme://host plus normalisiertes Remote-Verzeichnis.
// Setzt voraus, dass Normalize bereits gelaufen ist.
func (c *EnvConfig) BaseURL() string {
	return c.FTP.Scheme + "://" + c.FTP.Host + c.FTP.RemoteDir
}

// TargetURL liefert die vollständige Ziel-URL für einen Remote-Dateinamen.
func (c *EnvConfig) TargetURL(remoteName string) string {
	return c.BaseURL() + "/" + remoteName
}

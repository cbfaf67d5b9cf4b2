package main

import (
	"fmt"
	"log/slog"
	"os"

	"event-uploader/config"
	"event-uploader/services"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Exit-Codes für den aufrufenden Prozess (z.B. die Scraper-Schleife).
const (
	exitOK            = 0
	exitConfigError   = 1
	exitUsageError    = 2
	exitTransferError = 3
)

func loadEnvYaml() (*config.EnvConfig, error) {
	// Prüfe welche Dateien vorhanden sind
	yamlExists := fileExists("env.yaml")
	ymlExists := fileExists("env.yml")

	// Fehler wenn beide Dateien vorhanden sind
	if yamlExists && ymlExists {
		return nil, fmt.Errorf("konflikt: sowohl env.yaml als auch env.yml sind vorhanden, bitte verwende nur eine der beiden Dateien")
	}

	// Keine Konfigurationsdatei ist in Ordnung - alles kann über
	// Umgebungsvariablen kommen
	var configFile string
	if yamlExists {
		configFile = "env.yaml"
	} else if ymlExists {
		configFile = "env.yml"
	} else {
		return nil, nil
	}

	// Lade die Datei
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("fehler beim Lesen von %s: %w", configFile, err)
	}

	var cfg config.EnvConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fehler beim Parsen von %s: %w", configFile, err)
	}

	return &cfg, nil
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func setupLogger(cfg *config.EnvConfig) {
	levelStr := cfg.GetLogLevel()
	var lvl slog.Level
	switch levelStr {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "INFO":
		lvl = slog.LevelInfo
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Command Line Arguments parsen
	cliCfg := config.ParseCLI()

	// Validiere CLI-Konfiguration
	if err := cliCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler in Kommandozeilen-Argumenten: %v\n", err)
		return exitConfigError
	}

	// Beide positionalen Argumente sind Pflicht
	if !cliCfg.HasRequiredArgs() {
		fmt.Fprintln(os.Stderr, "Fehlende Argumente: <local_path> <remote_name>")
		config.PrintUsage()
		return exitUsageError
	}

	// 2. Reihenfolge der Konfiguration:
	// - env.yaml oder env.yml laden (falls vorhanden)
	// - .env laden (falls vorhanden)
	// - Umgebungsvariablen laden
	// - CLI-Parameter anwenden (überschreibt alles andere)

	cfg, err := loadEnvYaml()
	if err != nil {
		fmt.Println("Konfigurationsdatei konnte nicht geladen werden:", err)
		cfg = &config.EnvConfig{} // leere Konfiguration
	}
	if cfg == nil {
		cfg = &config.EnvConfig{}
	}

	// .env laden (optional)
	_ = godotenv.Load()

	// Defaults setzen
	cfg.SetDefaults()

	// Umgebungsvariablen laden (überschreibt YAML und .env)
	err = cfg.LoadFromEnvironment()
	if err != nil {
		fmt.Println("Fehler beim Laden der Umgebungsvariablen:", err)
	}

	// CLI-Parameter anwenden (höchste Priorität)
	cliCfg.ApplyToCfg(cfg)

	// Logger-Konfiguration
	setupLogger(cfg)

	// Felder bereinigen und Konfiguration validieren - vor jedem Netzwerkzugriff
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		slog.Error("Ungültige Konfiguration", "fehler", err)
		return exitConfigError
	}

	// Uploader initialisieren
	uploader, err := services.NewUploader(cfg)
	if err != nil {
		slog.Error("Uploader konnte nicht initialisiert werden", "fehler", err)
		return exitConfigError
	}

	// Upload durchführen - ein Skip (fehlende Datei) ist kein Fehler
	if _, err := uploader.Upload(cliCfg.LocalPath, cliCfg.RemoteName); err != nil {
		slog.Error("Upload fehlgeschlagen", "datei", cliCfg.LocalPath, "fehler", err)
		return exitTransferError
	}

	return exitOK
}

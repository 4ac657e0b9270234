package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Names         NamesConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// NamesConfig controls display-name anonymization. KeepList holds name
// fragments that are never anonymized.
type NamesConfig struct {
	Anonymize bool
	KeepList  []string
}

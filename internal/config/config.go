package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	TemplatesPath  string
	StateKey       string
	BackupDir      string
	BackupSchedule string
	WriteRateLimit int
	WriteWindow    time.Duration
}

var defaults = map[string]interface{}{
	"PORT":             "8080",
	"DATABASE_TYPE":    "sqlite",
	"DB_PATH":          "./phaseplan.db",
	"DATABASE_URL":     "",
	"MIGRATIONS_PATH":  "./migrations",
	"TEMPLATES_PATH":   "./internal/templates",
	"STATE_KEY":        "phaseplan.state.v1",
	"BACKUP_DIR":       "./backups",
	"BACKUP_SCHEDULE":  "",
	"WRITE_RATE_LIMIT": 600,
}

// Load reads configuration from .env, an optional YAML file named by
// PHASEPLAN_CONFIG, and environment variables, in increasing priority
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}
	return fromViper(newViper(os.Getenv("PHASEPLAN_CONFIG")))
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Warning: could not read config file %s: %v", configFile, err)
		}
	}
	return v
}

func fromViper(v *viper.Viper) *Config {
	rate := v.GetInt("WRITE_RATE_LIMIT")
	if rate <= 0 {
		rate = defaults["WRITE_RATE_LIMIT"].(int)
	}
	return &Config{
		ServerPort:     v.GetString("PORT"),
		DatabaseType:   v.GetString("DATABASE_TYPE"),
		DatabasePath:   v.GetString("DB_PATH"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		TemplatesPath:  v.GetString("TEMPLATES_PATH"),
		StateKey:       v.GetString("STATE_KEY"),
		BackupDir:      v.GetString("BACKUP_DIR"),
		BackupSchedule: v.GetString("BACKUP_SCHEDULE"),
		WriteRateLimit: rate,
		WriteWindow:    time.Minute,
	}
}

package shared

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver"` // "sqlite" (default)
		DSN    string `yaml:"dsn"`    // "./namecheck.db"
	} `yaml:"database"`

	Check struct {
		Sources []string `yaml:"sources"` // ["./dumps"]
	} `yaml:"check"`

	Reporting struct {
		OutDir string `yaml:"out_dir"` // "./reports"
	} `yaml:"reporting"`

	Server struct {
		Addr           string   `yaml:"addr"`          // ":8080"
		SessionHours   int      `yaml:"session_hours"` // 12
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.Driver = "sqlite"
	c.Database.DSN = "./namecheck.db"
	c.Reporting.OutDir = "./reports"
	c.Server.Addr = ":8080"
	c.Server.SessionHours = 12
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("NAMECHECK_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("NAMECHECK_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("NAMECHECK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NAMECHECK_SESSION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Server.SessionHours = n
		}
	}
	if v := os.Getenv("NAMECHECK_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("NAMECHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}

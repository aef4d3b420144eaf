package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAdminPassword is the fallback admin secret. Serve logs a warning when
// it is in effect; override it with PORTFOLIO_ADMIN_PASSWORD.
const DefaultAdminPassword = "admin123"

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Admin struct {
		Password      string
		AllowedEmails []string
	}
	Google struct {
		ClientID string
	}
	Session struct {
		Secret   string
		Lifetime time.Duration
	}
	Auth struct {
		// InsecureDevFallback enables decoding Google ID tokens without
		// signature verification when online verification fails. Never
		// enable outside local development.
		InsecureDevFallback bool
	}
	SMTP struct {
		Host     string
		Port     string
		User     string
		Password string
		To       []string
	}
	Upload struct {
		Dir string
	}
	Stats struct {
		CGPAFallback string
	}
	SeedOnStart bool
}

// Load reads config from environment (PORTFOLIO_ prefix) and optional portfolio-api.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("portfolio-api")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "portfolio.db")
	v.SetDefault("admin.password", DefaultAdminPassword)
	v.SetDefault("session.lifetime", "12h")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("stats.cgpa_fallback", "7.5")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Admin.Password = v.GetString("admin.password")
	cfg.Admin.AllowedEmails = splitList(v.GetString("admin.allowed_emails"))
	cfg.Google.ClientID = v.GetString("google.client_id")
	cfg.Session.Secret = v.GetString("session.secret")
	cfg.Auth.InsecureDevFallback = v.GetBool("auth.insecure_dev_fallback")
	cfg.SMTP.Host = v.GetString("smtp.host")
	cfg.SMTP.Port = v.GetString("smtp.port")
	cfg.SMTP.User = v.GetString("smtp.user")
	cfg.SMTP.Password = v.GetString("smtp.password")
	cfg.SMTP.To = splitList(v.GetString("smtp.to"))
	cfg.Upload.Dir = v.GetString("upload.dir")
	cfg.Stats.CGPAFallback = v.GetString("stats.cgpa_fallback")
	cfg.SeedOnStart = v.GetBool("seed_on_start")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTFOLIO_SESSION_LIFETIME: %w", err)
	}
	cfg.Session.Lifetime = lifetime

	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("PORTFOLIO_DB_DSN is required")
	}
	if cfg.Admin.Password == DefaultAdminPassword {
		log.Printf("warning: PORTFOLIO_ADMIN_PASSWORD is not set, using the default password")
	}
	if cfg.Auth.InsecureDevFallback {
		log.Printf("warning: PORTFOLIO_AUTH_INSECURE_DEV_FALLBACK is enabled; Google tokens may be accepted without signature verification")
	}

	return cfg, nil
}

// splitList parses a comma-separated env value into trimmed, non-empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

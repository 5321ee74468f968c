package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPAddr string
	Env      string // "development" | "production"
	LogLevel string
	DBPath   string

	// Session tokens
	JWTSecret string
	JWTIssuer string

	// OpenID Connect staff sign-in, enabled when OIDCIssuerURL is set
	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string

	// Optional first super admin, created at startup when no member holds the EPF number
	BootstrapAdminEPF      string
	BootstrapAdminPassword string

	AuditWriteTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

// FromEnv reads the configuration from the process environment.
// A missing JWT_SECRET is a ConfigurationError; everything else has a default.
func FromEnv() (Config, error) {
	env := strings.ToLower(getenvDefault("WELFARE_ENV", EnvDevelopment))
	if env != EnvDevelopment && env != EnvProduction {
		// fail-soft: treat unknown as production so cookies stay secure
		env = EnvProduction
	}

	cfg := Config{
		HTTPAddr: getenvDefault("WELFARE_HTTP_ADDR", ":"+getenvDefault("PORT", "8080")),
		Env:      env,
		LogLevel: getenvDefault("WELFARE_LOG_LEVEL", "info"),
		DBPath:   getenvDefault("WELFARE_DB_PATH", "welfare.db"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: getenvDefault("WELFARE_JWT_ISSUER", "welfare-admin"),

		OIDCIssuerURL:    strings.TrimSpace(os.Getenv("WELFARE_OIDC_ISSUER_URL")),
		OIDCClientID:     os.Getenv("WELFARE_OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("WELFARE_OIDC_CLIENT_SECRET"),
		OIDCCallbackURL:  os.Getenv("WELFARE_OIDC_CALLBACK_URL"),

		BootstrapAdminEPF:      strings.TrimSpace(os.Getenv("WELFARE_BOOTSTRAP_ADMIN_EPF")),
		BootstrapAdminPassword: os.Getenv("WELFARE_BOOTSTRAP_ADMIN_PASSWORD"),

		AuditWriteTimeout: time.Duration(getenvInt("WELFARE_AUDIT_TIMEOUT_MS", 2000)) * time.Millisecond,
		RequestTimeout:    time.Duration(getenvInt("WELFARE_REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		ShutdownTimeout:   time.Duration(getenvInt("WELFARE_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return cfg, apperrors.NewConfiguration("JWT_SECRET is not set")
	}
	if cfg.BootstrapAdminEPF != "" && len(cfg.BootstrapAdminPassword) < 8 {
		return cfg, apperrors.NewConfiguration("WELFARE_BOOTSTRAP_ADMIN_PASSWORD must be at least 8 characters")
	}

	return cfg, nil
}

// Development reports whether the service runs in development mode.
func (c Config) Development() bool {
	return c.Env == EnvDevelopment
}

// OIDCEnabled reports whether external staff sign-in is configured.
func (c Config) OIDCEnabled() bool {
	return c.OIDCIssuerURL != ""
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

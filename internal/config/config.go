package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minJWTSecretLen = 32

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	AutoMigrate bool
	Seed        bool

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret         string
	JWTIssuer         string
	JWTAudience       string
	JWTExpirationMins int

	CORSAllowOrigins []string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment are never overridden.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "fundo"),
		MySQLUser: getenv("MYSQL_USER", "fundo"),
		MySQLPass: getenv("MYSQL_PASS", "fundo"),

		AutoMigrate: getenvBool("DB_AUTO_MIGRATE", true),
		Seed:        getenvBool("DB_SEED", true),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getenv("JWT_ISSUER", "fundo-api"),
		JWTAudience:       getenv("JWT_AUDIENCE", "fundo-client"),
		JWTExpirationMins: getenvInt("JWT_EXPIRATION_MINUTES", 60),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "http://localhost:4200")),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	if c.JWTExpirationMins <= 0 {
		return fmt.Errorf("invalid JWT_EXPIRATION_MINUTES %d", c.JWTExpirationMins)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

func (c *Config) JWTTTL() time.Duration { return time.Duration(c.JWTExpirationMins) * time.Minute }

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

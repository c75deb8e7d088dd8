// internal/config/config.go
package config

import "os"

type Config struct {
    ServerAddr    string
    AllowedOrigin string
    JWTSecret     string
    RedisAddr     string
    Database      DatabaseConfig
}

type DatabaseConfig struct {
    Host     string
    Port     string
    User     string
    Password string
    DBName   string
}

// Load reads configuration from the environment. Callers are expected to have
// run godotenv.Load first.
func Load() *Config {
    return &Config{
        ServerAddr:    getenv("SERVER_ADDR", ":8080"),
        AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:3000"),
        JWTSecret:     os.Getenv("JWT_SECRET"),
        RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
        Database: DatabaseConfig{
            Host:     os.Getenv("DB_HOST"),
            Port:     getenv("DB_PORT", "5432"),
            User:     os.Getenv("DB_USER"),
            Password: os.Getenv("DB_PASSWORD"),
            DBName:   os.Getenv("DB_NAME"),
        },
    }
}

// Ready reports whether the connection info needed for data operations is
// present. When it is not, the server still starts but every data route
// answers 503 instead of crashing.
func (c *Config) Ready() bool {
    return c.Database.Host != "" && c.Database.DBName != "" && c.JWTSecret != ""
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}

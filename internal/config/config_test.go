package config

import "testing"

func TestLoadDefaults(t *testing.T) {
    t.Setenv("DB_HOST", "")
    t.Setenv("DB_PORT", "")
    t.Setenv("SERVER_ADDR", "")
    t.Setenv("REDIS_ADDR", "")

    cfg := Load()
    if cfg.ServerAddr != ":8080" {
        t.Errorf("ServerAddr = %q", cfg.ServerAddr)
    }
    if cfg.Database.Port != "5432" {
        t.Errorf("DB port default = %q", cfg.Database.Port)
    }
}

// Missing backend connection info must read as "not ready", which the server
// turns into a degraded mode rather than a crash.
func TestReady(t *testing.T) {
    cfg := &Config{}
    if cfg.Ready() {
        t.Error("Empty config reported ready")
    }

    cfg.Database.Host = "localhost"
    cfg.Database.DBName = "trainer"
    if cfg.Ready() {
        t.Error("Config without a JWT secret reported ready")
    }

    cfg.JWTSecret = "secret"
    if !cfg.Ready() {
        t.Error("Complete config reported not ready")
    }
}

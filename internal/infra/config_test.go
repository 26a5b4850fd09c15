package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DIR", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageDir != "./data" {
		t.Fatalf("StorageDir = %q, want ./data", cfg.StorageDir)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("DatabaseURL should default empty, got %q", cfg.DatabaseURL)
	}
	if cfg.GenerateDelayMin != time.Second || cfg.GenerateDelayMax != 3*time.Second {
		t.Fatalf("delay defaults = %v/%v", cfg.GenerateDelayMin, cfg.GenerateDelayMax)
	}
	if cfg.DBMaxConns != 10 || cfg.DBMinConns != 1 {
		t.Fatalf("pool defaults = %d/%d, want 10/1", cfg.DBMaxConns, cfg.DBMinConns)
	}
}

func TestLoadConfigRejectsInvertedPoolBounds(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "5")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("min conns above max should be rejected")
	}
}

func TestLoadConfigDelayOverride(t *testing.T) {
	t.Setenv("GENERATE_DELAY_MIN_MS", "0")
	t.Setenv("GENERATE_DELAY_MAX_MS", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GenerateDelayMin != 0 || cfg.GenerateDelayMax != 0 {
		t.Fatalf("delay override = %v/%v, want 0/0", cfg.GenerateDelayMin, cfg.GenerateDelayMax)
	}
}

func TestLoadConfigRejectsInvertedDelayBounds(t *testing.T) {
	t.Setenv("GENERATE_DELAY_MIN_MS", "5000")
	t.Setenv("GENERATE_DELAY_MAX_MS", "1000")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("inverted delay bounds should be rejected")
	}
}

package common_test

import (
	"testing"
	"time"

	"tripdeck/internal/common"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := common.LoadConfig()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "tripdeck.db" {
		t.Fatalf("dsn: %q", cfg.Database.DSN)
	}
	if cfg.Mistral.Model != "open-mistral-7b" {
		t.Fatalf("model: %q", cfg.Mistral.Model)
	}
	if cfg.Upload.MaxBytes != 5<<20 {
		t.Fatalf("upload max: %d", cfg.Upload.MaxBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DB_DSN", "postgres://localhost/tripdeck")
	t.Setenv("MISTRAL_TIMEOUT", "5s")
	t.Setenv("MISTRAL_TEMPERATURE", "0.2")
	t.Setenv("DB_MAX_CONNS", "3")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")

	cfg := common.LoadConfig()
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "postgres://localhost/tripdeck" {
		t.Fatalf("dsn: %q", cfg.Database.DSN)
	}
	if cfg.Mistral.Timeout != 5*time.Second {
		t.Fatalf("timeout: %v", cfg.Mistral.Timeout)
	}
	if cfg.Mistral.Temperature != 0.2 {
		t.Fatalf("temperature: %v", cfg.Mistral.Temperature)
	}
	if cfg.Database.MaxConns != 3 {
		t.Fatalf("max conns: %d", cfg.Database.MaxConns)
	}
	if cfg.Upload.MaxBytes != 1<<20 {
		t.Fatalf("upload max: %d", cfg.Upload.MaxBytes)
	}
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("MISTRAL_TIMEOUT", "soon")
	t.Setenv("DB_MAX_CONNS", "many")

	cfg := common.LoadConfig()
	if cfg.Mistral.Timeout != 45*time.Second {
		t.Fatalf("timeout: %v", cfg.Mistral.Timeout)
	}
	if cfg.Database.MaxConns != 10 {
		t.Fatalf("max conns: %d", cfg.Database.MaxConns)
	}
}

func TestValidate(t *testing.T) {
	cfg := common.LoadConfig()
	cfg.Upload.MaxBytes = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero upload bound accepted")
	}
}

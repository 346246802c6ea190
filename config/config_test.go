package config

import "testing"

func TestLoadImportConfig_Defaults(t *testing.T) {
	t.Setenv("DATASET_API_URL", "")
	t.Setenv("IMPORT_SEED_MODE", "")
	t.Setenv("IMPORT_SEED_MAX_UP", "")
	t.Setenv("IMPORT_SEED_MAX_DOWN", "-3")

	cfg := LoadImportConfig()

	if cfg.DatasetURL != "" || cfg.SeedMode != "" {
		t.Fatalf("expected empty dataset settings, got %+v", cfg)
	}
	if cfg.SeedMaxUp != 5 || cfg.SeedMaxDown != 5 {
		t.Fatalf("expected fallback seed bounds, got %+v", cfg)
	}
}

func TestLoadImportConfig_FromEnv(t *testing.T) {
	t.Setenv("DATASET_API_URL", "http://dataset.example/api")
	t.Setenv("IMPORT_SEED_MODE", "random")
	t.Setenv("IMPORT_SEED_MAX_UP", "7")
	t.Setenv("IMPORT_SEED_MAX_DOWN", "2")

	cfg := LoadImportConfig()

	if cfg.DatasetURL != "http://dataset.example/api" || cfg.SeedMode != "random" {
		t.Fatalf("unexpected dataset settings: %+v", cfg)
	}
	if cfg.SeedMaxUp != 7 || cfg.SeedMaxDown != 2 {
		t.Fatalf("unexpected seed bounds: %+v", cfg)
	}
}

func TestBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "")
	if got := BaseURL(); got != "http://localhost" {
		t.Fatalf("expected localhost default, got %q", got)
	}

	t.Setenv("BASE_URL", "https://food.example")
	if got := BaseURL(); got != "https://food.example" {
		t.Fatalf("expected configured base url, got %q", got)
	}
}

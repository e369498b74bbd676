package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.DataPath != "data.yaml" {
		t.Errorf("Expected default data path, got %s", cfg.DataPath)
	}
	if cfg.OutPath != "weightlog.xlsx" {
		t.Errorf("Expected default out path, got %s", cfg.OutPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WEIGHTLOG_DATA", "/tmp/measurements.yaml")
	t.Setenv("WEIGHTLOG_OUT", "/tmp/out.xlsx")

	cfg := Load()
	if cfg.DataPath != "/tmp/measurements.yaml" {
		t.Errorf("Expected env override, got %s", cfg.DataPath)
	}
	if cfg.OutPath != "/tmp/out.xlsx" {
		t.Errorf("Expected env override, got %s", cfg.OutPath)
	}
}

func TestValidate_EmptyPath(t *testing.T) {
	cfg := Config{DataPath: "", OutPath: "x.xlsx"}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for empty data path")
	}
}

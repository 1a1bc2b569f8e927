package unit

import (
	"os"
	"path/filepath"
	"testing"

	subwayplanner "github.com/theoremus-urban-solutions/subway-planner"
)

func TestConfig_DefaultsWithoutFile(t *testing.T) {
	origConfig := subwayplanner.Config
	origDir, _ := os.Getwd()
	defer func() {
		subwayplanner.Config = origConfig
		_ = os.Chdir(origDir)
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	if err := subwayplanner.LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig without config.yml should succeed, got %v", err)
	}

	cfg := subwayplanner.Config
	if cfg.MBTA.BaseURL != "https://api-v3.mbta.com" {
		t.Errorf("default BaseURL = %q", cfg.MBTA.BaseURL)
	}
	if cfg.MBTA.TimeoutMS != 10000 || cfg.MBTA.MaxRetries != 3 || cfg.MBTA.BackoffMS != 300 {
		t.Errorf("default MBTA settings = %+v", cfg.MBTA)
	}
	if cfg.Cache.Path == "" || cfg.Cache.MaxAgeMinutes != 24*60 {
		t.Errorf("default cache settings = %+v", cfg.Cache)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	origConfig := subwayplanner.Config
	origDir, _ := os.Getwd()
	defer func() {
		subwayplanner.Config = origConfig
		_ = os.Chdir(origDir)
	}()

	dir := t.TempDir()
	yml := `mbta:
  baseURL: "https://example.test"
  timeoutMS: 2500
  maxRetries: 5
cache:
  path: "/tmp/planner.db"
  maxAgeMinutes: 90
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	if err := subwayplanner.LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	cfg := subwayplanner.Config
	if cfg.MBTA.BaseURL != "https://example.test" {
		t.Errorf("BaseURL = %q", cfg.MBTA.BaseURL)
	}
	if cfg.MBTA.TimeoutMS != 2500 || cfg.MBTA.MaxRetries != 5 {
		t.Errorf("MBTA settings = %+v", cfg.MBTA)
	}
	// unset fields still get defaults
	if cfg.MBTA.BackoffMS != 300 {
		t.Errorf("BackoffMS = %d, expected default 300", cfg.MBTA.BackoffMS)
	}
	if cfg.Cache.Path != "/tmp/planner.db" || cfg.Cache.MaxAgeMinutes != 90 {
		t.Errorf("cache settings = %+v", cfg.Cache)
	}
}

func TestConfig_RejectsInvalidURL(t *testing.T) {
	origConfig := subwayplanner.Config
	origDir, _ := os.Getwd()
	defer func() {
		subwayplanner.Config = origConfig
		_ = os.Chdir(origDir)
	}()

	dir := t.TempDir()
	yml := "mbta:\n  baseURL: \"not a url\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	if err := subwayplanner.LoadAppConfig(); err == nil {
		t.Fatal("expected validation error for malformed baseURL")
	}
}

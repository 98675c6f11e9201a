package config

import "testing"

func TestLoadRequiresDatabaseURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{
		"DATABASE_URL": "",
		"REDIS_URL":    "redis://localhost:6379/0",
	})
	if err == nil {
		t.Fatalf("expected error for missing DATABASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DATABASE_URL": "postgres://localhost:5432/resto",
		"REDIS_URL":    "redis://localhost:6379/0",
		"PORT":         "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr())
	}
	if cfg.PromoAmount != 20_000 || cfg.PromoMinSpend != 100_000 {
		t.Fatalf("unexpected promo defaults: %d / %d", cfg.PromoAmount, cfg.PromoMinSpend)
	}
	start, end := cfg.HappyHourWindow()
	if start != 14*60 || end != 16*60 {
		t.Fatalf("unexpected happy hour window: %d-%d", start, end)
	}
}

func TestMustLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/resto")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg := MustLoad()
	if cfg.DatabaseURL != "postgres://localhost:5432/resto" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
}

func TestMustLoadPanicsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing DATABASE_URL")
		}
	}()
	MustLoad()
}

func TestHappyHourWindowParsing(t *testing.T) {
	cfg := &Config{HappyHourStart: "09:30", HappyHourEnd: "11:15"}
	start, end := cfg.HappyHourWindow()
	if start != 9*60+30 || end != 11*60+15 {
		t.Fatalf("unexpected window: %d-%d", start, end)
	}

	cfg = &Config{HappyHourStart: "garbage", HappyHourEnd: "16:00"}
	start, end = cfg.HappyHourWindow()
	if start != 14*60 || end != 16*60 {
		t.Fatalf("expected fallback window, got %d-%d", start, end)
	}
}

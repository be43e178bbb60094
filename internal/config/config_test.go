package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"DASHBOARD_CONFIG_PATH", "DASHBOARD_WEATHER_API_KEY", "OPENWEATHER_API_KEY",
		"REACT_APP_WEATHER_API_KEY", "DASHBOARD_CITY", "DASHBOARD_QUOTE_POLICY",
		"DASHBOARD_LOG_LEVEL", "DASHBOARD_LANG", "DASHBOARD_HEADING_SENSOR", "DASHBOARD_HOME",
	} {
		t.Setenv(name, "")
	}
	work = t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	return home, work
}

func TestDefaults(t *testing.T) {
	home, _ := isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.City != "Raleigh" {
		t.Fatalf("city=%q", cfg.Weather.City)
	}
	if cfg.Quote.MaxLength != 100 || cfg.Quote.OnFailure != "fallback" {
		t.Fatalf("quote=%+v", cfg.Quote)
	}
	if cfg.Clock.TickMS != 1000 || cfg.Heading.SimulateMS != 100 {
		t.Fatalf("timers clock=%d heading=%d", cfg.Clock.TickMS, cfg.Heading.SimulateMS)
	}
	wantBase := filepath.Join(home, ".dashboard")
	if cfg.Storage.BaseDir != wantBase {
		t.Fatalf("base_dir=%q want %q", cfg.Storage.BaseDir, wantBase)
	}
	if cfg.Log.File != filepath.Join(wantBase, "dashboard.log") {
		t.Fatalf("log.file=%q", cfg.Log.File)
	}
}

func TestLoadJSONCAndPrecedence(t *testing.T) {
	home, _ := isolate(t)

	globalDir := filepath.Join(home, ".dashboard")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatal(err)
	}
	globalCfg := `{
  // global
  "weather": {"city": "Boston", "timeout_ms": 2500},
  /* block */
  "quote": {"on_failure": "error"}
}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalCfg), 0o644); err != nil {
		t.Fatal(err)
	}
	projectCfg := `{
  "weather": {"city": "Durham"},
  "heading": {"disable_sensor": true}
}`
	if err := os.WriteFile("dashboard.config.json", []byte(projectCfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.City != "Durham" {
		t.Fatalf("city=%q", cfg.Weather.City)
	}
	if cfg.Weather.TimeoutMS != 2500 {
		t.Fatalf("timeout=%d", cfg.Weather.TimeoutMS)
	}
	if cfg.Quote.OnFailure != "error" {
		t.Fatalf("on_failure=%q", cfg.Quote.OnFailure)
	}
	if !cfg.Heading.DisableSensor {
		t.Fatalf("heading.disable_sensor expected true")
	}
}

func TestLoadYAML(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	yamlCfg := "weather:\n  city: Chapel Hill\nquote:\n  max_length: 80\nui:\n  locale: zh-CN\n  alt_screen: false\n"
	if err := os.WriteFile(path, []byte(yamlCfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.City != "Chapel Hill" || cfg.Quote.MaxLength != 80 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.UI.Locale != "zh-CN" || cfg.UI.AltScreen {
		t.Fatalf("ui=%+v", cfg.UI)
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("DASHBOARD_CITY", "Paris")
	t.Setenv("OPENWEATHER_API_KEY", "legacy")
	t.Setenv("REACT_APP_WEATHER_API_KEY", "react")
	t.Setenv("DASHBOARD_QUOTE_POLICY", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.City != "Paris" {
		t.Fatalf("city=%q", cfg.Weather.City)
	}
	if cfg.Weather.APIKey != "legacy" {
		t.Fatalf("api_key=%q", cfg.Weather.APIKey)
	}
	if cfg.Quote.OnFailure != "error" {
		t.Fatalf("on_failure=%q", cfg.Quote.OnFailure)
	}

	t.Setenv("DASHBOARD_WEATHER_API_KEY", "primary")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.APIKey != "primary" {
		t.Fatalf("api_key=%q", cfg.Weather.APIKey)
	}
}

func TestDashboardHomeMovesLogFile(t *testing.T) {
	_, work := isolate(t)
	t.Setenv("DASHBOARD_HOME", filepath.Join(work, "state"))

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.File != filepath.Join(work, "state", "dashboard.log") {
		t.Fatalf("log.file=%q", cfg.Log.File)
	}
}

func TestInvalidEnums(t *testing.T) {
	cases := []struct {
		name string
		env  string
		val  string
	}{
		{"quote policy", "DASHBOARD_QUOTE_POLICY", "retry"},
		{"log level", "DASHBOARD_LOG_LEVEL", "verbose"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tc.env, tc.val)
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%q", tc.env, tc.val)
			}
		})
	}
}

func TestMalformedConfigFails(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("dashboard.config.json", []byte(`{"weather": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStripJSONCommentsKeepsStrings(t *testing.T) {
	in := []byte(`{"url": "https://example.com/a//b", // trailing
"x": 1 /* c */}`)
	got := string(stripJSONComments(in))
	want := "{\"url\": \"https://example.com/a//b\", \n\"x\": 1 }"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestInitProjectConfigScaffold(t *testing.T) {
	_, work := isolate(t)

	path, err := InitProjectConfigScaffold(work)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(work, ".dashboard", "config.json") {
		t.Fatalf("path=%q", path)
	}
	if err := os.WriteFile(path, []byte(`{"weather": {"city": "Cary"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InitProjectConfigScaffold(work); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.City != "Cary" {
		t.Fatalf("existing scaffold overwritten, city=%q", cfg.Weather.City)
	}
}

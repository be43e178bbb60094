package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dashboard/internal/logging"
	"dashboard/internal/quote"

	"gopkg.in/yaml.v3"
)

type WeatherConfig struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	APIKey    string `json:"api_key" yaml:"api_key"`
	City      string `json:"city" yaml:"city"`
	TimeoutMS int    `json:"timeout_ms" yaml:"timeout_ms"`
}

type QuoteConfig struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	MaxLength int    `json:"max_length" yaml:"max_length"`
	TimeoutMS int    `json:"timeout_ms" yaml:"timeout_ms"`
	// OnFailure 取值 fallback | error，决定获取失败时的展示
	// OnFailure is fallback | error and decides what a failed fetch shows
	OnFailure string `json:"on_failure" yaml:"on_failure"`
}

type ClockConfig struct {
	TickMS int `json:"tick_ms" yaml:"tick_ms"`
}

type HeadingConfig struct {
	SensorPath    string `json:"sensor_path" yaml:"sensor_path"`
	IIORoot       string `json:"iio_root" yaml:"iio_root"`
	DisableSensor bool   `json:"disable_sensor" yaml:"disable_sensor"`
	SimulateMS    int    `json:"simulate_ms" yaml:"simulate_ms"`
	PollMS        int    `json:"poll_ms" yaml:"poll_ms"`
}

type UIConfig struct {
	Locale    string `json:"locale" yaml:"locale"`
	AltScreen bool   `json:"alt_screen" yaml:"alt_screen"`
}

type StorageConfig struct {
	// BaseDir 仅存放日志与行编辑历史，不保存任何组件状态
	// BaseDir only holds the log file and line-editor history, never widget state
	BaseDir string `json:"base_dir" yaml:"base_dir"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
	File  string `json:"file" yaml:"file"`
}

type Config struct {
	Weather WeatherConfig `json:"weather" yaml:"weather"`
	Quote   QuoteConfig   `json:"quote" yaml:"quote"`
	Clock   ClockConfig   `json:"clock" yaml:"clock"`
	Heading HeadingConfig `json:"heading" yaml:"heading"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

type fileHeadingConfig struct {
	SensorPath    *string `json:"sensor_path" yaml:"sensor_path"`
	IIORoot       *string `json:"iio_root" yaml:"iio_root"`
	DisableSensor *bool   `json:"disable_sensor" yaml:"disable_sensor"`
	SimulateMS    *int    `json:"simulate_ms" yaml:"simulate_ms"`
	PollMS        *int    `json:"poll_ms" yaml:"poll_ms"`
}

type fileUIConfig struct {
	Locale    *string `json:"locale" yaml:"locale"`
	AltScreen *bool   `json:"alt_screen" yaml:"alt_screen"`
}

type fileConfig struct {
	Weather *WeatherConfig     `json:"weather" yaml:"weather"`
	Quote   *QuoteConfig       `json:"quote" yaml:"quote"`
	Clock   *ClockConfig       `json:"clock" yaml:"clock"`
	Heading *fileHeadingConfig `json:"heading" yaml:"heading"`
	UI      *fileUIConfig      `json:"ui" yaml:"ui"`
	Storage *StorageConfig     `json:"storage" yaml:"storage"`
	Log     *LogConfig         `json:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Weather: WeatherConfig{
			BaseURL:   DefaultWeatherBaseURL,
			City:      DefaultCity,
			TimeoutMS: DefaultHTTPTimeoutMS,
		},
		Quote: QuoteConfig{
			BaseURL:   DefaultQuoteBaseURL,
			MaxLength: DefaultQuoteMaxLength,
			TimeoutMS: DefaultHTTPTimeoutMS,
			OnFailure: DefaultQuotePolicy,
		},
		Clock: ClockConfig{TickMS: DefaultClockTickMS},
		Heading: HeadingConfig{
			SimulateMS: DefaultHeadingSimulateMS,
			PollMS:     DefaultHeadingPollMS,
		},
		UI:      UIConfig{AltScreen: true},
		Storage: StorageConfig{BaseDir: DefaultStorageBaseDir},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// Load 依次合并默认值、全局配置、项目配置与环境变量
// Load merges defaults, the global file, the project file and the environment, in that order
func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("DASHBOARD_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return applyEnv(cfg)
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ProjectConfigDirName)
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, ProjectConfigFileName),
	}
}

func findProjectConfigPath() string {
	candidates := []string{
		"dashboard.config.json",
		"dashboard.config.yaml",
		filepath.Join(ProjectConfigDirName, ProjectConfigFileName),
		filepath.Join(ProjectConfigDirName, "config.yaml"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	var fileCfg fileConfig
	if err := decodeFile(resolved, data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fileCfg)
	return nil
}

// decodeFile 按扩展名选择 YAML 或 JSONC
// decodeFile picks YAML or JSONC by file extension
func decodeFile(path string, data []byte, out *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(stripJSONComments(data), out)
	}
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Weather != nil {
		cfg.Weather = mergeWeather(cfg.Weather, *fc.Weather)
	}
	if fc.Quote != nil {
		cfg.Quote = mergeQuote(cfg.Quote, *fc.Quote)
	}
	if fc.Clock != nil && fc.Clock.TickMS > 0 {
		cfg.Clock.TickMS = fc.Clock.TickMS
	}
	if fc.Heading != nil {
		if fc.Heading.SensorPath != nil {
			cfg.Heading.SensorPath = *fc.Heading.SensorPath
		}
		if fc.Heading.IIORoot != nil {
			cfg.Heading.IIORoot = *fc.Heading.IIORoot
		}
		if fc.Heading.DisableSensor != nil {
			cfg.Heading.DisableSensor = *fc.Heading.DisableSensor
		}
		if fc.Heading.SimulateMS != nil {
			cfg.Heading.SimulateMS = *fc.Heading.SimulateMS
		}
		if fc.Heading.PollMS != nil {
			cfg.Heading.PollMS = *fc.Heading.PollMS
		}
	}
	if fc.UI != nil {
		if fc.UI.Locale != nil {
			cfg.UI.Locale = *fc.UI.Locale
		}
		if fc.UI.AltScreen != nil {
			cfg.UI.AltScreen = *fc.UI.AltScreen
		}
	}
	if fc.Storage != nil && strings.TrimSpace(fc.Storage.BaseDir) != "" {
		cfg.Storage.BaseDir = fc.Storage.BaseDir
	}
	if fc.Log != nil {
		if strings.TrimSpace(fc.Log.Level) != "" {
			cfg.Log.Level = fc.Log.Level
		}
		if strings.TrimSpace(fc.Log.File) != "" {
			cfg.Log.File = fc.Log.File
		}
	}
}

func mergeWeather(base WeatherConfig, override WeatherConfig) WeatherConfig {
	if strings.TrimSpace(override.BaseURL) != "" {
		base.BaseURL = override.BaseURL
	}
	if strings.TrimSpace(override.APIKey) != "" {
		base.APIKey = override.APIKey
	}
	if strings.TrimSpace(override.City) != "" {
		base.City = override.City
	}
	if override.TimeoutMS > 0 {
		base.TimeoutMS = override.TimeoutMS
	}
	return base
}

func mergeQuote(base QuoteConfig, override QuoteConfig) QuoteConfig {
	if strings.TrimSpace(override.BaseURL) != "" {
		base.BaseURL = override.BaseURL
	}
	if override.MaxLength > 0 {
		base.MaxLength = override.MaxLength
	}
	if override.TimeoutMS > 0 {
		base.TimeoutMS = override.TimeoutMS
	}
	if strings.TrimSpace(override.OnFailure) != "" {
		base.OnFailure = override.OnFailure
	}
	return base
}

func normalize(cfg *Config) error {
	def := Default()

	cfg.Weather.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Weather.BaseURL), "/")
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = def.Weather.BaseURL
	}
	cfg.Weather.APIKey = strings.TrimSpace(cfg.Weather.APIKey)
	cfg.Weather.City = strings.TrimSpace(cfg.Weather.City)
	if cfg.Weather.City == "" {
		cfg.Weather.City = def.Weather.City
	}
	if cfg.Weather.TimeoutMS <= 0 {
		cfg.Weather.TimeoutMS = def.Weather.TimeoutMS
	}

	cfg.Quote.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Quote.BaseURL), "/")
	if cfg.Quote.BaseURL == "" {
		cfg.Quote.BaseURL = def.Quote.BaseURL
	}
	if cfg.Quote.MaxLength <= 0 {
		cfg.Quote.MaxLength = def.Quote.MaxLength
	}
	if cfg.Quote.TimeoutMS <= 0 {
		cfg.Quote.TimeoutMS = def.Quote.TimeoutMS
	}
	policy, err := quote.ParsePolicy(cfg.Quote.OnFailure)
	if err != nil {
		return err
	}
	cfg.Quote.OnFailure = string(policy)

	if cfg.Clock.TickMS <= 0 {
		cfg.Clock.TickMS = def.Clock.TickMS
	}
	if cfg.Heading.SimulateMS <= 0 {
		cfg.Heading.SimulateMS = def.Heading.SimulateMS
	}
	if cfg.Heading.PollMS <= 0 {
		cfg.Heading.PollMS = def.Heading.PollMS
	}
	cfg.Heading.SensorPath = strings.TrimSpace(cfg.Heading.SensorPath)
	cfg.UI.Locale = strings.TrimSpace(cfg.UI.Locale)

	if strings.TrimSpace(cfg.Storage.BaseDir) == "" {
		cfg.Storage.BaseDir = def.Storage.BaseDir
	}
	storageDir, err := expandPath(cfg.Storage.BaseDir)
	if err != nil {
		return err
	}
	cfg.Storage.BaseDir = storageDir

	level := strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if level == "" {
		level = def.Log.Level
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return err
	}
	cfg.Log.Level = level
	if strings.TrimSpace(cfg.Log.File) == "" {
		cfg.Log.File = filepath.Join(cfg.Storage.BaseDir, DefaultLogFileName)
	}
	logFile, err := expandPath(cfg.Log.File)
	if err != nil {
		return err
	}
	cfg.Log.File = logFile
	return nil
}

// applyEnv 环境变量在启动时读取一次，优先级最高
// applyEnv reads the environment once at start; it has the highest precedence
func applyEnv(cfg Config) (Config, error) {
	for _, name := range []string{"DASHBOARD_WEATHER_API_KEY", "OPENWEATHER_API_KEY", "REACT_APP_WEATHER_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.Weather.APIKey = v
			break
		}
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_CITY")); v != "" {
		cfg.Weather.City = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_QUOTE_POLICY")); v != "" {
		cfg.Quote.OnFailure = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_LANG")); v != "" {
		cfg.UI.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_HEADING_SENSOR")); v != "" {
		cfg.Heading.SensorPath = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_HOME")); v != "" {
		cfg.Storage.BaseDir = v
		cfg.Log.File = ""
	}

	return cfg, normalize(&cfg)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.Bytes()
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"dashboard/internal/config"
	"dashboard/internal/dashboard"
	"dashboard/internal/heading"
	"dashboard/internal/i18n"
	"dashboard/internal/logging"
	"dashboard/internal/quote"
	"dashboard/internal/sysinfo"
	"dashboard/internal/tui"
	"dashboard/internal/weather"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type rootFlags struct {
	configPath string
	city       string
	plain      bool
	lang       string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Mission Control personal dashboard for the terminal",
		Long:          "A terminal dashboard with a to-do list, clock, weather, quote of the day, fun fact, system info and compass.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, flags)
		},
	}
	root.Flags().StringVar(&flags.configPath, "config", "", "Path to config file (JSON/JSONC or YAML)")
	root.Flags().StringVar(&flags.city, "city", "", "Initial weather city")
	root.Flags().BoolVar(&flags.plain, "plain", false, "Use the line-oriented plain mode instead of the full-screen UI")
	root.Flags().StringVar(&flags.lang, "lang", "", "UI language (en, zh-CN)")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newVersionCmd(), newInitCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dashboard version %s\n", strings.TrimSpace(Version))
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a project config template to .dashboard/config.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := config.InitProjectConfigScaffold(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
			return nil
		},
	}
}

func run(ctx context.Context, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}
	applyFlags(&cfg, flags)

	i18n.Init(cfg.UI.Locale)
	loc := i18n.Global()

	plain := flags.plain || !term.IsTerminal(int(os.Stdout.Fd()))

	// 全屏界面独占终端，日志写入文件 / The full-screen UI owns the terminal, so it logs to a file
	logOut := io.Writer(os.Stderr)
	if !plain {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	d, err := buildDashboard(cfg, logger, sysinfo.DefaultProbe(Version))
	if err != nil {
		return err
	}
	logger.Info("dashboard starting", "plain", plain, "city", cfg.Weather.City, "locale", loc.Locale())

	if !plain {
		return tui.Run(ctx, d, tui.Options{
			Locale:        loc,
			AltScreen:     cfg.UI.AltScreen,
			MarkdownStyle: "dark",
		})
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in, inputErr := newLineInput(filepath.Join(cfg.Storage.BaseDir, config.DefaultHistoryFileName), interactive)
	if inputErr != nil {
		logger.Warn("line editor unavailable, fallback to basic input", "err", inputErr)
	}
	defer in.Close()
	return runPlain(ctx, d, in, os.Stdout, loc)
}

// applyFlags 命令行参数覆盖配置
// applyFlags lets command-line flags override the loaded config
func applyFlags(cfg *config.Config, flags rootFlags) {
	if v := strings.TrimSpace(flags.city); v != "" {
		cfg.Weather.City = v
	}
	if v := strings.TrimSpace(flags.lang); v != "" {
		cfg.UI.Locale = v
	}
	if v := strings.TrimSpace(flags.logLevel); v != "" {
		cfg.Log.Level = v
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, lvl), nil
}

// buildDashboard 按配置装配客户端、航向探测与组件
// buildDashboard wires the clients, heading probe and widgets from cfg
func buildDashboard(cfg config.Config, logger *slog.Logger, probe sysinfo.Probe) (*dashboard.Dashboard, error) {
	policy, err := quote.ParsePolicy(cfg.Quote.OnFailure)
	if err != nil {
		return nil, err
	}
	if cfg.Weather.APIKey == "" {
		logger.Warn("weather api key is not configured", "hint", "set DASHBOARD_WEATHER_API_KEY")
	}

	return dashboard.New(dashboard.Options{
		City:        cfg.Weather.City,
		QuotePolicy: policy,
		Quotes:      quote.NewClient(cfg.Quote.BaseURL, cfg.Quote.MaxLength, cfg.Quote.TimeoutMS),
		Weather:     weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, weather.DefaultUnits, cfg.Weather.TimeoutMS),
		HeadingProbe: heading.ProbeOptions{
			SensorPath:        cfg.Heading.SensorPath,
			IIORoot:           cfg.Heading.IIORoot,
			DisableSensor:     cfg.Heading.DisableSensor,
			SyntheticInterval: time.Duration(cfg.Heading.SimulateMS) * time.Millisecond,
			SensorInterval:    time.Duration(cfg.Heading.PollMS) * time.Millisecond,
		},
		SystemInfo:   probe.Read,
		TickInterval: time.Duration(cfg.Clock.TickMS) * time.Millisecond,
		Logger:       logger,
	}), nil
}

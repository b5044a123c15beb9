package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/clust/internal/cache"
	"github.com/yourusername/clust/internal/client"
	"github.com/yourusername/clust/internal/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// App represents the main application
type App struct {
	logger  *zap.Logger
	config  *Config
	version string
}

// New creates a new App instance
func New(config *Config, version string) (*App, error) {
	logger, err := initLogger(config.LogLevel, config.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		logger:  logger,
		config:  config,
		version: version,
	}, nil
}

// Run builds the cluster client and drives the interactive session until
// the user quits or ctx is cancelled. opts are applied after the defaults,
// e.g. to replace the terminal with other input and output.
func (a *App) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	a.logger.Info("Starting clust",
		zap.String("version", a.version),
		zap.String("config", a.config.File),
		zap.Bool("simulated", a.config.Simulated),
		zap.String("locale", a.config.Locale),
	)

	c := a.newClient()
	model := ui.NewModel(c, a.logger, a.config.Locale)
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, options...)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info("Session cancelled", zap.Error(ctx.Err()))
			return nil
		}
		return fmt.Errorf("UI error: %w", err)
	}

	a.logger.Info("Session ended")
	return nil
}

// newClient selects the client variant from configuration. In real mode
// the kubeconfig is consulted for metadata only; failures are logged and
// the client falls back to what the config file provides.
func (a *App) newClient() client.ClusterClient {
	meta := a.config.Metadata()

	if !a.config.Simulated && a.config.Kubeconfig != "" {
		info, err := loadKubeconfig(a.config.Kubeconfig)
		if err != nil {
			a.logger.Warn("Kubeconfig metadata unavailable",
				zap.String("kubeconfig", a.config.Kubeconfig),
				zap.Error(err),
			)
		} else {
			meta = mergeMetadata(meta, info)
		}
	}

	c := client.New(a.config.Simulated, meta, a.logger)
	return cache.Wrap(c, a.config.CacheTTL, a.logger)
}

// Shutdown flushes the logger
func (a *App) Shutdown() error {
	a.logger.Info("Shutting down application...")

	// Sync only flushes buffered log entries, ignore sync errors
	_ = a.logger.Sync()
	return nil
}

// initLogger initializes the zap logger with file rotation support
func initLogger(levelStr, logFile string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if logFile == "" {
		logFile = "/tmp/clust.log"
	}

	// NOTE: the TUI owns stdout, so logs only go to the rotated file
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	zap.ReplaceGlobals(logger)

	return logger, nil
}

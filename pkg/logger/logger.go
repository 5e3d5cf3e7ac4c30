package logger

import (
	"os"
	"slices"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Path       string   `yaml:"path"`
	MaxSize    int      `yaml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAge     int      `yaml:"max_age_days"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zap.NewNop().Sugar()
)

// InitGlobalLogger replaces the process logger. Until it is called every
// log call is a no-op, which keeps tests quiet.
func InitGlobalLogger(cfg *Config) {
	l := New(cfg)

	mu.Lock()
	defer mu.Unlock()

	_ = global.Sync()
	global = l
}

func New(cfg *Config) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	targets := cfg.Targets
	if len(targets) == 0 {
		targets = []string{TargetConsole}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if slices.Contains(targets, TargetConsole) {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stdout), level))
	}

	if slices.Contains(targets, TargetFile) && cfg.Path != "" {
		w := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

func Debug(msg string, keysAndValues ...any) {
	get().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, keysAndValues...)
}

func Sync() error {
	return get().Sync()
}

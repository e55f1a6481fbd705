package material

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// DataDirEnv names the environment variable that overrides the default data
// directory. It is read once, when the package is initialized.
const DataDirEnv = "EMM_DATA_DIR"

const fallbackDataDir = "dat"

var defaultDataDir = func() string {
	if dir := strings.TrimSpace(os.Getenv(DataDirEnv)); dir != "" {
		return dir
	}
	return fallbackDataDir
}()

// DefaultDataDir returns the process-wide default data directory.
func DefaultDataDir() string { return defaultDataDir }

// Config holds Library settings.
type Config struct {
	DataDir string
	Logger  *zap.Logger
	Verbose bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default data directory, a no-op logger, and
// verbose output disabled.
func DefaultConfig() Config {
	return Config{
		DataDir: defaultDataDir,
		Logger:  zap.NewNop(),
	}
}

// WithDataDir sets the directory datasets are resolved against.
func WithDataDir(dir string) Option {
	return func(cfg *Config) {
		if strings.TrimSpace(dir) != "" {
			cfg.DataDir = dir
		}
	}
}

// WithLogger sets the logger receiving range warnings and verbose messages.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithVerbose enables informational messages for every Read and Load.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

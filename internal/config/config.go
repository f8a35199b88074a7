// Package config loads pessimal settings from defaults, flags, environment and config files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/pessimal/internal/tensor"
)

// Storage kinds accepted by TensorConfig.Storage.
const (
	StorageHeap = "heap"
	StoragePool = "pool"
	StorageMmap = "mmap"
)

type Config struct {
	Tensor   TensorConfig `mapstructure:"tensor"`
	LogLevel string       `mapstructure:"log_level"`
}

type TensorConfig struct {
	DType   string `mapstructure:"dtype"`
	Storage string `mapstructure:"storage"`
	// MaxBytes caps the buffer the CLI will allocate. Zero disables the cap.
	MaxBytes int `mapstructure:"max_bytes"`
}

// DefaultMaxBytes is the default allocation cap, 1 GiB.
const DefaultMaxBytes = 1 << 30

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Tensor: TensorConfig{
			DType:    tensor.Float32.String(),
			Storage:  StorageHeap,
			MaxBytes: DefaultMaxBytes,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tensor-dtype", defaults.Tensor.DType, "Element type (int8..int64, int, uint8..uint64, uint, uintptr, float32, float64)")
	fs.String("tensor-storage", defaults.Tensor.Storage, "Backing storage (heap|pool|mmap)")
	fs.Int("tensor-max-bytes", defaults.Tensor.MaxBytes, "Largest tensor buffer to allocate in bytes (0 = unlimited)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("PESSIMAL")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("pessimal")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := tensor.ParseDataType(c.Tensor.DType); err != nil {
		return fmt.Errorf("tensor.dtype: %w", err)
	}
	switch c.Tensor.Storage {
	case StorageHeap, StoragePool, StorageMmap:
	default:
		return fmt.Errorf("tensor.storage: unknown storage %q (want heap|pool|mmap)", c.Tensor.Storage)
	}
	if c.Tensor.MaxBytes < 0 {
		return fmt.Errorf("tensor.max_bytes: must be >= 0, got %d", c.Tensor.MaxBytes)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level. The empty string means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tensor.dtype", c.Tensor.DType)
	v.SetDefault("tensor.storage", c.Tensor.Storage)
	v.SetDefault("tensor.max_bytes", c.Tensor.MaxBytes)
	v.SetDefault("log_level", c.LogLevel)
}

// flagKeys maps flag names to config keys. Binding by key, rather than
// aliasing, keeps config file values visible to Unmarshal.
var flagKeys = map[string]string{
	"tensor-dtype":     "tensor.dtype",
	"tensor-storage":   "tensor.storage",
	"tensor-max-bytes": "tensor.max_bytes",
	"log-level":        "log_level",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

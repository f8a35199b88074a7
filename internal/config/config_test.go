package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pessimal/internal/tensor"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

// chdirTemp moves into an empty directory so no stray pessimal.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "float32", cfg.Tensor.DType)
	assert.Equal(t, StorageHeap, cfg.Tensor.Storage)
	assert.Equal(t, DefaultMaxBytes, cfg.Tensor.MaxBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(defaults), Defaults: defaults})
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	chdirTemp(t)
	defaults := DefaultConfig()
	binder := newFlagBinder(defaults)
	require.NoError(t, binder.fs.Parse([]string{
		"--tensor-dtype=int64", "--tensor-storage=pool", "--tensor-max-bytes=4096", "--log-level=debug",
	}))

	cfg, err := Load(LoadOptions{Cmd: binder, Defaults: defaults})
	require.NoError(t, err)

	assert.Equal(t, "int64", cfg.Tensor.DType)
	assert.Equal(t, StoragePool, cfg.Tensor.Storage)
	assert.Equal(t, 4096, cfg.Tensor.MaxBytes)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PESSIMAL_TENSOR_STORAGE", "mmap")

	defaults := DefaultConfig()
	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(defaults), Defaults: defaults})
	require.NoError(t, err)
	assert.Equal(t, StorageMmap, cfg.Tensor.Storage)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "tensor:\n  dtype: uint8\n  storage: pool\n  max_bytes: 0\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	defaults := DefaultConfig()
	cfg, err := Load(LoadOptions{ConfigFile: path, Defaults: defaults})
	require.NoError(t, err)

	assert.Equal(t, "uint8", cfg.Tensor.DType)
	assert.Equal(t, StoragePool, cfg.Tensor.Storage)
	assert.Equal(t, 0, cfg.Tensor.MaxBytes)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	chdirTemp(t)

	_, err := Load(LoadOptions{ConfigFile: "does-not-exist.yaml", Defaults: DefaultConfig()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tensor.DType = "complex128"
	require.ErrorIs(t, cfg.Validate(), tensor.ErrUnknownDataType)

	cfg = DefaultConfig()
	cfg.Tensor.Storage = "gpu"
	require.ErrorContains(t, cfg.Validate(), "unknown storage")

	cfg = DefaultConfig()
	cfg.Tensor.MaxBytes = -1
	require.ErrorContains(t, cfg.Validate(), "tensor.max_bytes")

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	require.ErrorContains(t, cfg.Validate(), "unknown log level")
}

func TestRegisterFlags_DTypeHelp(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, DefaultConfig())
	usage := fs.Lookup("tensor-dtype").Usage

	for _, name := range []string{"int8..int64", " int,", "uint8..uint64", " uint,", " uintptr,", "float32", "float64"} {
		assert.Contains(t, usage, name)
	}
}

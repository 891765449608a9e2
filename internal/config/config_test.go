package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns a lookup function backed by a map
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv blanks the variables Load reads; empty values count as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHost, EnvPort, EnvLogLevel, EnvLogFormat, EnvShutdownTimeout, EnvConfigFile} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "no variables keeps defaults",
			env:  map[string]string{},
			want: func(*Config) {},
		},
		{
			name: "all variables set",
			env: map[string]string{
				EnvHost:            "0.0.0.0",
				EnvPort:            "9090",
				EnvLogLevel:        "debug",
				EnvLogFormat:       "json",
				EnvShutdownTimeout: "10s",
			},
			want: func(c *Config) {
				c.Host = "0.0.0.0"
				c.Port = 9090
				c.LogLevel = "debug"
				c.LogFormat = "json"
				c.ShutdownTimeout = 10 * time.Second
			},
		},
		{
			name: "empty variables are ignored",
			env:  map[string]string{EnvPort: "", EnvLogLevel: ""},
			want: func(*Config) {},
		},
		{
			name:    "non-numeric port",
			env:     map[string]string{EnvPort: "eighty"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			env:     map[string]string{EnvShutdownTimeout: "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := ApplyEnv(&cfg, envMap(tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := Default()
			tt.want(&want)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "port zero", modify: func(c *Config) { c.Port = 0 }},
		{name: "port too large", modify: func(c *Config) { c.Port = 70000 }},
		{name: "unknown level", modify: func(c *Config) { c.LogLevel = "chatty" }},
		{name: "unknown format", modify: func(c *Config) { c.LogFormat = "xml" }},
		{name: "zero timeout", modify: func(c *Config) { c.ShutdownTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "todo.yaml", "port: 9000\nlog_level: warn\nshutdown_timeout: 2s\n")

		cfg := Default()
		require.NoError(t, LoadFile(path, &cfg))

		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "127.0.0.1", cfg.Host, "keys absent from the file keep their value")
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "todo.toml", "host = \"0.0.0.0\"\nport = 9100\nlog_format = \"logfmt\"\nshutdown_timeout = \"3s\"\n")

		cfg := Default()
		require.NoError(t, LoadFile(path, &cfg))

		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, 9100, cfg.Port)
		assert.Equal(t, "logfmt", cfg.LogFormat)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "todo.ini", "port=1")
		cfg := Default()
		assert.Error(t, LoadFile(path, &cfg))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "todo.yml", "port: [not, a, number]\n")
		cfg := Default()
		assert.Error(t, LoadFile(path, &cfg))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	})
}

func TestLoad(t *testing.T) {
	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "todo.yaml", "port: 9000\nlog_level: warn\n")
		env := map[string]string{
			EnvConfigFile: path,
			EnvPort:       "9500",
		}

		cfg, err := load(filepath.Join(t.TempDir(), "missing.env"), envMap(env))
		require.NoError(t, err)

		assert.Equal(t, 9500, cfg.Port)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		_, err := load(filepath.Join(t.TempDir(), "missing.env"), envMap(map[string]string{EnvPort: "0"}))
		assert.Error(t, err)
	})

	t.Run("dotenv file populates the environment", func(t *testing.T) {
		clearEnv(t)
		// t.Setenv above registered cleanup; the variable must start unset
		// for godotenv to populate it
		require.NoError(t, os.Unsetenv(EnvLogFormat))

		dotenv := writeFile(t, ".env", EnvLogFormat+"=json\n")

		cfg, err := load(dotenv, os.LookupEnv)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("dotenv never overrides set variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "error")
		dotenv := writeFile(t, ".env", EnvLogLevel+"=debug\n")

		cfg, err := load(dotenv, os.LookupEnv)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseConfString(t *testing.T) {
	require.Equal(t, "{log: {level: trace}}", string(parseConfString("log.level=trace")))
	require.Equal(t, "{zcam: {settle: 2s}}", string(parseConfString("zcam.settle=2s")))
	require.Nil(t, parseConfString("zcamfmt.yaml"))
	require.Nil(t, parseConfString("level=trace"))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("ZCAM_HOST", "10.0.0.5")

	require.Equal(t, "host: 10.0.0.5", expandEnv("host: ${ZCAM_HOST}"))
	require.Equal(t, "host: 10.0.0.5", expandEnv("host: ${ZCAM_HOST:192.168.1.103}"))
	require.Equal(t, "out: report.json", expandEnv("out: ${ZCAM_UNKNOWN_OUTPUT:report.json}"))
	require.Equal(t, "out: ${ZCAM_UNKNOWN_OUTPUT}", expandEnv("out: ${ZCAM_UNKNOWN_OUTPUT}"))
}

func TestLoadConfig(t *testing.T) {
	prevConfigs, prevPath := configs, ConfigPath
	t.Cleanup(func() {
		configs, ConfigPath = prevConfigs, prevPath
	})

	t.Setenv("ZCAM_HOST", "10.0.0.5")

	path := filepath.Join(t.TempDir(), "zcamfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
zcam:
  host: ${ZCAM_HOST}
  output: e2.json
  settle: 1.5s
`), 0644))

	configs, ConfigPath = nil, ""
	initConfig(flagConfig{path, "zcam.output=e2m4.json", `{"check": {"format": true}}`})

	require.Equal(t, path, ConfigPath)

	var cfg struct {
		Mod struct {
			Host    string        `yaml:"host"`
			Output  string        `yaml:"output"`
			Timeout time.Duration `yaml:"timeout"`
			Settle  time.Duration `yaml:"settle"`
		} `yaml:"zcam"`
		Check struct {
			Format bool `yaml:"format"`
			Native bool `yaml:"native"`
		} `yaml:"check"`
	}
	cfg.Mod.Timeout = 10 * time.Second
	cfg.Check.Native = true

	LoadConfig(&cfg)

	require.Equal(t, "10.0.0.5", cfg.Mod.Host)
	require.Equal(t, "e2m4.json", cfg.Mod.Output)
	require.Equal(t, 10*time.Second, cfg.Mod.Timeout)
	require.Equal(t, 1500*time.Millisecond, cfg.Mod.Settle)
	require.True(t, cfg.Check.Format)
	require.True(t, cfg.Check.Native)
}

func TestMissingDefaultConfig(t *testing.T) {
	prevConfigs, prevPath := configs, ConfigPath
	t.Cleanup(func() {
		configs, ConfigPath = prevConfigs, prevPath
	})

	configs, ConfigPath = nil, ""
	initConfig(flagConfig{filepath.Join(t.TempDir(), defaultConfig)})

	require.Empty(t, ConfigPath)
	require.Empty(t, configs)
}

func TestReadSource(t *testing.T) {
	data, path := readSource(`{"zcam": {"host": "10.0.0.5"}}`)
	require.Equal(t, `{"zcam": {"host": "10.0.0.5"}}`, string(data))
	require.Empty(t, path)

	data, path = readSource("zcam.host=10.0.0.5")
	require.Equal(t, "{zcam: {host: 10.0.0.5}}", string(data))
	require.Empty(t, path)

	data, path = readSource("")
	require.Nil(t, data)
	require.Empty(t, path)

	file := filepath.Join(t.TempDir(), "e2.yaml")
	data, path = readSource(file)
	require.Nil(t, data)
	require.Empty(t, path)

	require.NoError(t, os.WriteFile(file, []byte("zcam:\n  output: ${ZCAM_UNKNOWN_OUTPUT:e2.json}\n"), 0644))
	data, path = readSource(file)
	require.Equal(t, "zcam:\n  output: e2.json\n", string(data))
	require.Equal(t, file, path)
}

func TestConfigPathFirstReadable(t *testing.T) {
	prevConfigs, prevPath := configs, ConfigPath
	t.Cleanup(func() {
		configs, ConfigPath = prevConfigs, prevPath
	})

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("zcam:\n  output: a.json\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("zcam:\n  output: b.json\n"), 0644))

	configs, ConfigPath = nil, ""
	initConfig(flagConfig{missing, first, second})

	require.Equal(t, first, ConfigPath)
	require.Len(t, configs, 2)
}

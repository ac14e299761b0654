package app

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfig = "zcamfmt.yaml"

// LoadConfig apply all config sources to v, in order of the command line
func LoadConfig(v any) {
	for _, data := range configs {
		if err := yaml.Unmarshal(data, v); err != nil {
			Logger.Warn().Err(err).Msg("[app] read config")
		}
	}
}

// flagConfig collects repeated -config values
type flagConfig []string

func (c *flagConfig) String() string {
	return strings.Join(*c, " ")
}

func (c *flagConfig) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var configs [][]byte

func initConfig(confs flagConfig) {
	if len(confs) == 0 {
		confs = flagConfig{defaultConfig}
	}

	for _, conf := range confs {
		data, path := readSource(conf)
		if data == nil {
			continue
		}

		configs = append(configs, data)

		// first readable file goes to the startup log
		if path != "" && ConfigPath == "" {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
			ConfigPath = path
		}
	}
}

// readSource return YAML for one -config value, and path when it came from
// a file. Unreadable files give nil, so the default config is optional.
func readSource(conf string) (data []byte, path string) {
	switch {
	case conf == "":
		return nil, ""
	case conf[0] == '{':
		return []byte(conf), ""
	}

	if data = parseConfString(conf); data != nil {
		return data, ""
	}

	b, err := os.ReadFile(conf)
	if err != nil {
		return nil, ""
	}

	return []byte(expandEnv(string(b))), conf
}

// parseConfString: `zcam.settle=2s` => `{zcam: {settle: 2s}}`, nil when key
// has no dot
func parseConfString(s string) []byte {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return nil
	}

	path := strings.Split(key, ".")
	if len(path) < 2 {
		return nil
	}

	return []byte("{" + strings.Join(path, ": {") + ": " + value + strings.Repeat("}", len(path)))
}

var reEnv = regexp.MustCompile(`\${([^}{]+)}`)

// expandEnv replace ${NAME} and ${NAME:default}, unknown names without
// default stay as is
func expandEnv(text string) string {
	return reEnv.ReplaceAllStringFunc(text, func(match string) string {
		key, def, hasDef := strings.Cut(match[2:len(match)-1], ":")

		if value, ok := os.LookupEnv(key); ok {
			return value
		}

		if hasDef {
			return def
		}

		return match
	})
}

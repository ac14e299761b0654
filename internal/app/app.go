package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var Version = "0.3.0"

var ConfigPath string
var RunID string

// Host and Output from command line, empty values will be asked later
var Host, Output string

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "zcamfmt config (path to file, raw text or key.sub=value), support multiple")
	flag.StringVar(&Host, "host", "", "Camera address, example: 192.168.1.103")
	flag.StringVar(&Output, "output", "", "Output JSON file path")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		fmt.Printf("zcamfmt version %s%s %s/%s\n", Version, vcsRevision(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	RunID = uuid.NewString()
	Logger = Logger.With().Str("run", RunID[:8]).Logger()
	log.Logger = Logger

	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	Logger.Info().Str("version", Version).Str("platform", platform).Msg("zcamfmt")
	Logger.Debug().Str("version", runtime.Version()).Msg("build")

	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var revision string
	var modified time.Time

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.time":
			modified, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}

	if revision == "" {
		return ""
	}

	return " (" + revision + ", " + modified.Local().Format(time.DateTime) + ")"
}

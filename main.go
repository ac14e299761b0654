package main

import (
	"errors"
	"time"

	"github.com/zcamtools/zcamfmt/internal/app"
	"github.com/zcamtools/zcamfmt/internal/report"
	"github.com/zcamtools/zcamfmt/pkg/zcam"
)

func main() {
	app.Init() // init config and logs
	report.Init()

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

	// defaults
	cfg.Mod.Timeout = zcam.DefaultTimeout
	cfg.Mod.Settle = zcam.DefaultSettle
	cfg.Check.Native = true

	app.LoadConfig(&cfg)

	log := app.Logger

	host := first(app.Host, cfg.Mod.Host)
	if host == "" {
		if host = app.Ask("Camera address (example: 192.168.1.103): "); host == "" {
			log.Fatal().Msg("[main] camera address can't be empty")
		}
	}

	output := first(app.Output, cfg.Mod.Output)
	if output == "" {
		if output = app.Ask("Output JSON file (example: output.json): "); output == "" {
			log.Fatal().Msg("[main] output path can't be empty")
		}
	}

	start := time.Now()
	log.Info().Str("host", host).Str("output", output).Msg("[main] start")

	client := zcam.NewClient(host)
	client.Timeout = cfg.Mod.Timeout
	client.Settle = cfg.Mod.Settle
	client.Log = app.GetLogger("zcam")

	r, err := report.Build(client)
	if err != nil {
		log.Fatal().Err(err).Msg("[main] " + buildHint(err))
	}

	if err = report.Save(output, r); err != nil {
		log.Fatal().Err(err).Msg("[main] can't save report")
	}

	log.Info().Str("path", output).Int("resolutions", len(r.Details)).Msg("[main] report saved")

	if cfg.Check.Format {
		report.LogFormat(report.CheckFormat(r.Details, r.Movfmt))
	}

	if cfg.Check.Native {
		report.LogNative(report.CheckNative(r.AllFmt, r.Movfmt), r.AllFmt, r.Movfmt)
	}

	end := time.Now()
	log.Info().
		Str("start", start.Format(time.DateTime)).
		Str("end", end.Format(time.DateTime)).
		Str("elapsed", end.Sub(start).Round(time.Millisecond).String()).
		Msg("[main] done")
}

func buildHint(err error) string {
	switch {
	case errors.Is(err, report.ErrNoInfo):
		return "check camera address and network"
	case errors.Is(err, report.ErrNoResolutions):
		return "camera is online, but didn't report resolutions"
	}
	return "can't build report"
}

func first(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

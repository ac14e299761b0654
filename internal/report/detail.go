package report

import (
	"errors"

	"github.com/zcamtools/zcamfmt/pkg/zcam"
)

const streamIndex = "stream0"

func getDetail(cam Camera, resolution string, vocab zcam.Vocabulary) (*Detail, error) {
	if err := cam.SetOption(zcam.KeyResolution, resolution); err != nil {
		return nil, err
	}

	fpsOpts := getOpts(cam, zcam.KeyProjectFPS)
	vfrOpts := getOpts(cam, zcam.KeyMovVFR)

	detail := &Detail{
		Resolution: resolution,
		Movfmt:     []string{},
		FPS:        zcam.SortFPS(fpsOpts),
		VFR:        zcam.SortFPS(vfrOpts),
		UserFPS:    zcam.MergeFPS(fpsOpts, vfrOpts),
	}

	if stream, err := cam.GetStream(streamIndex); err == nil {
		detail.Width = stream.Width
		detail.Height = stream.Height
	} else {
		log.Debug().Err(err).Msg("[report] can't get stream setting")
	}

	for i, fps := range detail.FPS {
		movfmt, err := getMovfmt(cam, resolution, fps, vocab)
		if err != nil {
			log.Warn().Err(err).Msgf("[report] fps %d/%d: %s skipped", i+1, len(detail.FPS), fps)
			continue
		}

		log.Debug().Msgf("[report] fps %d/%d: %s => %s", i+1, len(detail.FPS), fps, movfmt)

		detail.Movfmt = append(detail.Movfmt, movfmt)
	}

	if len(detail.Movfmt) != len(detail.FPS) {
		log.Warn().Msgf("[report] movfmt count (%d) doesn't match fps count (%d)", len(detail.Movfmt), len(detail.FPS))
	}

	return detail, nil
}

var errNoMovfmt = errors.New("report: camera didn't report movfmt")

// getMovfmt build name from rules or ask camera. Camera answer is trusted
// even if it doesn't match requested fps.
func getMovfmt(cam Camera, resolution, fps string, vocab zcam.Vocabulary) (string, error) {
	if movfmt, ok := zcam.Construct(resolution, fps, vocab); ok {
		return movfmt, nil
	}

	log.Debug().Msgf("[report] no rule for %s %s, ask camera", resolution, fps)

	if err := cam.SetOption(zcam.KeyProjectFPS, fps); err != nil {
		return "", err
	}

	opt, err := cam.GetOption(zcam.KeyMovfmt)
	if err != nil {
		return "", err
	}

	if opt.Value == "" {
		return "", errNoMovfmt
	}

	return opt.Value, nil
}

func getOpts(cam Camera, key string) []string {
	opt, err := cam.GetOption(key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("[report] can't get option")
		return nil
	}
	return opt.Opts
}

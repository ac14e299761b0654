package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/zcamtools/zcamfmt/internal/app"
	"github.com/zcamtools/zcamfmt/pkg/zcam"
)

// Camera - part of Z CAM control API used for report, implemented by zcam.Client
type Camera interface {
	GetInfo() (*zcam.Info, error)
	GetOption(key string) (*zcam.Option, error)
	SetOption(key, value string) error
	GetStream(index string) (*zcam.Stream, error)
}

type Report struct {
	Model      string    `json:"camera_model"`
	NickName   string    `json:"camera_nickName"`
	SW         string    `json:"camera_sw"`
	AllFmt     []string  `json:"allfmt"`
	Movfmt     []string  `json:"movfmt"`
	Resolution []string  `json:"resolution"`
	Details    []*Detail `json:"details_list"`
}

type Detail struct {
	Resolution string   `json:"resolution"`
	Width      *int     `json:"width"`
	Height     *int     `json:"height"`
	Movfmt     []string `json:"movfmt"`
	FPS        []string `json:"fps"`
	VFR        []string `json:"vfr"`
	UserFPS    []string `json:"user_fps_list"`
}

var (
	ErrNoInfo        = errors.New("report: can't get camera info")
	ErrNoResolutions = errors.New("report: empty resolution list")
)

var log = zerolog.Nop()

func Init() {
	log = app.GetLogger("report")
}

// Build query camera and collect all formats. Only camera info and
// resolution list are required, any other failure skips single item.
func Build(cam Camera) (*Report, error) {
	log.Info().Msg("[report] get camera info")

	info, err := cam.GetInfo()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInfo, err)
	}

	log.Info().Str("model", info.Model).Str("sw", info.SW).Str("name", info.NickName).Msg("[report] camera")

	log.Info().Msg("[report] get movfmt list")

	var movfmt []string
	if opt, err := cam.GetOption(zcam.KeyMovfmt); err == nil {
		movfmt = opt.Opts
	} else {
		log.Warn().Err(err).Msg("[report] can't get movfmt list")
	}

	log.Info().Msg("[report] get resolution list")

	var resolutions []string
	if opt, err := cam.GetOption(zcam.KeyResolution); err == nil {
		resolutions = opt.Opts
	} else {
		log.Warn().Err(err).Msg("[report] can't get resolution list")
	}

	if len(resolutions) == 0 {
		return nil, ErrNoResolutions
	}

	r := &Report{
		Model:      info.Model,
		NickName:   info.NickName,
		SW:         info.SW,
		AllFmt:     nonNil(info.Formats),
		Movfmt:     nonNil(movfmt),
		Resolution: resolutions,
		Details:    []*Detail{},
	}

	vocab := zcam.NewVocabulary(movfmt)

	for i, resolution := range resolutions {
		log.Info().Msgf("[report] resolution %d/%d: %s", i+1, len(resolutions), resolution)

		detail, err := getDetail(cam, resolution, vocab)
		if err != nil {
			log.Warn().Err(err).Str("resolution", resolution).Msg("[report] skip resolution")
			continue
		}

		r.Details = append(r.Details, detail)
	}

	return r, nil
}

// Save write report with 4 spaces indent and without escaping non-ASCII symbols
func Save(path string, r *Report) error {
	b, err := Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func Marshal(r *Report) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(r); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package report

import (
	"sort"

	"github.com/zcamtools/zcamfmt/pkg/zcam"
)

// Mismatch - resolution and fps pair without `{resolution}P{fps}` movfmt
type Mismatch struct {
	Resolution string
	FPS        string
	Expected   string
}

// CheckFormat gives false positives for cameras with short or S16 names, so
// it's disabled by default
func CheckFormat(details []*Detail, movfmt []string) []Mismatch {
	vocab := zcam.NewVocabulary(movfmt)

	var mismatches []Mismatch
	for _, detail := range details {
		for _, fps := range detail.FPS {
			expected := detail.Resolution + "P" + fps
			if !vocab.Has(expected) {
				mismatches = append(mismatches, Mismatch{detail.Resolution, fps, expected})
			}
		}
	}
	return mismatches
}

func LogFormat(mismatches []Mismatch) {
	if len(mismatches) == 0 {
		log.Info().Msg("[report] format check passed")
		return
	}

	log.Warn().Msgf("[report] format check: %d errors", len(mismatches))

	groups := map[string][]Mismatch{}
	for _, m := range mismatches {
		groups[m.Resolution] = append(groups[m.Resolution], m)
	}

	resolutions := make([]string, 0, len(groups))
	for resolution := range groups {
		resolutions = append(resolutions, resolution)
	}
	sort.Strings(resolutions)

	for _, resolution := range resolutions {
		for _, m := range groups[resolution] {
			log.Warn().Str("resolution", resolution).Str("fps", m.FPS).Msgf("[report] movfmt %s not in list", m.Expected)
		}
	}
}

type NativeDiff struct {
	OnlyAllFmt []string
	OnlyMovfmt []string
	Common     int
}

func (d *NativeDiff) Equal() bool {
	return len(d.OnlyAllFmt) == 0 && len(d.OnlyMovfmt) == 0
}

// CheckNative compare native format list from /info with movfmt options
func CheckNative(allfmt, movfmt []string) *NativeDiff {
	all := zcam.NewVocabulary(allfmt)
	mov := zcam.NewVocabulary(movfmt)

	diff := &NativeDiff{}

	for name := range all {
		if mov.Has(name) {
			diff.Common++
		} else {
			diff.OnlyAllFmt = append(diff.OnlyAllFmt, name)
		}
	}

	for name := range mov {
		if !all.Has(name) {
			diff.OnlyMovfmt = append(diff.OnlyMovfmt, name)
		}
	}

	sort.Strings(diff.OnlyAllFmt)
	sort.Strings(diff.OnlyMovfmt)

	return diff
}

func LogNative(diff *NativeDiff, allfmt, movfmt []string) {
	if diff.Equal() {
		log.Info().Int("common", diff.Common).Msg("[report] allfmt and movfmt are equal")
		return
	}

	log.Warn().
		Int("allfmt", len(allfmt)).Int("movfmt", len(movfmt)).Int("common", diff.Common).
		Msg("[report] allfmt and movfmt are different")

	for _, name := range diff.OnlyAllFmt {
		log.Warn().Msgf("[report] only in allfmt: %s", name)
	}
	for _, name := range diff.OnlyMovfmt {
		log.Warn().Msgf("[report] only in movfmt: %s", name)
	}
}

package zcam

import "strings"

// Vocabulary - movfmt names supported by camera
type Vocabulary map[string]struct{}

func NewVocabulary(names []string) Vocabulary {
	v := make(Vocabulary, len(names))
	for _, name := range names {
		v[name] = struct{}{}
	}
	return v
}

func (v Vocabulary) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Rule build movfmt candidate from resolution and formatted fps
type Rule func(resolution, fps string) (string, bool)

const lowNoise = " (Low Noise)"

// Rules in priority order. Camera firmwares name movfmt inconsistently, so
// the list isn't complete and unresolved pairs should be asked from camera.
var Rules = []Rule{
	// S16 16:9 + 60 => S16 16:9 60
	func(resolution, fps string) (string, bool) {
		if strings.HasPrefix(resolution, "S16") {
			return resolution + " " + fps, true
		}
		return "", false
	},
	// 4K (Low Noise) + 25 => 4KP25 (Low Noise)
	func(resolution, fps string) (string, bool) {
		if strings.Contains(resolution, lowNoise) {
			return strings.ReplaceAll(resolution, lowNoise, "") + "P" + fps + lowNoise, true
		}
		return "", false
	},
	// 1920x1080 + 24 => 1080P24
	func(resolution, fps string) (string, bool) {
		if resolution == "1920x1080" {
			return "1080P" + fps, true
		}
		return "", false
	},
	// 2880x2880 + 30 => 2880P30
	func(resolution, fps string) (string, bool) {
		if w, h, ok := strings.Cut(resolution, "x"); ok && !strings.Contains(h, "x") {
			if w, h = strings.TrimSpace(w), strings.TrimSpace(h); w != "" && w == h {
				return w + "P" + fps, true
			}
		}
		return "", false
	},
	// 3840x2160 + 29.97 => 3840x2160P29.97
	func(resolution, fps string) (string, bool) {
		return resolution + "P" + fps, true
	},
}

// Construct return first rule candidate that exists in vocabulary
func Construct(resolution, fps string, vocab Vocabulary) (string, bool) {
	for _, rule := range Rules {
		if name, ok := rule(resolution, fps); ok && vocab.Has(name) {
			return name, true
		}
	}
	return "", false
}

package rexgen

import "github.com/projectdiscovery/rexgen/internal/feature"

// Feature identifies one optional post-processing conversion the builder
// can apply to the synthesized expression before printing it.
type Feature int

const (
	FeatureDigit Feature = iota
	FeatureNonDigit
	FeatureSpace
	FeatureNonSpace
	FeatureWord
	FeatureNonWord
	FeatureRepetition
)

// shorthandClass reports the internal feature.Class Feature f maps to,
// and whether f is a shorthand-class conversion at all (FeatureRepetition
// is handled earlier in the pipeline, before AST construction, since it
// operates on grapheme clusters rather than the synthesized expression).
func (f Feature) shorthandClass() (feature.Class, bool) {
	switch f {
	case FeatureDigit:
		return feature.ClassDigit, true
	case FeatureNonDigit:
		return feature.ClassNonDigit, true
	case FeatureSpace:
		return feature.ClassSpace, true
	case FeatureNonSpace:
		return feature.ClassNonSpace, true
	case FeatureWord:
		return feature.ClassWord, true
	case FeatureNonWord:
		return feature.ClassNonWord, true
	default:
		return 0, false
	}
}

package bento

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SizeKind specifies how a dimension (width or height) is resolved.
type SizeKind int

const (
	// SizeStretch distributes remaining main-axis space by weight (default).
	SizeStretch SizeKind = iota

	// SizeFixed uses an explicit pixel value.
	SizeFixed

	// SizePercent uses a percentage of the parent's resolved size.
	SizePercent

	// SizeHug sizes a container to the sum of its children's extents.
	SizeHug
)

// Size pairs a kind with its numeric value: pixels for SizeFixed, a
// percentage for SizePercent, a weight for SizeStretch. The zero value is a
// weight-1 stretch, so an axis left unspecified fills the space its parent
// offers.
type Size struct {
	Kind  SizeKind
	Value float32
}

// Fixed returns an explicit pixel size.
func Fixed(px float32) Size { return Size{Kind: SizeFixed, Value: px} }

// Percent returns a size resolved as a percentage of the parent's resolved
// size on the same axis.
func Percent(p float32) Size { return Size{Kind: SizePercent, Value: p} }

// Stretch returns a weighted share of the remaining main-axis space.
// A weight of 0 is treated as 1.
func Stretch(weight float32) Size { return Size{Kind: SizeStretch, Value: weight} }

// Hug returns a size derived from the extents of the node's children.
func Hug() Size { return Size{Kind: SizeHug} }

// ErrInvalidSizeSpec reports a malformed size token.
var ErrInvalidSizeSpec = errors.New("invalid size spec")

// ParseSize parses a raw size token into a Size.
//
// Accepted forms: a non-negative pixel number ("120", "120px"), a
// non-negative percentage ("50%"), a stretch weight ("s", "2s"), or the
// literal "hug". Anything else returns an error wrapping ErrInvalidSizeSpec.
func ParseSize(raw string) (Size, error) {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return Size{}, errors.Wrap(ErrInvalidSizeSpec, "empty token")
	}
	if tok == "hug" {
		return Hug(), nil
	}
	if rest, ok := strings.CutSuffix(tok, "%"); ok {
		p, err := strconv.ParseFloat(rest, 32)
		if err != nil || p < 0 {
			return Size{}, errors.Wrapf(ErrInvalidSizeSpec, "percent %q", raw)
		}
		return Percent(float32(p)), nil
	}
	if rest, ok := strings.CutSuffix(tok, "s"); ok {
		if rest == "" {
			return Stretch(1), nil
		}
		w, err := strconv.ParseFloat(rest, 32)
		if err != nil || w <= 0 {
			return Size{}, errors.Wrapf(ErrInvalidSizeSpec, "stretch weight %q", raw)
		}
		return Stretch(float32(w)), nil
	}
	rest := strings.TrimSuffix(tok, "px")
	px, err := strconv.ParseFloat(rest, 32)
	if err != nil || px < 0 {
		return Size{}, errors.Wrapf(ErrInvalidSizeSpec, "pixel value %q", raw)
	}
	return Fixed(float32(px)), nil
}

// valid reports whether the size is well formed for layout. Negative pixel
// values, negative percentages and negative stretch weights are rejected;
// the offending node resolves to zero-size bounds with a diagnostic.
func (s Size) valid() bool {
	switch s.Kind {
	case SizeFixed, SizePercent, SizeStretch:
		return s.Value >= 0
	case SizeHug:
		return true
	}
	return false
}

// weight returns the stretch weight, defaulting to 1 for the zero value.
func (s Size) weight() float32 {
	if s.Value <= 0 {
		return 1
	}
	return s.Value
}

package bento

import "fmt"

// DiagCode classifies a recoverable per-node layout problem.
type DiagCode int

const (
	// DiagInvalidSizeSpec reports a malformed size value (negative pixels,
	// negative percentage, negative stretch weight).
	DiagInvalidSizeSpec DiagCode = iota

	// DiagInvalidGridDimension reports a non-positive grid cell count.
	DiagInvalidGridDimension

	// DiagMissingID reports a node that scrolls, persists, or carries
	// mixins without a stable identifier. The request is ignored.
	DiagMissingID

	// DiagCircularHugPercent reports a percent-sized child on an axis its
	// container hugs. The child contributes zero to the hug measurement.
	DiagCircularHugPercent
)

func (c DiagCode) String() string {
	switch c {
	case DiagInvalidSizeSpec:
		return "InvalidSizeSpec"
	case DiagInvalidGridDimension:
		return "InvalidGridDimension"
	case DiagMissingID:
		return "MissingID"
	case DiagCircularHugPercent:
		return "CircularHugPercent"
	}
	return fmt.Sprintf("DiagCode(%d)", int(c))
}

// Diagnostic records a recoverable problem found during a layout pass.
// Diagnostics never abort a pass: the offending node resolves to zero-size
// bounds (or the offending request is ignored) and resolution continues,
// since one malformed node must not break an otherwise valid frame.
type Diagnostic struct {
	Code   DiagCode
	NodeID string // empty when the node has no identifier
	Detail string
}

func (d Diagnostic) String() string {
	if d.NodeID != "" {
		return fmt.Sprintf("%s [%s]: %s", d.Code, d.NodeID, d.Detail)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Detail)
}

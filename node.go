package bento

// Point is a 2D vector in pixels.
type Point struct {
	X, Y float32
}

// Bounds is the resolved rectangle for one node, produced once per pass.
// Bounds are ephemeral: the host rebuilds and re-resolves the tree every
// frame, so they are never retained across frames.
type Bounds struct {
	X, Y, W, H float32
}

// Mode selects whether a node participates in its parent's flow or is
// positioned absolutely against the parent's content rectangle.
type Mode int

const (
	// ModeFlow places the node in its parent's stack or grid flow (default).
	ModeFlow Mode = iota

	// ModePopOut removes the node from flow; it is anchored against the
	// parent's content rectangle and consumes no flow budget or spacing.
	ModePopOut
)

// Anchor is the reference corner (or center) of the parent's content
// rectangle from which a pop-out child's offset is measured.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// FlowMode selects how a container arranges its flow children.
type FlowMode int

const (
	// StackYFlow stacks children vertically (default).
	StackYFlow FlowMode = iota

	// StackXFlow stacks children horizontally.
	StackXFlow

	// GridFlow places children row-major into equally sized cells.
	GridFlow
)

// Overflow is the per-axis policy for children that exceed container bounds.
type Overflow int

const (
	// OverflowVisible lets children draw outside the container (default).
	OverflowVisible Overflow = iota

	// OverflowClip constrains child drawing to the container on that axis.
	OverflowClip

	// OverflowScroll clips and additionally translates child drawing by the
	// container's scroll offset. Requires a stable node ID.
	OverflowScroll
)

// Spacing describes a container's gap layout on one axis: space before the
// first child, between adjacent children, and after the last child.
type Spacing struct {
	Before, Between, After float32
}

// FlowSpec describes how a container lays out its children.
type FlowSpec struct {
	Direction FlowMode

	SpacingX Spacing
	SpacingY Spacing

	OverflowX Overflow
	OverflowY Overflow

	// Grid cell counts, used when Direction is GridFlow. Cols must be
	// positive; Rows may be left 0 to derive the row count from the number
	// of children.
	Cols, Rows int
}

// WithOverflow returns a copy with the overflow policy set on both axes.
func (f FlowSpec) WithOverflow(o Overflow) FlowSpec {
	f.OverflowX = o
	f.OverflowY = o
	return f
}

// scrollable reports whether either axis uses OverflowScroll.
func (f FlowSpec) scrollable() bool {
	return f.OverflowX == OverflowScroll || f.OverflowY == OverflowScroll
}

// AxisSpec describes one axis of a node's own layout: leading and trailing
// space, the size itself, and optional min/max clamps. Max == 0 means
// unbounded.
type AxisSpec struct {
	Before, After float32
	Size          Size
	Min, Max      float32
}

// clamp applies the axis's min/max clamps to a candidate size.
func (a AxisSpec) clamp(v float32) float32 {
	if v < a.Min {
		v = a.Min
	}
	if a.Max > 0 && v > a.Max {
		v = a.Max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// clamps reports whether the candidate size violates a min/max clamp.
func (a AxisSpec) clamps(v float32) bool {
	return a.clamp(v) != v
}

// Node is one element of the layout tree. The host rebuilds the tree every
// frame; the engine treats it as immutable for the duration of one pass.
//
// ID is optional but required for nodes that scroll, persist scroll state,
// or carry lifecycle mixins; where present it must be unique among nodes
// sharing a scroll store or lifecycle scope within one pass.
type Node struct {
	ID string

	// Own layout, per axis.
	X, Y AxisSpec

	// Z orders siblings for rendering. Higher draws later (on top). Ties
	// preserve original sibling order.
	Z int

	// Aspect is the width/height ratio, or 0 for none. When exactly one
	// axis is explicitly sized (fixed or percent), the other is derived.
	Aspect float32

	Mode   Mode
	Anchor Anchor
	Offset Point // pop-out offset, measured inward from the anchor

	// Flow describes the layout of Children.
	Flow FlowSpec

	// Persist pins this node's scroll state so it survives unmount.
	Persist bool

	Mixins   []Mixin
	Children []*Node
}

// StackY creates a container that stacks children vertically.
func StackY(children ...*Node) *Node {
	return &Node{Flow: FlowSpec{Direction: StackYFlow}, Children: children}
}

// StackX creates a container that stacks children horizontally.
func StackX(children ...*Node) *Node {
	return &Node{Flow: FlowSpec{Direction: StackXFlow}, Children: children}
}

// GridBox creates a grid container with the given column and row counts.
// Rows may be 0 to derive the row count from the number of children.
func GridBox(cols, rows int, children ...*Node) *Node {
	return &Node{Flow: FlowSpec{Direction: GridFlow, Cols: cols, Rows: rows}, Children: children}
}

// Box creates a leaf node.
func Box() *Node {
	return &Node{}
}

// WithID sets the stable identifier and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithSize sets the size on both axes and returns the node for chaining.
func (n *Node) WithSize(x, y Size) *Node {
	n.X.Size = x
	n.Y.Size = y
	return n
}

// WithZ sets the z-index and returns the node for chaining.
func (n *Node) WithZ(z int) *Node {
	n.Z = z
	return n
}

// WithMixin appends a lifecycle hook bundle and returns the node for
// chaining. Multiple mixins are invoked independently, in order.
func (n *Node) WithMixin(m Mixin) *Node {
	n.Mixins = append(n.Mixins, m)
	return n
}

// axis selects one of the two layout axes. Most of the resolver is written
// once against an axis index rather than twice against X and Y.
type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) other() axis {
	if a == axisX {
		return axisY
	}
	return axisX
}

// spec returns the node's AxisSpec on the given axis.
func (n *Node) spec(a axis) AxisSpec {
	if a == axisX {
		return n.X
	}
	return n.Y
}

// spacing returns the container spacing on the given axis.
func (f FlowSpec) spacing(a axis) Spacing {
	if a == axisX {
		return f.SpacingX
	}
	return f.SpacingY
}

// mainAxis returns the stacking axis for a stack container. Grid containers
// have no single main axis.
func (f FlowSpec) mainAxis() axis {
	if f.Direction == StackXFlow {
		return axisX
	}
	return axisY
}

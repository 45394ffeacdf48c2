package bento

// DrawFunc draws one node at its resolved screen bounds. The renderer
// behind it is the host's concern.
type DrawFunc func(n *Node, b Bounds)

// ScrollbarFunc signals the host to render a scrollbar indicator for one
// axis of a scrolling container whose content exceeds its bounds. track is
// the full bar strip, thumb the portion reflecting the visible range.
type ScrollbarFunc func(n *Node, vertical bool, track, thumb Bounds)

// unboundedClip is the half-extent used for the unconstrained axis of a
// single-axis clip. Far larger than any practical pixel space.
const unboundedClip = float32(1 << 24)

// Walker traverses a resolved bounds tree in z-order and drives a host
// renderer: Draw fires per node in pre-order (parents paint behind their
// children), PushClip/PopClip bracket children of clipping containers, and
// Scrollbar fires for overflowing scroll axes. All callbacks but Draw are
// optional.
type Walker struct {
	Draw      DrawFunc
	PushClip  func(Bounds)
	PopClip   func()
	Scrollbar ScrollbarFunc

	// Config supplies scrollbar metrics; DefaultConfig when nil.
	Config *Config
}

// Walk traverses the bounds tree produced by a layout pass.
func (w *Walker) Walk(root *BoundsNode) {
	if root == nil {
		return
	}
	cfg := w.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w.walk(root, Point{}, cfg)
}

func (w *Walker) walk(bn *BoundsNode, off Point, cfg *Config) {
	b := bn.Bounds
	b.X += off.X
	b.Y += off.Y
	if w.Draw != nil {
		w.Draw(bn.Node, b)
	}

	f := bn.Node.Flow
	clipX := f.OverflowX != OverflowVisible
	clipY := f.OverflowY != OverflowVisible

	// Scroll translates the child coordinate frame by the negated offset;
	// the bounds tree itself stays in untranslated layout coordinates.
	childOff := off
	if f.OverflowX == OverflowScroll {
		childOff.X -= bn.ScrollOffset.X
	}
	if f.OverflowY == OverflowScroll {
		childOff.Y -= bn.ScrollOffset.Y
	}

	pushed := false
	if (clipX || clipY) && w.PushClip != nil {
		clip := Bounds{X: -unboundedClip, Y: -unboundedClip, W: 2 * unboundedClip, H: 2 * unboundedClip}
		if clipX {
			clip.X, clip.W = b.X, b.W
		}
		if clipY {
			clip.Y, clip.H = b.Y, b.H
		}
		w.PushClip(clip)
		pushed = true
	}

	for _, child := range bn.Children {
		w.walk(child, childOff, cfg)
	}

	if pushed && w.PopClip != nil {
		w.PopClip()
	}

	// Scrollbars paint above the clipped content.
	if w.Scrollbar != nil {
		if f.OverflowX == OverflowScroll && bn.ContentW > b.W {
			track, thumb := scrollbarGeometry(b, bn.ContentW, bn.ScrollOffset.X, false, cfg)
			w.Scrollbar(bn.Node, false, track, thumb)
		}
		if f.OverflowY == OverflowScroll && bn.ContentH > b.H {
			track, thumb := scrollbarGeometry(b, bn.ContentH, bn.ScrollOffset.Y, true, cfg)
			w.Scrollbar(bn.Node, true, track, thumb)
		}
	}
}

// scrollbarGeometry computes track and thumb rectangles for one axis. The
// thumb length is proportional to the visible fraction of the content and
// its position to the scroll offset.
func scrollbarGeometry(b Bounds, content, offset float32, vertical bool, cfg *Config) (track, thumb Bounds) {
	th := cfg.Scrollbar.Thickness

	span := b.W
	if vertical {
		span = b.H
	}
	length := span * span / content
	if length < cfg.Scrollbar.MinThumb {
		length = cfg.Scrollbar.MinThumb
	}
	if length > span {
		length = span
	}

	maxOffset := content - span
	frac := float32(0)
	if maxOffset > 0 {
		frac = offset / maxOffset
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	along := frac * (span - length)

	if vertical {
		track = Bounds{X: b.X + b.W - th, Y: b.Y, W: th, H: b.H}
		thumb = Bounds{X: track.X, Y: b.Y + along, W: th, H: length}
		return track, thumb
	}
	track = Bounds{X: b.X, Y: b.Y + b.H - th, W: b.W, H: th}
	thumb = Bounds{X: b.X + along, Y: track.Y, W: length, H: th}
	return track, thumb
}

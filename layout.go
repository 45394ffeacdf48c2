package bento

import (
	"fmt"
	"sort"
)

// BoundsNode is one node of the resolved bounds tree. Children are held in
// stable z-order (ascending Z, ties in original sibling order), which is the
// order the Walker visits them in; placement itself never depends on Z.
type BoundsNode struct {
	Node   *Node
	Bounds Bounds

	// ContentW/ContentH are the extents of the flow children including
	// internal spacing, used by the Walker to decide scrollbar geometry.
	ContentW, ContentH float32

	// ScrollOffset is the container's offset from the snapshot taken at
	// pass start, zero for non-scrolling nodes.
	ScrollOffset Point

	Children []*BoundsNode
}

// Result is the output of one layout pass: the bounds tree plus any
// per-node diagnostics collected along the way.
type Result struct {
	Root  *BoundsNode
	Diags []Diagnostic
}

// resolver carries per-pass state. A resolver lives for exactly one pass
// and is never shared between goroutines.
type resolver struct {
	cfg   *Config
	snap  ScrollSnapshot
	diags []Diagnostic
	ids   *passIDs

	// circular de-duplicates CircularHugPercent diagnostics when the same
	// subtree is measured more than once.
	circular map[*Node]bool
}

func (r *resolver) diag(code DiagCode, n *Node, detail string) {
	r.diags = append(r.diags, Diagnostic{Code: code, NodeID: n.ID, Detail: detail})
}

func (r *resolver) debugf(format string, args ...interface{}) {
	if r.cfg.Debug.Layout {
		fmt.Printf(format+"\n", args...)
	}
}

// layoutPass resolves a node tree against a viewport and scroll snapshot.
// It is a pure function of its inputs: identical inputs produce identical
// bounds trees, diagnostics included.
func layoutPass(root *Node, viewport Point, snap ScrollSnapshot, cfg *Config) (*Result, *passIDs) {
	r := &resolver{
		cfg:      cfg,
		snap:     snap,
		ids:      newPassIDs(),
		circular: make(map[*Node]bool),
	}
	res := &Result{}
	if root != nil {
		r.debugf("layout pass: viewport (%.0f,%.0f)", viewport.X, viewport.Y)
		p := r.preferredSize(root, viewport.X, viewport.Y)
		w, h := p.w, p.h
		if !p.wKnown {
			w = root.X.clamp(maxf(viewport.X-root.X.Before-root.X.After, 0))
		}
		if !p.hKnown {
			h = root.Y.clamp(maxf(viewport.Y-root.Y.Before-root.Y.After, 0))
		}
		bn := &BoundsNode{
			Node:   root,
			Bounds: Bounds{X: root.X.Before, Y: root.Y.Before, W: w, H: h},
		}
		r.layoutNode(bn)
		res.Root = bn
	}
	res.Diags = r.diags
	return res, r.ids
}

// sizePair holds a node's resolved size as far as it can be known without
// the parent's flow context. An axis is "known" when it is explicit (fixed,
// percent), hug-measured, or aspect-derived; unknown axes are stretch and
// are filled in by the parent.
type sizePair struct {
	w, h           float32
	wKnown, hKnown bool
	invalid        bool
}

func (p *sizePair) get(a axis) float32 {
	if a == axisX {
		return p.w
	}
	return p.h
}

func (p *sizePair) known(a axis) bool {
	if a == axisX {
		return p.wKnown
	}
	return p.hKnown
}

func (p *sizePair) set(a axis, v float32) {
	if a == axisX {
		p.w, p.wKnown = v, true
	} else {
		p.h, p.hKnown = v, true
	}
}

// preferredSize resolves as much of a node's size as the node itself
// determines. parentW/parentH are the parent's resolved extents, the basis
// for percent sizes. A malformed spec yields a zero-size pair with both
// axes known, so the node occupies no space but its siblings still resolve.
func (r *resolver) preferredSize(n *Node, parentW, parentH float32) sizePair {
	if !n.X.Size.valid() || !n.Y.Size.valid() || n.Aspect < 0 {
		r.diag(DiagInvalidSizeSpec, n, fmt.Sprintf("x=%v y=%v aspect=%v", n.X.Size, n.Y.Size, n.Aspect))
		return sizePair{wKnown: true, hKnown: true, invalid: true}
	}

	var p sizePair
	switch n.X.Size.Kind {
	case SizeFixed:
		p.set(axisX, n.X.clamp(n.X.Size.Value))
	case SizePercent:
		p.set(axisX, n.X.clamp(parentW*n.X.Size.Value/100))
	case SizeHug:
		p.set(axisX, n.X.clamp(r.measureHug(n, axisX)))
	}
	switch n.Y.Size.Kind {
	case SizeFixed:
		p.set(axisY, n.Y.clamp(n.Y.Size.Value))
	case SizePercent:
		p.set(axisY, n.Y.clamp(parentH*n.Y.Size.Value/100))
	case SizeHug:
		p.set(axisY, n.Y.clamp(r.measureHug(n, axisY)))
	}

	// Aspect derives the non-explicit axis from the explicit one. When both
	// axes are explicit the ratio is ignored.
	if n.Aspect > 0 {
		wExplicit := n.X.Size.Kind == SizeFixed || n.X.Size.Kind == SizePercent
		hExplicit := n.Y.Size.Kind == SizeFixed || n.Y.Size.Kind == SizePercent
		if wExplicit && !hExplicit {
			p.set(axisY, n.Y.clamp(p.w/n.Aspect))
		} else if hExplicit && !wExplicit {
			p.set(axisX, n.X.clamp(p.h*n.Aspect))
		}
	}
	return p
}

// measureHug measures a hug container's content extent on one axis:
// children are measured as if the axis were unconstrained and their extents
// summed (stack main axis, grid) or maxed (stack cross axis) together with
// that axis's before/between/after spacing.
func (r *resolver) measureHug(n *Node, a axis) float32 {
	sp := n.Flow.spacing(a)
	var flow []*Node
	for _, c := range n.Children {
		if c.Mode == ModeFlow {
			flow = append(flow, c)
		}
	}
	if len(flow) == 0 {
		return sp.Before + sp.After
	}

	if n.Flow.Direction == GridFlow {
		count := n.Flow.Cols
		if a == axisY {
			count = n.Flow.Rows
			if count == 0 && n.Flow.Cols > 0 {
				count = (len(flow) + n.Flow.Cols - 1) / n.Flow.Cols
			}
		}
		if count <= 0 {
			// Diagnosed during placement; nothing to sum here.
			return sp.Before + sp.After
		}
		// Cells are uniform, so the hugged extent is the largest child
		// extent replicated across the axis's cell count.
		var cell float32
		for _, c := range flow {
			e := c.spec(a).Before + r.measureNode(c, a) + c.spec(a).After
			if e > cell {
				cell = e
			}
		}
		return sp.Before + cell*float32(count) + sp.Between*float32(count-1) + sp.After
	}

	if n.Flow.mainAxis() == a {
		total := sp.Before + sp.After
		for i, c := range flow {
			total += c.spec(a).Before + r.measureNode(c, a) + c.spec(a).After
			if i < len(flow)-1 {
				total += sp.Between
			}
		}
		return total
	}

	var widest float32
	for _, c := range flow {
		e := c.spec(a).Before + r.measureNode(c, a) + c.spec(a).After
		if e > widest {
			widest = e
		}
	}
	return sp.Before + widest + sp.After
}

// measureNode returns a node's intrinsic extent on one axis while measuring
// a hug ancestor. Stretch children have no intrinsic extent and contribute
// their min clamp; percent children cannot resolve against a hugged axis
// and contribute zero with a CircularHugPercent diagnostic.
func (r *resolver) measureNode(n *Node, a axis) float32 {
	s := n.spec(a)
	if !s.Size.valid() {
		// Diagnosed as InvalidSizeSpec during placement.
		return 0
	}
	switch s.Size.Kind {
	case SizeFixed:
		return s.clamp(s.Size.Value)
	case SizePercent:
		if !r.circular[n] {
			r.circular[n] = true
			r.diag(DiagCircularHugPercent, n, "percent size has no basis inside a hug measurement")
		}
		return s.clamp(0)
	}

	// Stretch and hug axes may still be derivable from a fixed cross axis.
	if n.Aspect > 0 {
		o := n.spec(a.other())
		if o.Size.Kind == SizeFixed && o.Size.valid() {
			base := o.clamp(o.Size.Value)
			if a == axisX {
				return s.clamp(base * n.Aspect)
			}
			return s.clamp(base / n.Aspect)
		}
	}
	if s.Size.Kind == SizeHug {
		return s.clamp(r.measureHug(n, a))
	}
	return s.clamp(0)
}

// layoutNode records the node's identifier and scroll offset, then places
// its children: flow children by stack or grid rules, pop-out children
// against the final content rectangle, and finally a stable z-sort for the
// walker.
func (r *resolver) layoutNode(bn *BoundsNode) {
	n := bn.Node
	r.noteNode(bn)
	if len(n.Children) == 0 {
		return
	}

	var flow, popOut []*Node
	for _, c := range n.Children {
		if c.Mode == ModePopOut {
			popOut = append(popOut, c)
		} else {
			flow = append(flow, c)
		}
	}

	var kids []*BoundsNode
	if len(flow) > 0 {
		if n.Flow.Direction == GridFlow {
			kids = r.layoutGrid(bn, flow)
		} else {
			kids = r.layoutStack(bn, flow)
		}
	}
	kids = append(kids, r.layoutPopOut(bn, popOut)...)

	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].Node.Z < kids[j].Node.Z
	})
	bn.Children = kids

	for _, k := range kids {
		r.layoutNode(k)
	}
}

// noteNode registers the node's identifier for lifecycle bookkeeping and
// attaches the snapshot scroll offset to scrolling containers. Nodes that
// scroll, persist, or carry mixins without an identifier get a MissingID
// diagnostic and the request is ignored.
func (r *resolver) noteNode(bn *BoundsNode) {
	n := bn.Node
	if n.ID == "" {
		switch {
		case n.Flow.scrollable():
			r.diag(DiagMissingID, n, "scroll container has no identifier")
		case n.Persist:
			r.diag(DiagMissingID, n, "persist requested without an identifier")
		case len(n.Mixins) > 0:
			r.diag(DiagMissingID, n, "lifecycle mixins without an identifier")
		}
		return
	}
	r.ids.add(n.ID, n)
	if n.Flow.scrollable() {
		bn.ScrollOffset = r.snap.offset(n.ID)
	}
}

// flowItem is the per-child working state of one stack layout.
type flowItem struct {
	node *Node
	p    sizePair
}

// layoutStack places flow children along the container's main axis.
// Fixed, percent, hug and aspect-derived sizes are resolved first; the
// remaining budget is distributed among stretch children by weight.
func (r *resolver) layoutStack(bn *BoundsNode, flow []*Node) []*BoundsNode {
	n := bn.Node
	m := n.Flow.mainAxis()
	c := m.other()
	sp := n.Flow.spacing(m)
	spc := n.Flow.spacing(c)

	items := make([]*flowItem, len(flow))
	budget := bn.Bounds.extent(m) - sp.Before - sp.After
	if len(flow) > 1 {
		budget -= sp.Between * float32(len(flow)-1)
	}
	for i, child := range flow {
		items[i] = &flowItem{node: child, p: r.preferredSize(child, bn.Bounds.W, bn.Bounds.H)}
		budget -= child.spec(m).Before + child.spec(m).After
	}

	remaining := budget
	for _, it := range items {
		if it.p.known(m) {
			remaining -= it.p.get(m)
		}
	}
	r.distribute(items, remaining, m)

	// Cross axis: children default to the container's cross content extent.
	crossAvail := bn.Bounds.extent(c) - spc.Before - spc.After
	for _, it := range items {
		if !it.p.known(c) {
			s := it.node.spec(c)
			it.p.set(c, s.clamp(maxf(crossAvail-s.Before-s.After, 0)))
		}
	}

	out := make([]*BoundsNode, 0, len(items))
	cursor := bn.Bounds.coord(m) + sp.Before
	var crossMax float32
	for i, it := range items {
		sm := it.node.spec(m)
		sc := it.node.spec(c)
		cursor += sm.Before
		out = append(out, &BoundsNode{
			Node: it.node,
			Bounds: makeBounds(m,
				cursor,
				bn.Bounds.coord(c)+spc.Before+sc.Before,
				it.p.get(m),
				it.p.get(c)),
		})
		cursor += it.p.get(m) + sm.After
		if i < len(items)-1 {
			cursor += sp.Between
		}
		if e := sc.Before + it.p.get(c) + sc.After; e > crossMax {
			crossMax = e
		}
	}

	setContent(bn, m, cursor+sp.After-bn.Bounds.coord(m))
	setContent(bn, c, spc.Before+crossMax+spc.After)
	r.debugf("  stack %q: %d flow children, content (%.0f,%.0f)", n.ID, len(items), bn.ContentW, bn.ContentH)
	return out
}

// distribute splits the remaining main-axis budget among stretch children
// proportional to weight. A child whose share violates its min/max clamp is
// fixed at the clamped size and removed from the pool along with its
// contribution; the rest of the budget is then re-split among the still
// unclamped children. Each iteration strictly shrinks the pool, so the loop
// terminates.
func (r *resolver) distribute(items []*flowItem, remaining float32, m axis) {
	if remaining < 0 {
		remaining = 0
	}
	var pool []*flowItem
	for _, it := range items {
		if !it.p.known(m) {
			pool = append(pool, it)
		}
	}
	for len(pool) > 0 {
		var totalWeight float32
		for _, it := range pool {
			totalWeight += it.node.spec(m).Size.weight()
		}
		next := pool[:0:0]
		newRemaining := remaining
		clampedAny := false
		for _, it := range pool {
			s := it.node.spec(m)
			share := remaining * s.Size.weight() / totalWeight
			if s.clamps(share) {
				v := s.clamp(share)
				it.p.set(m, v)
				newRemaining -= v
				clampedAny = true
			} else {
				next = append(next, it)
			}
		}
		if !clampedAny {
			for _, it := range pool {
				it.p.set(m, remaining*it.node.spec(m).Size.weight()/totalWeight)
			}
			return
		}
		remaining = maxf(newRemaining, 0)
		pool = next
	}
}

// layoutGrid places flow children row-major into uniform cells. The cell
// extent on each axis is the container's content extent divided by the cell
// count on that axis.
func (r *resolver) layoutGrid(bn *BoundsNode, flow []*Node) []*BoundsNode {
	n := bn.Node
	f := n.Flow
	cols, rows := f.Cols, f.Rows
	if cols <= 0 || rows < 0 {
		r.diag(DiagInvalidGridDimension, n, fmt.Sprintf("cols=%d rows=%d", cols, rows))
		out := make([]*BoundsNode, 0, len(flow))
		for _, child := range flow {
			out = append(out, &BoundsNode{
				Node:   child,
				Bounds: Bounds{X: bn.Bounds.X + f.SpacingX.Before, Y: bn.Bounds.Y + f.SpacingY.Before},
			})
		}
		return out
	}
	if rows == 0 {
		rows = (len(flow) + cols - 1) / cols
	}
	if rows == 0 {
		rows = 1
	}

	cellW := maxf((bn.Bounds.W-f.SpacingX.Before-f.SpacingX.After-f.SpacingX.Between*float32(cols-1))/float32(cols), 0)
	cellH := maxf((bn.Bounds.H-f.SpacingY.Before-f.SpacingY.After-f.SpacingY.Between*float32(rows-1))/float32(rows), 0)

	out := make([]*BoundsNode, 0, len(flow))
	for i, child := range flow {
		col := i % cols
		row := i / cols
		cellX := bn.Bounds.X + f.SpacingX.Before + float32(col)*(cellW+f.SpacingX.Between)
		cellY := bn.Bounds.Y + f.SpacingY.Before + float32(row)*(cellH+f.SpacingY.Between)

		p := r.preferredSize(child, bn.Bounds.W, bn.Bounds.H)
		w, h := p.w, p.h
		if !p.wKnown {
			w = child.X.clamp(maxf(cellW-child.X.Before-child.X.After, 0))
		}
		if !p.hKnown {
			h = child.Y.clamp(maxf(cellH-child.Y.Before-child.Y.After, 0))
		}
		out = append(out, &BoundsNode{
			Node:   child,
			Bounds: Bounds{X: cellX + child.X.Before, Y: cellY + child.Y.Before, W: w, H: h},
		})
	}

	// Content extents reflect the rows actually placed, which may exceed a
	// declared row count and become scrollable.
	placedRows := (len(flow) + cols - 1) / cols
	bn.ContentW = f.SpacingX.Before + cellW*float32(cols) + f.SpacingX.Between*float32(cols-1) + f.SpacingX.After
	bn.ContentH = f.SpacingY.Before + cellH*float32(placedRows) + f.SpacingY.Between*float32(placedRows-1) + f.SpacingY.After
	return out
}

// layoutPopOut positions absolute children against the parent's final
// content rectangle. Offsets are measured inward from the anchor corner;
// negative offsets deliberately let a child extend outside the parent.
func (r *resolver) layoutPopOut(bn *BoundsNode, kids []*Node) []*BoundsNode {
	if len(kids) == 0 {
		return nil
	}
	content := contentRect(bn.Bounds, bn.Node.Flow)

	out := make([]*BoundsNode, 0, len(kids))
	for _, child := range kids {
		p := r.preferredSize(child, bn.Bounds.W, bn.Bounds.H)
		w, h := p.w, p.h
		if !p.wKnown {
			w = child.X.clamp(maxf(content.W-child.X.Before-child.X.After, 0))
		}
		if !p.hKnown {
			h = child.Y.clamp(maxf(content.H-child.Y.Before-child.Y.After, 0))
		}

		var x, y float32
		switch child.Anchor.sideX() {
		case sideEnd:
			x = content.X + content.W - w - child.X.After - child.Offset.X
		case sideCenter:
			x = content.X + (content.W-w)/2 + child.Offset.X
		default:
			x = content.X + child.X.Before + child.Offset.X
		}
		switch child.Anchor.sideY() {
		case sideEnd:
			y = content.Y + content.H - h - child.Y.After - child.Offset.Y
		case sideCenter:
			y = content.Y + (content.H-h)/2 + child.Offset.Y
		default:
			y = content.Y + child.Y.Before + child.Offset.Y
		}
		out = append(out, &BoundsNode{Node: child, Bounds: Bounds{X: x, Y: y, W: w, H: h}})
	}
	return out
}

// contentRect is the container's bounds inset by its before/after spacing.
func contentRect(b Bounds, f FlowSpec) Bounds {
	return Bounds{
		X: b.X + f.SpacingX.Before,
		Y: b.Y + f.SpacingY.Before,
		W: maxf(b.W-f.SpacingX.Before-f.SpacingX.After, 0),
		H: maxf(b.H-f.SpacingY.Before-f.SpacingY.After, 0),
	}
}

// side is the resolved edge of an anchor on one axis.
type side int

const (
	sideStart side = iota
	sideEnd
	sideCenter
)

func (a Anchor) sideX() side {
	switch a {
	case AnchorTopRight, AnchorBottomRight:
		return sideEnd
	case AnchorCenter:
		return sideCenter
	}
	return sideStart
}

func (a Anchor) sideY() side {
	switch a {
	case AnchorBottomLeft, AnchorBottomRight:
		return sideEnd
	case AnchorCenter:
		return sideCenter
	}
	return sideStart
}

func (b Bounds) coord(a axis) float32 {
	if a == axisX {
		return b.X
	}
	return b.Y
}

func (b Bounds) extent(a axis) float32 {
	if a == axisX {
		return b.W
	}
	return b.H
}

// makeBounds builds a rectangle from main/cross coordinates.
func makeBounds(m axis, posMain, posCross, sizeMain, sizeCross float32) Bounds {
	if m == axisX {
		return Bounds{X: posMain, Y: posCross, W: sizeMain, H: sizeCross}
	}
	return Bounds{X: posCross, Y: posMain, W: sizeCross, H: sizeMain}
}

func setContent(bn *BoundsNode, a axis, v float32) {
	if a == axisX {
		bn.ContentW = v
	} else {
		bn.ContentH = v
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package bento

import (
	"reflect"
	"testing"
)

func TestWalkPreOrderWithZOrder(t *testing.T) {
	back := fixedBox(10, 10).WithID("back").WithZ(0)
	front := fixedBox(10, 10).WithID("front").WithZ(1)
	// Document order is front-first; z-order must flip it.
	root := StackY(front, back).WithSize(Fixed(100), Fixed(100)).WithID("root")

	res := resolveOnce(t, root, 800, 600)

	var order []string
	w := &Walker{Draw: func(n *Node, _ Bounds) { order = append(order, n.ID) }}
	w.Walk(res.Root)

	if want := []string{"root", "back", "front"}; !reflect.DeepEqual(order, want) {
		t.Errorf("draw order = %v, want %v", order, want)
	}
}

func TestWalkScrollTranslatesChildren(t *testing.T) {
	root := scrollList("list", false)
	eng := NewEngine()
	eng.Store().Set("list", Point{Y: 30})
	res := eng.Resolve(root, Point{X: 800, Y: 600})

	bounds := map[string]Bounds{}
	w := &Walker{Draw: func(n *Node, b Bounds) {
		if n.ID != "" {
			bounds[n.ID] = b
		}
	}}
	w.Walk(res.Root)

	// The container itself is not translated.
	if got := bounds["list"]; got.Y != 0 {
		t.Errorf("container Y = %v, want 0", got.Y)
	}
	// Children draw shifted by the negated offset.
	first := res.Root.Children[0]
	var firstDrawn Bounds
	w2 := &Walker{Draw: func(n *Node, b Bounds) {
		if n == first.Node {
			firstDrawn = b
		}
	}}
	w2.Walk(res.Root)
	if want := first.Bounds.Y - 30; firstDrawn.Y != want {
		t.Errorf("first child drawn at Y %v, want %v", firstDrawn.Y, want)
	}
}

func TestWalkClipSingleAxis(t *testing.T) {
	root := StackY(fixedBox(50, 300)).WithSize(Fixed(100), Fixed(200))
	root.Flow.OverflowY = OverflowClip

	res := resolveOnce(t, root, 800, 600)

	var clips []Bounds
	pops := 0
	w := &Walker{
		Draw:     func(*Node, Bounds) {},
		PushClip: func(b Bounds) { clips = append(clips, b) },
		PopClip:  func() { pops++ },
	}
	w.Walk(res.Root)

	if len(clips) != 1 || pops != 1 {
		t.Fatalf("clip push/pop = %d/%d, want 1/1", len(clips), pops)
	}
	clip := clips[0]
	if clip.Y != 0 || clip.H != 200 {
		t.Errorf("clip Y range = (%v,%v), want (0,200)", clip.Y, clip.H)
	}
	// The X axis stays unconstrained.
	if clip.X > -1e6 || clip.W < 1e6 {
		t.Errorf("clip X range = (%v,%v), want unbounded", clip.X, clip.W)
	}
}

func TestWalkScrollbarGeometry(t *testing.T) {
	root := StackY(fixedBox(80, 200), fixedBox(80, 200)).
		WithSize(Fixed(100), Fixed(200)).WithID("list")
	root.Flow.OverflowY = OverflowScroll

	eng := NewEngine()
	eng.Store().Set("list", Point{Y: 100})
	res := eng.Resolve(root, Point{X: 800, Y: 600})

	var calls int
	var gotVertical bool
	var track, thumb Bounds
	w := &Walker{
		Draw: func(*Node, Bounds) {},
		Scrollbar: func(_ *Node, vertical bool, tr, th Bounds) {
			calls++
			gotVertical, track, thumb = vertical, tr, th
		},
	}
	w.Walk(res.Root)

	if calls != 1 || !gotVertical {
		t.Fatalf("scrollbar calls = %d (vertical=%v), want one vertical", calls, gotVertical)
	}
	if want := (Bounds{X: 92, Y: 0, W: 8, H: 200}); track != want {
		t.Errorf("track = %+v, want %+v", track, want)
	}
	// Content 400 in a 200 viewport: thumb is half the track, offset 100 of
	// a 200 range puts it halfway down the remaining travel.
	if thumb.H != 100 {
		t.Errorf("thumb length = %v, want 100", thumb.H)
	}
	if thumb.Y != 50 {
		t.Errorf("thumb position = %v, want 50", thumb.Y)
	}
}

func TestWalkNoScrollbarWhenContentFits(t *testing.T) {
	root := StackY(fixedBox(80, 50)).WithSize(Fixed(100), Fixed(200)).WithID("list")
	root.Flow.OverflowY = OverflowScroll

	res := resolveOnce(t, root, 800, 600)

	calls := 0
	w := &Walker{
		Draw:      func(*Node, Bounds) {},
		Scrollbar: func(*Node, bool, Bounds, Bounds) { calls++ },
	}
	w.Walk(res.Root)
	if calls != 0 {
		t.Errorf("scrollbar fired %d times for fitting content", calls)
	}
}

func TestOverflowShorthand(t *testing.T) {
	both := FlowSpec{}.WithOverflow(OverflowClip)
	if both.OverflowX != OverflowClip || both.OverflowY != OverflowClip {
		t.Errorf("WithOverflow = (%v,%v), want clip on both axes", both.OverflowX, both.OverflowY)
	}

	yOnly := FlowSpec{OverflowY: OverflowScroll}
	if yOnly.OverflowX != OverflowVisible {
		t.Errorf("OverflowX = %v, want the Visible default", yOnly.OverflowX)
	}
}

func TestWalkNilRoot(t *testing.T) {
	w := &Walker{Draw: func(*Node, Bounds) { t.Error("draw fired on nil tree") }}
	w.Walk(nil)
}

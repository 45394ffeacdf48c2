package bento

import (
	"reflect"
	"testing"
)

func TestEngineDefaults(t *testing.T) {
	eng := NewEngine()
	if eng.Store() == nil {
		t.Fatal("engine has no scroll store")
	}
	if eng.Config() == nil {
		t.Fatal("engine has no config")
	}
}

func TestEngineSharedScrollStore(t *testing.T) {
	store := NewScrollStore()
	a := NewEngine(WithScrollStore(store))
	b := NewEngine(WithScrollStore(store))

	if a.Store() != store || b.Store() != store {
		t.Fatal("WithScrollStore not honored")
	}
	store.Set("shared", Point{Y: 7})
	if got := b.Store().Get("shared"); got != (Point{Y: 7}) {
		t.Errorf("shared offset = %+v, want {0 7}", got)
	}
}

func TestEngineWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scrollbar.Thickness = 2
	eng := NewEngine(WithConfig(cfg))
	if eng.Config().Scrollbar.Thickness != 2 {
		t.Errorf("Thickness = %v, want 2", eng.Config().Scrollbar.Thickness)
	}
}

func TestEngineResolveRepeatable(t *testing.T) {
	build := func() *Node {
		return StackY(fixedBox(40, 20), &Node{Y: AxisSpec{Size: Stretch(1)}}).
			WithSize(Fixed(200), Fixed(100))
	}
	eng := NewEngine()
	vp := Point{X: 200, Y: 100}

	tree := build()
	first := eng.Resolve(tree, vp)
	second := eng.Resolve(tree, vp)
	if !reflect.DeepEqual(first, second) {
		t.Error("same tree and viewport produced different bounds trees")
	}
}

func TestEngineNilRoot(t *testing.T) {
	res := NewEngine().Resolve(nil, Point{X: 100, Y: 100})
	if res.Root != nil || len(res.Diags) != 0 {
		t.Errorf("nil root result = %+v, want empty", res)
	}
}

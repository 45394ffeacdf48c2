package bento

// Mixin bundles lifecycle hooks for one node. Multiple mixins per node are
// stored as an ordered list and invoked independently, so hooks cannot
// collide or override one another's effects. Either hook may be nil.
//
// Hooks run synchronously on the layout goroutine; a hook that blocks
// stalls the frame.
type Mixin struct {
	OnMount   func(*Node)
	OnUnmount func(*Node)
}

// passIDs is the ordered set of identifiers observed during one pass,
// collected in document order so lifecycle dispatch is deterministic. The
// first node observed for an id wins; uniqueness within a scope is the
// host's contract.
type passIDs struct {
	order []string
	nodes map[string]*Node
}

func newPassIDs() *passIDs {
	return &passIDs{nodes: make(map[string]*Node)}
}

func (p *passIDs) add(id string, n *Node) {
	if _, ok := p.nodes[id]; ok {
		return
	}
	p.order = append(p.order, id)
	p.nodes[id] = n
}

func (p *passIDs) has(id string) bool {
	_, ok := p.nodes[id]
	return ok
}

// lifecycleState tracks the identifier set of the previous pass, so that a
// pass can be diffed against it: ids appearing fire OnMount, ids
// disappearing fire OnUnmount with the last-known node data (the node is no
// longer in the current tree).
type lifecycleState struct {
	prev *passIDs
}

func newLifecycleState() *lifecycleState {
	return &lifecycleState{prev: newPassIDs()}
}

// dispatch fires mount and unmount hooks for the identifier diff between
// the previous pass and current, drives scroll pinning for mounted nodes,
// marks every current id seen in the store, and garbage-collects. Mount
// hooks run in document order of the current pass, unmount hooks in
// document order of the previous one.
func (l *lifecycleState) dispatch(current *passIDs, store *ScrollStore) {
	for _, id := range current.order {
		if l.prev.has(id) {
			continue
		}
		n := current.nodes[id]
		for _, m := range n.Mixins {
			if m.OnMount != nil {
				m.OnMount(n)
			}
		}
		// Persist pins the id across unmount; the default unpins so an
		// unmounted, unseen entry is collected at the next GC point.
		if n.Persist {
			store.Pin(id)
		} else {
			store.Unpin(id)
		}
	}
	for _, id := range l.prev.order {
		if current.has(id) {
			continue
		}
		n := l.prev.nodes[id]
		for _, m := range n.Mixins {
			if m.OnUnmount != nil {
				m.OnUnmount(n)
			}
		}
	}
	for _, id := range current.order {
		store.MarkSeen(id)
	}
	store.CollectGarbage()
	l.prev = current
}

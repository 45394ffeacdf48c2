package bento

// Engine owns the per-frame layout pass and the state that survives the
// host's tree rebuilds: the scroll store and the lifecycle identifier set.
// One engine serves one tree; the store is injectable so input-handling
// code and several engines can share it.
type Engine struct {
	cfg       *Config
	store     *ScrollStore
	lifecycle *lifecycleState
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine configuration.
func WithConfig(cfg *Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithScrollStore injects a shared scroll store.
func WithScrollStore(s *ScrollStore) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// NewEngine creates an engine with its own scroll store and default
// configuration unless overridden by options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cfg:       DefaultConfig(),
		store:     NewScrollStore(),
		lifecycle: newLifecycleState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the scroll store, for input-handling code to read and drive
// scroll positions.
func (e *Engine) Store() *ScrollStore {
	return e.store
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Resolve runs one full frame pass: it snapshots the scroll store, resolves
// the tree against the viewport, diffs node identifiers against the
// previous pass to fire mount/unmount mixins, and garbage-collects scroll
// state whose container has left the tree.
//
// The tree is treated as immutable for the duration of the pass; the host
// rebuilds it per frame rather than mutating it in place.
func (e *Engine) Resolve(root *Node, viewport Point) *Result {
	res, ids := layoutPass(root, viewport, e.store.Snapshot(), e.cfg)
	e.lifecycle.dispatch(ids, e.store)
	return res
}

// Layout is the pure stage of Resolve: no lifecycle hooks fire and no store
// state changes. For a fixed snapshot it is deterministic and
// side-effect-free; identical inputs produce identical bounds trees.
func (e *Engine) Layout(root *Node, viewport Point, snap ScrollSnapshot) *Result {
	res, _ := layoutPass(root, viewport, snap, e.cfg)
	return res
}

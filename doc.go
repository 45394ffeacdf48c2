// Package bento is a constraint-based box layout engine for 2D pixel space.
//
// A host application rebuilds an immutable Node tree every frame and hands
// it to an Engine together with the viewport size. The engine resolves the
// tree into a bounds tree (position and size per node), consulting a
// ScrollStore for the current scroll offsets of scrollable containers,
// diffing node identifiers against the previous frame to fire mount and
// unmount hooks, and garbage-collecting scroll state whose container has
// left the tree. A Walker then traverses the bounds tree in z-order,
// applying per-axis clip and scroll transforms, and invokes a
// caller-supplied draw callback per node. Actual pixel output, input
// handling and animation live entirely in the host.
//
// Sizing follows a two-pass flexbox-style model: fixed and percent sizes
// resolve top-down, stretch children share the remaining main-axis budget
// by weight with iterative min/max clamp redistribution, and hug containers
// derive their own extent bottom-up from their children. Pop-out children
// leave normal flow and anchor against their parent's content rectangle.
//
// Layout never aborts on a malformed node: the node resolves to zero-size
// bounds and a Diagnostic is attached to the pass result.
package bento

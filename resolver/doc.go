// Package resolver implements the pass-through value-to-node wiring, the
// one place the builder connects a value's producer to a consumer's
// node. It sees through address arithmetic and cast chains — neither
// ever becomes a node. It does not see through nodes still tagged
// dfgraph.Unknown: any value that already has a node, whatever its kind,
// becomes the edge's source.
//
// Every other package that needs to connect a producing value to a node
// calls through here rather than duplicating the unwrapping logic:
// duplicated ad-hoc unwrapping is an anti-pattern this package exists to
// avoid.
package resolver

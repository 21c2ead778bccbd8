// Package csg defines the constructive-solid-geometry operation tree
// produced by the enclosure generators. The tree is pure data: building
// it performs no geometry evaluation. A geometry kernel backend walks
// the tree (see pkg/tessellate) to produce an actual solid and mesh.
package csg

// Package scene defines the database-side representation of evaluated
// material and function graphs.
//
// The package mirrors what the scene database stores after a material has
// been compiled and evaluated: graph-shaped expressions whose nodes reference
// database entities (function calls, material instances, resources) by tag,
// together with the scene type and value systems those nodes are typed in.
//
// The scene type system and the compiler's own type system (package ast) are
// structurally similar but independently defined. They are deliberately kept
// separate; package astbuild owns the only translation boundary between them.
//
// # Structure
//
//   - Type / Value: tagged-variant hierarchies for scene types and constants
//   - Expr: graph expression nodes (constants, calls, parameter references)
//   - Transaction: read-only, tag-keyed access to stored entities
//   - MemDB: an in-memory Transaction for tests and in-process pipelines
package scene

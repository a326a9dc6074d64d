// Package astbuild reconstructs source-level syntax trees from evaluated
// material and function graphs stored in the scene database.
//
// The Builder walks a graph expression (package scene) and produces the
// equivalent AST expression (package ast), fully qualified, ready for the
// front end to re-parse and re-typecheck. Along the way it:
//
//   - bridges the scene type system to the compiler's type system
//   - reconstructs surface syntax (operators, ternaries, field and index
//     access, array constructors) from the flattened call representation
//   - migrates calls recorded against older intrinsic signatures to the
//     current language version
//   - materializes constants, resolving external resources through the
//     database and falling back to tagged values with a content hash when
//     no backing file exists
//
// A Builder is bound to one target module and one positional-argument
// context. It is not safe for concurrent use; concurrent builds need
// independent builders bound to separate target modules.
//
// Transform methods never return nil. A malformed input graph produces an
// *ast.Invalid sentinel after a logged diagnostic, so the overall traversal
// always yields a structurally complete tree.
package astbuild

// Package ast defines the source-syntax-level representation of the
// shading language, as the front end expects it for (re)compilation.
//
// Nodes are created through per-module factories (names, values, types,
// expressions) that are owned by a Module. Everything a factory creates is
// owned by that module for the module's lifetime; holders of factory
// references must not outlive it. The type factory deduplicates structural
// types, so identical vector or matrix types compare equal by pointer.
//
// The package contains only the node set the graph-to-AST builder emits:
// names, literals, references, operators and calls. Declarations,
// statements and the rest of the surface grammar belong to the front end.
package ast

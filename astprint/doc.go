// Package astprint renders AST expressions back to shading-language source
// text.
//
// The output is meant for module export, diagnostics and golden tests; it is
// valid source for every well-formed tree, with defensive parentheses around
// operator expressions so the rendering never depends on precedence context.
package astprint

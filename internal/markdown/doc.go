// Package markdown implements document discovery and parsing for the audit
// pipeline: filesystem walking, frontmatter extraction, goldmark rendering,
// and AST inspection into the structural inventory rules operate on.
package markdown

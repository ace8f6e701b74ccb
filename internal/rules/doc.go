// Package rules implements the corpus integrity checks: link and image
// reference resolution, heading structure, code fence balance, index
// coverage, and frontmatter schema validation. Rules are registered in a
// Registry so runtime configuration can toggle them by id.
package rules

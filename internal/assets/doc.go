// Package assets provides the embedded starter-file template bundles.
//
// Each supported language has a bundle: an ordered list of output paths
// paired with embedded template names. Templates are rendered by the root
// package with assignment metadata (name, short description, due date,
// slug). Embedding keeps generation deterministic and the binary
// self-contained.
package assets

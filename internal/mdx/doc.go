// Package mdx provides filesystem-backed loading, front-matter parsing, body
// rendering, and store synchronisation for the MDX article corpus.
package mdx

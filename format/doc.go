// Package format enumerates the document formats the tooling reads and
// writes.
package format

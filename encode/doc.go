// Package encode renders IR nodes as indented, optionally colorized JSON
// or as YAML, for terminal display.
package encode

// Package template defines the template engine seam used by page-oriented
// renderers. The gotemplate subpackage builds the go-template engine behind
// it.
package template

// Package document owns the contract and quotation templates and the token
// substitution that turns a template plus a model.FactSet into a rendered
// document body.
//
// Templates are versioned assets: the embedded manifest names each template,
// its version and its file, and the store records a sha256 of every body so
// the HTML, text and PDF outputs can be traced back to the exact template
// they were produced from.
package document

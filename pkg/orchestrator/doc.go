// Package orchestrator wires template lookup, fact resolution, review and
// rendering into a single entry point. One resolved FactSet feeds every
// output format of a document.
package orchestrator

// Package model defines the source records a document is generated from.
//
// Every record is optional and every field may be empty: the records mirror
// what the request, quotation and contract screens persist, including a
// free-form additional data bag whose shape is not fixed. Fact resolution
// treats a zero value exactly like a missing one.
package model

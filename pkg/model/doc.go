// Package model defines the form model consumed by the evaluation component
// and its renderer: a flat list of fields with labels, formats, and required
// flags, typically derived from the embedded intake schema.
package model

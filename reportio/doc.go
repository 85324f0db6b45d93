// Package reportio writes a panacus.Result out as tab-separated text via
// encoding/csv. It is deliberately minimal: HTML/visualization rendering
// stays out of scope, this package only ever emits flat TSV tables.
package reportio

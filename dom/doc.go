// Package dom declares the host capabilities the editable widget consumes:
// an editable element with content, caret and command access, and an event
// target with listener registration.
//
// Browser-backed hosts and test doubles implement these interfaces; package
// memdom provides an in-memory markup implementation.
package dom

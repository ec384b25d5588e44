// Package sink provides the low-level output primitives the code generator
// writes through: an append-only buffer with line/column tracking and a
// writer stack, plus host string-literal escaping.
//
// The writer stack mirrors the push-writer/pop-writer protocol that
// generated code uses for deferred attribute values: Push makes a nested
// accumulator current, Pop returns its contents and restores the previous
// target.
package sink

// Package ir defines the intermediate representation of a parsed sable
// template.
//
// # Overview
//
// A template mixes markup with host-language expressions and statements. The
// parser (a separate component) produces a tree of ir.Node values; the
// codegen package lowers that tree to host source text. The IR is immutable
// input to lowering: no pass mutates a node, and the tree is owned by
// whoever built it.
//
// # Node Structure
//
// Node is a recursive tagged union. The Kind field selects the variant:
//
//   - Document: ordered container of top-level nodes
//   - Checksum: integrity pragma material (file name, guid, hash)
//   - UsingDirective: verbatim import/using line
//   - Expression: host-language expression whose value is written to output
//   - Statement: host-language statement emitted verbatim
//   - HtmlContent: literal markup run
//   - HtmlAttribute: composed/conditional attribute with value pieces
//   - HtmlAttributeValue: literal attribute value piece
//   - ExpressionAttributeValue: computed attribute value piece
//   - StatementAttributeValue: deferred (code block) attribute value piece
//   - Token: leaf carrying literal text plus a Lang flag
//   - Extension: opaque node delegated to an external renderer
//
// Children of Expression, Statement and attribute-value nodes are always
// Tokens or Extension nodes.
//
// # Source Spans
//
// Nodes optionally carry a SourceSpan (file, offset, length, line, column)
// which lowering uses to emit debug-mapping pragmas. A nil Source means the
// node has no original coordinates and is lowered unmapped.
//
// # JSON
//
// Trees serialize to and from JSON with ToJSON/FromJSON so that parser
// front ends in other processes can hand trees to the sablec tool.
//
// # Thread Safety
//
// Node trees are plain data and safe for concurrent reads; they must not be
// mutated while a lowering pass reads them.
package ir

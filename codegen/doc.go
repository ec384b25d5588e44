// Package codegen lowers a parsed sable template IR tree to host source
// text.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := codegen.Generate(root, &buf)
//
//	// with overrides
//	err := codegen.Generate(root, &buf,
//	    codegen.WithChunkLimit(256),
//	    codegen.WithPrimitives(codegen.Primitives{WriteExpression: "Emit"}),
//	)
//
// The pass is a single-threaded, depth-first walk: each node kind has one
// lowering rule, literal markup is chunked into bounded write-literal
// calls, expressions and statements become calls against the configured
// primitives, and composed attributes follow a begin/value/end protocol.
// Nodes carrying source spans are bracketed with #line mapping pragmas so
// runtime errors in the generated text can be traced back to template
// coordinates.
//
// Output is deterministic: the same tree and options produce byte-identical
// text.
//
// # Related Packages
//
//   - github.com/sable-lang/sable/ir - IR node types
//   - github.com/sable-lang/sable/sink - output buffer and escaping
package codegen

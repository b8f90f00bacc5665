// Package render turns assembled chart specifications into image bytes.
//
// All visual execution happens outside the process: a specification is
// handed to a rendering engine that runs the grammar and returns the
// finished image. Two engines are provided:
//
//   - [VLConvert] shells out to the vl-convert command-line tool
//   - [Service] posts the specification to a remote rendering service
//
// Both implement [Engine], so the pipeline and server are indifferent
// to which one is configured.
//
// The [dot] subpackage renders hierarchy node graphs as node-link
// diagrams via Graphviz for debugging tree-family inputs.
package render

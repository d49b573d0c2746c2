// Package crate ties the schema registry, object resolver, graph builder,
// and JSON-LD codec into one build session. A Crate collects type
// definitions, metadata entries, and file descriptors, then serializes them
// as an RO-Crate style JSON-LD document with the conventional root Dataset
// and metadata descriptor nodes.
package crate

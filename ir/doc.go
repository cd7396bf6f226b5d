// Package ir provides the intermediate representation (IR) for JSON
// documents.
//
// # Overview
//
// The IR package defines the core data structures for representing JSON
// documents as a tree of nodes. All documents (whether parsed from text,
// created programmatically, or produced by filtering) are represented as
// ir.Node trees.
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type. Each node maintains parent-child
// relationships, allowing navigation through the tree structure, and carries
// no position information from input documents, making it purely semantic.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
package ir

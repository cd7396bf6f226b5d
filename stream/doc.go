// Package stream provides the streaming serialization surface squiggly
// filters hook into.
//
// The package walks Go object graphs depth-first, writing JSON through a
// Generator that tracks an output nesting context chain. A PropertyFilter
// installed on the Serializer is called once per object field and decides
// whether the field is written unchanged, written converted (renamed or
// recomputed), or omitted.
//
// # Example
//
//	gen := stream.NewJSONGenerator(w)
//	ser := stream.NewSerializer(filter)
//	if err := ser.Serialize(value, gen); err != nil {
//	    return err
//	}
//	if err := gen.Flush(); err != nil {
//	    return err
//	}
//
// The context chain is queryable from within a filter:
//
//	sc := gen.OutputContext()     // innermost frame
//	name, ok := sc.CurrentName()  // current field name, if any
//	val := sc.CurrentValue()      // value being serialized at this frame
//	sc = sc.Parent()              // walk outward; nil at document root
package stream

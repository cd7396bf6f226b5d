// Package squiggly filters and transforms object graphs with squiggly
// syntax while they are serialized to JSON.
//
// Here are some examples of squiggly syntax:
//
//	// grab the id and name fields
//	id,name
//
//	// grab the id and nested first name and last name from the user field
//	id,user{firstName,lastName}
//
//	// grab the full object graph
//	**
//
//	// grab all fields of the current object, but just the base fields of
//	// nested objects
//	*
//
//	// grab fields starting with eco
//	eco*
//
//	// grab fields ending with Time
//	*Time
//
//	// grab the firstName field of the nested employee and manager objects
//	employee{firstName},manager{firstName}
//	employee|manager{firstName}
//
//	// drop the password field, keep everything else
//	**,-password
//
//	// rename and transform while serializing
//	name:snake().upper()
//
// # Usage
//
//	sq := squiggly.New(squiggly.WithFilter("id,user{firstName}"))
//	out, err := sq.Marshal(value)
//
// Fields may declare view membership with struct tags:
//
//	Secret string `json:"secret" squiggly:"views=internal"`
//
// A filter term naming a view matches every field tagged with that view;
// untagged fields belong to the implicit "base" view.
package squiggly

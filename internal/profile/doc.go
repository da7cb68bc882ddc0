// Package profile loads binding profiles: YAML files that pin casts,
// transformers, pipes and validation rules to the fields of a named class.
//
// Example:
//
//	version: "1"
//	profiles:
//	  - name: user
//	    pipes: [blank_strings_to_null, cast_primitives]
//	    fields:
//	      - name: email
//	        cast: [trim, lowercase]
//	        transform: lowercase
//	        rules: [ascii]
//	      - name: balance
//	        cast: {round: {precision: 2}}
//	        transform: "number_format:precision=2"
//	        rules: "decimal:0,2"
//
// A unit reference is either a spec string ("name" or
// "name:key=value;key=value") or a single-key map from the unit name to its
// parameters. Cast and transform chains run in the order written.
package profile

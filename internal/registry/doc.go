// Package registry builds casts, transformers and pipes by name.
//
// A unit is described by a spec string of the form
//
//	name
//	name:key=value;key=value
//
// or by a name plus a parameter map. Names are matched leniently, so
// "number_format", "NumberFormat" and "number-format" select the same unit.
// Unknown names produce an *UnknownError carrying "did you mean" suggestions.
package registry

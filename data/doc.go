// Package data defines the extension points a data-object framework calls
// while constructing and serializing typed objects.
//
// Three kinds of unit plug into those extension points:
//   - Cast: converts a raw input value when it is assigned to a typed field
//   - Transformer: converts a typed value when the object is serialized outward
//   - Pipe: rewrites the raw property map of a whole object before validation
//
// Units are stateless. A constructor captures configuration; the single
// method receives one value plus the Field it belongs to and returns one value.
// Values a unit does not handle pass through unchanged. Malformed input is
// reported with an error wrapping ErrMalformedInput.
package data

// Package transformer provides the transformers a data-object framework
// applies when a typed value is serialized outward.
//
// Transformers mirror the casts in package cast: a constructor captures
// configuration, Transform converts one value, and values of unhandled types
// pass through unchanged.
package transformer

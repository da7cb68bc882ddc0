// Package cast provides the casts a data-object framework applies when a raw
// input value is assigned to a typed field.
//
// Every cast is a small value type: the constructor captures configuration
// and Cast converts one value. A cast passes through values of types it does
// not handle, including nil, and reports malformed input with an error
// wrapping data.ErrMalformedInput.
package cast

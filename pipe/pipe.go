package pipe

import "data-casts/data"

var (
	_ data.Pipe = CastPrimitives{}
	_ data.Pipe = BlankStringsToNull{}
)

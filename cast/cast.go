package cast

import "data-casts/data"

var (
	_ data.Cast = Lowercase{}
	_ data.Cast = Uppercase{}
	_ data.Cast = Trim{}
	_ data.Cast = NullIfBlank{}
	_ data.Cast = Default{}
	_ data.Cast = Truncate{}
	_ data.Cast = Base64Decode{}
	_ data.Cast = Boolean{}
	_ data.Cast = Explode{}
	_ data.Cast = Round{}
	_ data.Cast = Integer{}
	_ data.Cast = Float{}
	_ data.Cast = JSONDecode{}
	_ data.Cast = DateTime{}
	_ data.Cast = Duration{}
	_ data.Cast = UUID{}
	_ data.Cast = ASCII{}
	_ data.Cast = Slug{}
	_ data.Cast = Case{}
	_ data.Cast = Enum{}
)

package transformer

import "data-casts/data"

var (
	_ data.Transformer = Base64Encode{}
	_ data.Transformer = Implode{}
	_ data.Transformer = Lowercase{}
	_ data.Transformer = Uppercase{}
	_ data.Transformer = NumberFormat{}
	_ data.Transformer = Round{}
	_ data.Transformer = DateFormat{}
	_ data.Transformer = DurationFormat{}
	_ data.Transformer = JSONEncode{}
	_ data.Transformer = BooleanWord{}
	_ data.Transformer = HumanBytes{}
	_ data.Transformer = Stringer{}
	_ data.Transformer = Case{}
	_ data.Transformer = Truncate{}
)

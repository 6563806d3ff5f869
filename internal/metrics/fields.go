package metrics

// Attribute keys attached to instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"   // calculation kind: damage, matchup, recommend, simulate
	AttrCache    = "cache"  // cache namespace: species, move
	AttrResult   = "result" // hit or miss
)

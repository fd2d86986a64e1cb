package boards

// Variants compiled into every build, keyed by board name. Build tags only
// decide which one is Selected.
var variants = []*BoardConfig{&V3}

// Lookup returns a copy of the named variant.
func Lookup(name string) (BoardConfig, bool) {
	for _, v := range variants {
		if v.Name == name {
			return clone(*v), true
		}
	}
	return BoardConfig{}, false
}

// Names lists the compiled-in variants in declaration order.
func Names() []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, v.Name)
	}
	return out
}

func clone(c BoardConfig) BoardConfig {
	if c.Platform.Touch != nil {
		c.Platform.Touch = append([]TouchChannel(nil), c.Platform.Touch...)
	}
	return c
}

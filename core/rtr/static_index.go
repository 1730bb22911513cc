package rtr

// staticIndex maps a normalized literal path to the position of the first
// purely literal route registered for it.
// Routes with params that were registered earlier still take precedence,
// so a hit only bounds how far the table has to scan.
type staticIndex struct {
	paths map[string]int
}

func newStaticIndex() *staticIndex {
	return &staticIndex{paths: make(map[string]int, 16)}
}

// add records pos for path unless an earlier route already owns it.
func (si *staticIndex) add(path string, pos int) {
	path = normalizePath(path)
	if _, exists := si.paths[path]; exists {
		return
	}
	si.paths[path] = pos
}

// lookup returns the position of the first literal route for path.
func (si *staticIndex) lookup(path string) (int, bool) {
	pos, ok := si.paths[normalizePath(path)]
	return pos, ok
}

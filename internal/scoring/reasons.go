package scoring

// MaxReasons caps the justification phrases kept per result.
const MaxReasons = 3

// reasonList collects reason keys in first-seen order, urgent keys ahead
// of ordinary ones.
type reasonList struct {
	urgent   []string
	ordinary []string
	seen     map[string]bool
}

func newReasonList() *reasonList {
	return &reasonList{seen: make(map[string]bool)}
}

func (l *reasonList) add(key string, urgent bool) {
	if key == "" || l.seen[key] {
		return
	}
	l.seen[key] = true
	if urgent {
		l.urgent = append(l.urgent, key)
	} else {
		l.ordinary = append(l.ordinary, key)
	}
}

// keys returns at most limit keys.
func (l *reasonList) keys(limit int) []string {
	out := make([]string, 0, limit)
	for _, group := range [][]string{l.urgent, l.ordinary} {
		for _, k := range group {
			if len(out) == limit {
				return out
			}
			out = append(out, k)
		}
	}
	return out
}

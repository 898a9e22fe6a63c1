package twmerge

import (
	"strings"
	"sync"
)

// Config customises a Merger.
type Config struct {
	// Prefix is the Tailwind prefix option (e.g. "tw-"). Classes without the
	// prefix are treated as unknown and never conflict.
	Prefix string
	// CacheSize bounds the LRU cache of merge results. Zero disables caching.
	CacheSize int
	// ExtraGroups adds complete class names to existing or new groups, for
	// theme extensions such as {"font-size": {"text-huge"}}.
	ExtraGroups map[string][]string
	// ExtraConflicts adds conflicting groups on top of the defaults.
	ExtraConflicts map[string][]string
}

// DefaultCacheSize is the cache size used by the package level Merge.
const DefaultCacheSize = 500

// Merger resolves Tailwind utility conflicts.
type Merger struct {
	prefix           string
	exact            map[string]string
	rules            map[string][]rule
	conflicts        map[string][]string
	postfixConflicts map[string][]string
	cache            *lruCache
}

// New creates a Merger from cfg.
func New(cfg Config) *Merger {
	m := &Merger{
		prefix:           cfg.Prefix,
		exact:            defaultExact(),
		rules:            defaultRules(),
		conflicts:        defaultConflicts(),
		postfixConflicts: defaultPostfixConflicts(),
	}

	for groupID, classes := range cfg.ExtraGroups {
		for _, c := range classes {
			m.exact[c] = groupID
		}
	}
	for groupID, groups := range cfg.ExtraConflicts {
		m.conflicts[groupID] = append(m.conflicts[groupID], groups...)
	}

	if cfg.CacheSize > 0 {
		m.cache = newLRUCache(cfg.CacheSize)
	}

	return m
}

var (
	defaultMerger     *Merger
	defaultMergerOnce sync.Once
)

// Default returns the shared Merger used by Merge.
func Default() *Merger {
	defaultMergerOnce.Do(func() {
		defaultMerger = New(Config{CacheSize: DefaultCacheSize})
	})
	return defaultMerger
}

// Merge joins the class lists and removes classes overridden by a later class
// of the same group. Unknown classes pass through untouched.
func Merge(classes ...string) string {
	return Default().Merge(classes...)
}

// Join normalises whitespace and concatenates non-empty class lists without
// resolving conflicts.
func Join(classes ...string) string {
	var b strings.Builder
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f)
		}
	}
	return b.String()
}

// Merge is the Merger form of the package level Merge.
func (m *Merger) Merge(classes ...string) string {
	input := Join(classes...)
	if input == "" {
		return ""
	}

	if m.cache != nil {
		if out, ok := m.cache.get(input); ok {
			return out
		}
	}

	out := m.merge(input)

	if m.cache != nil {
		m.cache.put(input, out)
	}
	return out
}

func (m *Merger) merge(input string) string {
	tokens := strings.Fields(input)
	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		pc := parseClass(token)

		groupID, hasPostfix, ok := m.resolve(pc)
		if !ok {
			key := "raw:" + token
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, token)
			continue
		}

		variant := modifierKey(pc.modifiers)
		if pc.important {
			variant += "!"
		}

		key := variant + "|" + groupID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		for _, other := range m.conflicts[groupID] {
			seen[variant+"|"+other] = struct{}{}
		}
		if hasPostfix {
			for _, other := range m.postfixConflicts[groupID] {
				seen[variant+"|"+other] = struct{}{}
			}
		}

		kept = append(kept, token)
	}

	// kept was built right to left.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}

	return strings.Join(kept, " ")
}

// resolve finds the class group of a parsed class. When the class carries a
// postfix modifier the base without the postfix is tried first, then the full
// base (w-1/2 is a fraction, not a postfix).
func (m *Merger) resolve(pc parsedClass) (groupID string, hasPostfix bool, ok bool) {
	base := pc.base

	if m.prefix != "" {
		if !strings.HasPrefix(base, m.prefix) {
			// A negative value may put the dash before the prefix.
			if !strings.HasPrefix(base, "-"+m.prefix) {
				return "", false, false
			}
			base = "-" + base[len(m.prefix)+1:]
		} else {
			base = base[len(m.prefix):]
		}
	}

	postfixPos := pc.postfixPos - (len(pc.base) - len(base))
	if postfixPos > 0 && postfixPos < len(base) {
		if id, found := m.groupOf(base[:postfixPos]); found {
			return id, true, true
		}
	}

	id, found := m.groupOf(base)
	return id, false, found
}

// groupOf maps a utility (without modifiers, prefix or postfix) to a group.
func (m *Merger) groupOf(utility string) (string, bool) {
	if utility == "" {
		return "", false
	}

	if id, ok := m.exact[utility]; ok {
		return id, true
	}

	// Arbitrary property: [mask-type:alpha]
	if strings.HasPrefix(utility, "[") && strings.HasSuffix(utility, "]") {
		prop, _, ok := strings.Cut(utility[1:len(utility)-1], ":")
		if ok && prop != "" {
			return "arbitrary.." + prop, true
		}
		return "", false
	}

	utility = strings.TrimPrefix(utility, "-")

	if id, ok := m.exact[utility]; ok {
		return id, true
	}

	for _, c := range candidates(utility) {
		rules, ok := m.rules[c[0]]
		if !ok {
			continue
		}
		for _, r := range rules {
			if r.valid(c[1]) {
				return r.group, true
			}
		}
	}

	return "", false
}

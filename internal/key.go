package internal

// keyKind tags a Key so that the three sentinel keys can never collide with
// a user-supplied string key, regardless of its contents.
type keyKind uint8

const (
	kindString keyKind = iota
	kindSentinel
)

// Key is the tagged property-key type described in spec.md §9: either a
// plain string key (the only shape user data uses, since reactive
// containers here are map[string]any/[]any/generic collections rather than
// arbitrary objects with symbol keys) or one of the three fixed sentinels.
type Key struct {
	kind keyKind
	name string // only meaningful for kindSentinel, used for String()/debugging
	str  string
}

// StringKey builds a Key for an ordinary user-supplied string property or
// map key.
func StringKey(s string) Key {
	return Key{kind: kindString, str: s}
}

// sentinel keys. Each carries a unique name so two calls to newSentinel can
// never produce equal values, and no StringKey can ever equal one of them
// since kindSentinel != kindString.
func newSentinel(name string) Key {
	return Key{kind: kindSentinel, name: name}
}

var (
	// IterateKey is tracked by operations that observe the shape of a
	// container (ownKeys on an object, size/forEach/values/entries on a
	// collection) and triggered by ADD/DELETE/CLEAR, and on a Map also by a
	// value change on an existing key.
	IterateKey = newSentinel("iterate")

	// MapKeyIterateKey is tracked specifically by Map.Keys(), which is
	// insensitive to value changes on existing keys (unlike IterateKey).
	MapKeyIterateKey = newSentinel("map-key-iterate")

	// ArrayLength is tracked by Array.Len() and by operations whose result
	// depends on length, and triggered whenever a mutation changes length.
	ArrayLength = newSentinel("array-length")
)

func (k Key) String() string {
	if k.kind == kindSentinel {
		return "<" + k.name + ">"
	}
	return k.str
}

// TriggerType classifies a trigger call the way spec.md §4.1 does.
type TriggerType uint8

const (
	TriggerAdd TriggerType = iota
	TriggerSet
	TriggerDelete
	TriggerClear
)

package memtoken

// Prefix names every intrinsic this package mints, following the scheme
// "<prefix>.load.<type>", "<prefix>.store.<type>", "<prefix>.entry.token".
const Prefix = "rt"

// Cache is the per-module intrinsic-declaration table. It is append-only
// and safe to reuse across every function in a module so repeated
// Transform calls for the same element type agree on its name — the only
// state that crosses function boundaries in the whole pipeline.
type Cache struct {
	load  map[string]string
	store map[string]string
}

// NewCache creates an empty, per-module intrinsic cache.
func NewCache() *Cache {
	return &Cache{load: make(map[string]string), store: make(map[string]string)}
}

// LoadName returns the deterministic name of the load intrinsic for
// element type typ, registering it on first use.
func (c *Cache) LoadName(typ string) string {
	if n, ok := c.load[typ]; ok {
		return n
	}
	n := Prefix + ".load." + typ
	c.load[typ] = n
	return n
}

// StoreName returns the deterministic name of the store intrinsic for
// element type typ, registering it on first use.
func (c *Cache) StoreName(typ string) string {
	if n, ok := c.store[typ]; ok {
		return n
	}
	n := Prefix + ".store." + typ
	c.store[typ] = n
	return n
}

// EntryTokenName returns the deterministic name of the entry-activation
// token intrinsic. Unlike load/store it takes no type parameter — there
// is exactly one per module.
func (c *Cache) EntryTokenName() string { return Prefix + ".entry.token" }

// IsLoad reports whether callee names this cache's load intrinsic family,
// for any element type. The builder's Phase A uses this to re-tag a Call
// node as Load.
func (c *Cache) IsLoad(callee string) bool { return hasPrefix(callee, Prefix+".load.") }

// IsStore reports whether callee names this cache's store intrinsic
// family, for any element type.
func (c *Cache) IsStore(callee string) bool { return hasPrefix(callee, Prefix+".store.") }

// IsEntryToken reports whether callee is the entry-token intrinsic.
func (c *Cache) IsEntryToken(callee string) bool { return callee == c.EntryTokenName() }

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

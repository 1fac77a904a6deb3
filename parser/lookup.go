package parser

import "fmt"

// LookupEntry binds a flag spelling to the canonical argument id it fills and
// to the number of values it consumes.
type LookupEntry struct {
	Flag   Flag
	ID     string
	AtMost AtMost
}

// LookupTable maps flag identities to argument metadata. It is built once,
// never mutated, and can be shared by any number of concurrent parses.
//
// Lookup is a linear scan: tables are expected to hold tens of entries.
type LookupTable struct {
	entries []LookupEntry
}

// NewLookupTable returns a table over entries. The slice is retained, not
// copied, so it must not be modified afterwards.
func NewLookupTable(entries ...LookupEntry) LookupTable {
	return LookupTable{entries: entries}
}

// MetadataOf returns the canonical id and cardinality registered for flag.
func (t *LookupTable) MetadataOf(flag Flag) (id string, atMost AtMost, ok bool) {
	for i := range t.entries {
		if t.entries[i].Flag == flag {
			return t.entries[i].ID, t.entries[i].AtMost, true
		}
	}
	return "", Zero, false
}

// Has reports whether flag is defined in the table.
func (t *LookupTable) Has(flag Flag) bool {
	_, _, ok := t.MetadataOf(flag)
	return ok
}

// Len returns the number of entries.
func (t *LookupTable) Len() int { return len(t.entries) }

// Entries exposes the table entries in declaration order. Callers must not
// modify the returned slice.
func (t *LookupTable) Entries() []LookupEntry { return t.entries }

// Validate reports the first flag spelling that appears twice. Tables built by
// hand should be validated once at startup.
func (t *LookupTable) Validate() error {
	for i := range t.entries {
		if t.entries[i].Flag.Kind != FlagShort && t.entries[i].Flag.Kind != FlagLong {
			return fmt.Errorf("lookup entry %q: invalid flag kind", t.entries[i].ID)
		}
		for j := 0; j < i; j++ {
			if t.entries[j].Flag == t.entries[i].Flag {
				return fmt.Errorf("flag %s is defined for both %q and %q",
					t.entries[i].Flag, t.entries[j].ID, t.entries[i].ID)
			}
		}
	}
	return nil
}

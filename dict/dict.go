// Package dict implements the SKK dictionary layer: candidate lookup,
// user-dictionary registration with most-recently-used ordering, and
// purge. It has no dependency on the skk package; the engine talks to it
// only through the Dictionary interface.
package dict

import (
	"errors"
	"sync"
)

// ErrEmptyRegistration is returned by Register when asked to store a
// candidate with no text, which would corrupt later lookups.
var ErrEmptyRegistration = errors.New("dict: cannot register an empty candidate")

// ErrNotFound is returned by Purge when the candidate is not present for
// the given key.
var ErrNotFound = errors.New("dict: candidate not found")

// Candidate is one conversion result for a midashi key. Okuri kana for
// okuri-ari entries is carried by the caller (skk.Context), not stored
// here: the same candidate text can be registered under several okuri
// readings of the same stem.
type Candidate struct {
	Text       string
	Annotation string
}

// Dictionary is the lookup/registration surface the conversion engine
// needs. A key is the midashi reading: kana for okuri-nasi entries, or
// kana+okuriHead (e.g. "はz") for okuri-ari entries, matching spec.md's
// C4 Dictionary contract.
type Dictionary interface {
	// Lookup returns the candidates for key in preference order (most
	// recently selected first), and whether any were found at all.
	Lookup(key string) ([]Candidate, bool)
	// Register adds cand as the new most-preferred candidate for key,
	// creating the entry if it didn't exist. Registering a candidate
	// that already exists for key just promotes it.
	Register(key string, cand Candidate) error
	// Purge removes cand from key's candidate list (the "X" command:
	// the user is telling the dictionary a candidate is wrong).
	Purge(key string, cand Candidate) error
	// Complete returns every known key with the given prefix, for
	// Tab-driven midashi completion.
	Complete(prefix string) []string
}

// UserDict is an in-memory Dictionary with most-recently-used candidate
// ordering per key, as the real SKK user dictionary behaves: selecting a
// candidate promotes it to the front so it's offered first next time.
type UserDict struct {
	mu      sync.RWMutex
	entries map[string][]Candidate
}

func NewUserDict() *UserDict {
	return &UserDict{entries: make(map[string][]Candidate)}
}

func (d *UserDict) Lookup(key string) ([]Candidate, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cands, ok := d.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]Candidate, len(cands))
	copy(out, cands)
	return out, true
}

func (d *UserDict) Register(key string, cand Candidate) error {
	if cand.Text == "" {
		return ErrEmptyRegistration
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.promoteLocked(key, cand)
	return nil
}

// Select records that cand was chosen for key, promoting it to the front
// of the candidate list the way Register does, but without Register's
// empty-text check. It is not part of the Dictionary interface; the skk
// engine promotes a committed candidate through Register.
func (d *UserDict) Select(key string, cand Candidate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.promoteLocked(key, cand)
}

func (d *UserDict) promoteLocked(key string, cand Candidate) {
	cands := d.entries[key]
	filtered := cands[:0:0]
	for _, c := range cands {
		if c.Text != cand.Text {
			filtered = append(filtered, c)
		}
	}
	d.entries[key] = append([]Candidate{cand}, filtered...)
}

func (d *UserDict) Purge(key string, cand Candidate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cands, ok := d.entries[key]
	if !ok {
		return ErrNotFound
	}
	idx := -1
	for i, c := range cands {
		if c.Text == cand.Text {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	cands = append(cands[:idx], cands[idx+1:]...)
	if len(cands) == 0 {
		delete(d.entries, key)
	} else {
		d.entries[key] = cands
	}
	return nil
}

func (d *UserDict) Complete(prefix string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for k := range d.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out
}

// ChainDictionary looks candidates up across several dictionaries in
// order (e.g. a user dictionary first, then a read-only system
// dictionary), merging results. Registration is delegated to the first
// dictionary in the chain, matching the usual SKK convention that new
// words go to the user jisyo. Purge is applied to every dictionary in the
// chain, so a purged candidate is not offered again by a later one.
type ChainDictionary struct {
	Dicts []Dictionary
}

func NewChainDictionary(dicts ...Dictionary) *ChainDictionary {
	return &ChainDictionary{Dicts: dicts}
}

func (c *ChainDictionary) Lookup(key string) ([]Candidate, bool) {
	var out []Candidate
	seen := make(map[string]bool)
	found := false
	for _, d := range c.Dicts {
		cands, ok := d.Lookup(key)
		if !ok {
			continue
		}
		found = true
		for _, cand := range cands {
			if !seen[cand.Text] {
				seen[cand.Text] = true
				out = append(out, cand)
			}
		}
	}
	return out, found
}

func (c *ChainDictionary) Register(key string, cand Candidate) error {
	if len(c.Dicts) == 0 {
		return ErrNotFound
	}
	return c.Dicts[0].Register(key, cand)
}

func (c *ChainDictionary) Purge(key string, cand Candidate) error {
	var lastErr error
	purged := false
	for _, d := range c.Dicts {
		if err := d.Purge(key, cand); err == nil {
			purged = true
		} else {
			lastErr = err
		}
	}
	if purged {
		return nil
	}
	return lastErr
}

func (c *ChainDictionary) Complete(prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range c.Dicts {
		for _, k := range d.Complete(prefix) {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

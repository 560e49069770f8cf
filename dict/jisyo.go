package dict

import (
	"os"

	"gopkg.in/yaml.v3"
)

// jisyoFile is the on-disk shape of a FileBackedUserDict: a flat map from
// midashi key to its candidates, most-preferred first.
type jisyoFile struct {
	Entries map[string][]Candidate `yaml:"entries"`
}

// FileBackedUserDict is a UserDict that persists to a YAML file. It is a
// concrete, optional Dictionary implementation; the engine itself only
// ever talks to the Dictionary interface, never to this type directly.
type FileBackedUserDict struct {
	*UserDict
	path string
}

// LoadJisyoFile reads path (if present) into a FileBackedUserDict. A
// missing file is not an error: it behaves like a fresh, empty user
// dictionary that Save will create on first write.
func LoadJisyoFile(path string) (*FileBackedUserDict, error) {
	d := &FileBackedUserDict{UserDict: NewUserDict(), path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, err
	}
	var jf jisyoFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, err
	}
	for k, cands := range jf.Entries {
		for i := len(cands) - 1; i >= 0; i-- {
			_ = d.UserDict.Register(k, cands[i])
		}
	}
	return d, nil
}

// Save writes the current contents of d back to its backing file.
func (d *FileBackedUserDict) Save() error {
	d.mu.RLock()
	jf := jisyoFile{Entries: make(map[string][]Candidate, len(d.entries))}
	for k, cands := range d.entries {
		cp := make([]Candidate, len(cands))
		copy(cp, cands)
		jf.Entries[k] = cp
	}
	d.mu.RUnlock()

	data, err := yaml.Marshal(jf)
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o644)
}

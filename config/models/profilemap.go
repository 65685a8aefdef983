package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// ProfileMap is an insertion-ordered mapping from profile name to Profile.
// It marshals as a JSON object whose member order matches insertion order, so
// exports and listings are stable across load/save cycles. The zero value is
// an empty map ready for use.
type ProfileMap struct {
	names  []string
	byName map[string]Profile
}

// NewProfileMap returns an empty ProfileMap.
func NewProfileMap() ProfileMap {
	return ProfileMap{}
}

// Len returns the number of profiles in the map.
func (m *ProfileMap) Len() int {
	return len(m.names)
}

// Has reports whether a profile with the given name exists.
func (m *ProfileMap) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Get returns the profile with the given name.
func (m *ProfileMap) Get(name string) (Profile, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// Set inserts or replaces a profile keyed by its Name. A replaced profile
// keeps its original position; a new one is appended.
func (m *ProfileMap) Set(p Profile) {
	if m.byName == nil {
		m.byName = make(map[string]Profile)
	}
	if _, ok := m.byName[p.Name]; !ok {
		m.names = append(m.names, p.Name)
	}
	m.byName[p.Name] = p
}

// Delete removes the named profile and reports whether it was present.
func (m *ProfileMap) Delete(name string) bool {
	if _, ok := m.byName[name]; !ok {
		return false
	}
	delete(m.byName, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the profile names in insertion order.
func (m *ProfileMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Profiles returns deep copies of all profiles in insertion order.
func (m *ProfileMap) Profiles() []Profile {
	out := make([]Profile, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.byName[name].Clone())
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m ProfileMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving member order. The member key
// is authoritative for the profile name: an embedded "name" field that
// disagrees is overwritten by the key.
func (m *ProfileMap) UnmarshalJSON(data []byte) error {
	*m = ProfileMap{}
	parsed := gjson.ParseBytes(data)
	if parsed.Type == gjson.Null {
		return nil
	}
	if !parsed.IsObject() {
		return fmt.Errorf("profiles must be a JSON object")
	}
	var decodeErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		var p Profile
		if err := json.Unmarshal([]byte(value.Raw), &p); err != nil {
			decodeErr = fmt.Errorf("profile %q: %w", key.Str, err)
			return false
		}
		p.Name = key.Str
		m.Set(p)
		return true
	})
	return decodeErr
}

// Package refdata holds the Nigerian location lists and foreign place names
// the classifiers match against. The data is built once and never mutated.
package refdata

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/ngscreen/internal/textnorm"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Set is a read-only collection of normalized strings.
type Set struct {
	items map[string]struct{}
}

// NewSet builds a Set from values, normalizing each and dropping empties.
func NewSet(values ...string) Set {
	s := Set{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if n := textnorm.Normalize(v); n != "" {
			s.items[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the already-normalized value is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.items)
}

// Values returns the entries in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s Set) union(other Set) Set {
	merged := Set{items: make(map[string]struct{}, len(s.items)+len(other.items))}
	for v := range s.items {
		merged.items[v] = struct{}{}
	}
	for v := range other.items {
		merged.items[v] = struct{}{}
	}
	return merged
}

// ReferenceData is the full set of lists used for classification.
type ReferenceData struct {
	States          Set
	Cities          Set
	AddressKeywords Set
	ForeignTerms    Set
}

// Lists is the YAML shape of a reference data document.
type Lists struct {
	States          []string `yaml:"states"`
	Cities          []string `yaml:"cities"`
	AddressKeywords []string `yaml:"address_keywords"`
	ForeignTerms    []string `yaml:"foreign_terms"`
}

// Stats reports the size of each list.
type Stats struct {
	States          int `json:"states" yaml:"states"`
	Cities          int `json:"cities" yaml:"cities"`
	AddressKeywords int `json:"address_keywords" yaml:"address_keywords"`
	ForeignTerms    int `json:"foreign_terms" yaml:"foreign_terms"`
}

// FromLists builds ReferenceData from raw lists.
func FromLists(l Lists) *ReferenceData {
	return &ReferenceData{
		States:          NewSet(l.States...),
		Cities:          NewSet(l.Cities...),
		AddressKeywords: NewSet(l.AddressKeywords...),
		ForeignTerms:    NewSet(l.ForeignTerms...),
	}
}

// Parse decodes a YAML reference data document.
func Parse(data []byte) (*ReferenceData, error) {
	var l Lists
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, eris.Wrap(err, "refdata: parse yaml")
	}
	return FromLists(l), nil
}

var (
	defaultOnce sync.Once
	defaultData *ReferenceData
)

// Default returns the built-in reference data. The embedded document is
// parsed on first use and shared afterwards.
func Default() *ReferenceData {
	defaultOnce.Do(func() {
		rd, err := Parse(defaultsYAML)
		if err != nil {
			panic(eris.Wrap(err, "refdata: embedded defaults"))
		}
		defaultData = rd
	})
	return defaultData
}

// Load returns the built-in reference data extended with the lists in the
// YAML file at path. An empty path returns the defaults.
func Load(path string) (*ReferenceData, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "refdata: read %s", path)
	}
	extra, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Default().Merge(extra), nil
}

// Merge returns new ReferenceData holding the union of r and other.
func (r *ReferenceData) Merge(other *ReferenceData) *ReferenceData {
	return &ReferenceData{
		States:          r.States.union(other.States),
		Cities:          r.Cities.union(other.Cities),
		AddressKeywords: r.AddressKeywords.union(other.AddressKeywords),
		ForeignTerms:    r.ForeignTerms.union(other.ForeignTerms),
	}
}

// Stats returns the size of each list.
func (r *ReferenceData) Stats() Stats {
	return Stats{
		States:          r.States.Len(),
		Cities:          r.Cities.Len(),
		AddressKeywords: r.AddressKeywords.Len(),
		ForeignTerms:    r.ForeignTerms.Len(),
	}
}

// Lists returns the reference data as sorted lists.
func (r *ReferenceData) Lists() Lists {
	return Lists{
		States:          r.States.Values(),
		Cities:          r.Cities.Values(),
		AddressKeywords: r.AddressKeywords.Values(),
		ForeignTerms:    r.ForeignTerms.Values(),
	}
}

// MarshalYAML encodes the reference data as a YAML document.
func (r *ReferenceData) MarshalYAML() (any, error) {
	return r.Lists(), nil
}

package tables

import (
	"slices"
	"strings"
)

// Tables is the static lookup data consumed by the device reader. It is
// loaded once and must be treated as read-only afterwards.
type Tables struct {
	Defines      map[string][]string         `yaml:"defines"`
	ExtraDefines map[string][]string         `yaml:"extra_defines"`
	Remaps       map[string]map[string]Remap `yaml:"remaps"`
	Memory       map[string]MemoryFamily     `yaml:"memory"`
}

// Remap describes one AFIO remap bit field.
type Remap struct {
	Position int   `yaml:"position"`
	Mask     int   `yaml:"mask"`
	Mapping  []int `yaml:"mapping"` // remap block index -> field value
}

// Value returns the field value for remap block index i.
func (r Remap) Value(i int) (int, bool) {
	if i < 0 || i >= len(r.Mapping) {
		return 0, false
	}
	return r.Mapping[i], true
}

// MemoryFamily holds the base addresses and memory templates of one family.
type MemoryFamily struct {
	Start  map[string]uint64 `yaml:"start"`
	Models []MemoryModel     `yaml:"models"`
}

// MemoryModel is the memory layout shared by a set of device names.
type MemoryModel struct {
	Names    []string         `yaml:"names"`
	Memories []MemoryTemplate `yaml:"memories"`
}

// MemoryTemplate is one templated region. Size is in KiB.
type MemoryTemplate struct {
	Name string `yaml:"name"`
	Size uint64 `yaml:"size"`
}

// RegionKind classifies a templated region by how its address and size are
// derived.
type RegionKind int

const (
	// KindPrimaryRAM is the first SRAM bank; its size is derived.
	KindPrimaryRAM RegionKind = iota
	// KindRAMBank is a further SRAM bank contiguous with the primary one.
	KindRAMBank
	// KindFlash is the main flash; its size is reported.
	KindFlash
	// KindCCM is core coupled memory, counted in the reported RAM total.
	KindCCM
	// KindOther has its own base address and templated size.
	KindOther
)

// Kind derives the region class from its name.
func (m MemoryTemplate) Kind() RegionKind {
	switch {
	case m.Name == "sram1":
		return KindPrimaryRAM
	case strings.HasPrefix(m.Name, "sram"):
		return KindRAMBank
	case m.Name == "flash":
		return KindFlash
	case m.Name == "ccm":
		return KindCCM
	default:
		return KindOther
	}
}

// FindModel returns the memory model of family listing name.
func (t *Tables) FindModel(family, name string) (MemoryFamily, MemoryModel, bool) {
	fam, ok := t.Memory[family]
	if !ok {
		return MemoryFamily{}, MemoryModel{}, false
	}
	for _, model := range fam.Models {
		if slices.Contains(model.Names, name) {
			return fam, model, true
		}
	}
	return fam, MemoryModel{}, false
}

// FamilyDefines returns the sorted define candidates of a family.
func (t *Tables) FamilyDefines(family string) ([]string, bool) {
	defines, ok := t.Defines[family]
	if !ok {
		return nil, false
	}
	out := slices.Clone(defines)
	slices.Sort(out)
	return out, true
}

// LookupRemap returns the remap field registered under key for family.
func (t *Tables) LookupRemap(family, key string) (Remap, bool) {
	r, ok := t.Remaps[family][key]
	return r, ok
}

// Package tables provides the static reference data of the STM32 device
// reader: define lists, AFIO remap fields and memory templates.
package tables

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultData []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables shipped with the module. The result is shared;
// callers must not modify it.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(bytes.NewReader(defaultData))
	})
	return defaultTables, defaultErr
}

// Load decodes tables from YAML. Unknown keys are rejected.
func Load(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Tables
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("tables: decode: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile decodes tables from the YAML file at path.
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func (t *Tables) validate() error {
	for family, fam := range t.Memory {
		for i, model := range fam.Models {
			if len(model.Names) == 0 {
				return fmt.Errorf("tables: memory %s model %d has no names", family, i)
			}
			primary := 0
			for _, mem := range model.Memories {
				kind := mem.Kind()
				if kind == KindPrimaryRAM {
					primary++
				}
				if kind == KindRAMBank || kind == KindPrimaryRAM {
					if _, ok := fam.Start["sram"]; !ok {
						return fmt.Errorf("tables: memory %s has no sram start address", family)
					}
				} else if _, ok := fam.Start[mem.Name]; !ok {
					return fmt.Errorf("tables: memory %s has no start address for %q", family, mem.Name)
				}
			}
			if primary != 1 {
				return fmt.Errorf("tables: memory %s model %v needs exactly one sram1 region", family, model.Names)
			}
		}
	}
	return nil
}

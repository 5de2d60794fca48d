// Package devicemodel defines the family-agnostic description of a
// microcontroller produced by the vendor readers.
package devicemodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the signal direction of an alternate function.
type Direction string

const (
	In     Direction = "in"
	Out    Direction = "out"
	InOut  Direction = "io"
	Analog Direction = "analog"
)

// Invert swaps in and out. Other directions are returned unchanged.
func (d Direction) Invert() Direction {
	switch d {
	case In:
		return Out
	case Out:
		return In
	}
	return d
}

// Address is a memory address, rendered as hex in text encodings.
type Address uint64

func (a Address) String() string {
	return fmt.Sprintf("0x%08X", uint64(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.ToLower(string(text)), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("devicemodel: invalid address %q", text)
	}
	*a = Address(v)
	return nil
}

// MemoryRegion is one named, contiguous piece of the address space.
type MemoryRegion struct {
	Name   string  `json:"name" yaml:"name" cbor:"name"`
	Access string  `json:"access" yaml:"access" cbor:"access"` // "rwx" or "rx"
	Start  Address `json:"start" yaml:"start" cbor:"start"`
	Size   uint64  `json:"size" yaml:"size" cbor:"size"` // bytes
}

// End returns the first address after the region.
func (m MemoryRegion) End() Address {
	return m.Start + Address(m.Size)
}

// GPIO is an I/O pin identified by port letter and number.
type GPIO struct {
	Port string `json:"port" yaml:"port" cbor:"port"` // "A"
	ID   string `json:"id" yaml:"id" cbor:"id"`       // "14"
}

func (g GPIO) String() string {
	return "P" + g.Port + g.ID
}

// AlternateFunction is one peripheral signal a pin can be routed to.
//
// ID is the family specific selector: the AF number ("7"), an AFIO remap
// triple ("4,3,1"), or "-1" for signals without an independent selector.
// It is empty when the signal needs no selection (e.g. analog inputs).
type AlternateFunction struct {
	Peripheral string    `json:"peripheral" yaml:"peripheral" cbor:"peripheral"`
	Name       string    `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	Type       Direction `json:"type,omitempty" yaml:"type,omitempty" cbor:"type,omitempty"`
	ID         string    `json:"id,omitempty" yaml:"id,omitempty" cbor:"id,omitempty"`
	GPIOPort   string    `json:"gpio-port" yaml:"gpio-port" cbor:"gpio-port"`
	GPIOID     string    `json:"gpio-id" yaml:"gpio-id" cbor:"gpio-id"`
}

// HasID reports whether the binding carries a selector id.
func (af AlternateFunction) HasID() bool {
	return af.ID != ""
}

// SelectorNumber returns the numeric leading component of the selector id.
func (af AlternateFunction) SelectorNumber() int {
	lead, _, _ := strings.Cut(af.ID, ",")
	n, err := strconv.Atoi(lead)
	if err != nil {
		return 0
	}
	return n
}

// Device is a complete, normalized device description.
type Device struct {
	Name         string `json:"name" yaml:"name" cbor:"name"`
	Family       string `json:"family" yaml:"family" cbor:"family"`
	Architecture string `json:"architecture" yaml:"architecture" cbor:"architecture"`
	Core         string `json:"core" yaml:"core" cbor:"core"`

	RAM      uint64         `json:"ram" yaml:"ram" cbor:"ram"`       // bytes
	Flash    uint64         `json:"flash" yaml:"flash" cbor:"flash"` // bytes
	Memories []MemoryRegion `json:"memories" yaml:"memories" cbor:"memories"`

	PinCount int    `json:"pin-count" yaml:"pin-count" cbor:"pin-count"`
	Package  string `json:"package" yaml:"package" cbor:"package"`

	Header       string   `json:"header" yaml:"header" cbor:"header"`
	Define       string   `json:"define,omitempty" yaml:"define,omitempty" cbor:"define,omitempty"`
	ExtraDefines []string `json:"extra-defines,omitempty" yaml:"extra-defines,omitempty" cbor:"extra-defines,omitempty"`

	GPIOs                  []GPIO              `json:"gpios" yaml:"gpios" cbor:"gpios"`
	GPIOAlternateFunctions []AlternateFunction `json:"gpio-afs" yaml:"gpio-afs" cbor:"gpio-afs"`

	Peripherals []string `json:"peripherals" yaml:"peripherals" cbor:"peripherals"`
	Modules     []string `json:"modules" yaml:"modules" cbor:"modules"`
}

// Defines returns the resolved define followed by the family defines.
func (d *Device) Defines() []string {
	var out []string
	if d.Define != "" {
		out = append(out, d.Define)
	}
	return append(out, d.ExtraDefines...)
}

// AlternateFunctionsOf returns the bindings of one pin in model order.
func (d *Device) AlternateFunctionsOf(g GPIO) []AlternateFunction {
	var out []AlternateFunction
	for _, af := range d.GPIOAlternateFunctions {
		if af.GPIOPort == g.Port && af.GPIOID == g.ID {
			out = append(out, af)
		}
	}
	return out
}

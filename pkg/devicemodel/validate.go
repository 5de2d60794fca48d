package devicemodel

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the structural invariants of the model: memory regions do
// not overlap, SRAM banks are laid out in ascending order, and every
// alternate function refers to a listed GPIO.
func (d *Device) Validate() error {
	var errs []error

	for i, a := range d.Memories {
		for _, b := range d.Memories[i+1:] {
			if a.Size == 0 || b.Size == 0 {
				continue
			}
			if a.Start < b.End() && b.Start < a.End() {
				errs = append(errs, fmt.Errorf("memory %s [%s, %s) overlaps %s [%s, %s)",
					a.Name, a.Start, a.End(), b.Name, b.Start, b.End()))
			}
		}
	}

	var last *MemoryRegion
	for i := range d.Memories {
		m := &d.Memories[i]
		if !strings.HasPrefix(m.Name, "sram") {
			continue
		}
		if last != nil && m.Start <= last.Start {
			errs = append(errs, fmt.Errorf("memory %s starts at %s, not after %s at %s",
				m.Name, m.Start, last.Name, last.Start))
		}
		last = m
	}

	pins := make(map[GPIO]struct{}, len(d.GPIOs))
	for _, g := range d.GPIOs {
		pins[g] = struct{}{}
	}
	for _, af := range d.GPIOAlternateFunctions {
		if _, ok := pins[GPIO{Port: af.GPIOPort, ID: af.GPIOID}]; !ok {
			errs = append(errs, fmt.Errorf("alternate function %s.%s refers to unknown pin P%s%s",
				af.Peripheral, af.Name, af.GPIOPort, af.GPIOID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("devicemodel: %s: %w", d.Name, errors.Join(errs...))
	}
	return nil
}

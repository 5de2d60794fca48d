package stm32

import "fmt"

// UnsupportedCoreError reports a core name missing from the architecture
// table. It is fatal for the device.
type UnsupportedCoreError struct {
	Device string
	Core   string
}

func (e *UnsupportedCoreError) Error() string {
	return fmt.Sprintf("stm32: %s: unsupported core %q", e.Device, e.Core)
}

// MemoryModelNotFoundError reports that no memory template lists the device.
// It is fatal for the device.
type MemoryModelNotFoundError struct {
	Device string
	Family string
	Name   string
}

func (e *MemoryModelNotFoundError) Error() string {
	return fmt.Sprintf("stm32: %s: memory model not found for family %q, name %q", e.Device, e.Family, e.Name)
}

// DefineNotResolvedError reports that no compiler define matches the device.
// It is a warning: the model is still produced, without a define.
type DefineNotResolvedError struct {
	Device string
	Family string
	Prefix string // empty when the family has no define list
}

func (e *DefineNotResolvedError) Error() string {
	if e.Prefix == "" {
		return fmt.Sprintf("stm32: %s: no define list for family %q", e.Device, e.Family)
	}
	return fmt.Sprintf("stm32: %s: define not found for %q", e.Device, e.Prefix)
}

// PackageError reports a missing or malformed Package attribute.
type PackageError struct {
	Device  string
	Package string
}

func (e *PackageError) Error() string {
	if e.Package == "" {
		return fmt.Sprintf("stm32: %s: package attribute missing", e.Device)
	}
	return fmt.Sprintf("stm32: %s: malformed package %q", e.Device, e.Package)
}

// PinNameError reports an I/O pin label that does not follow the P<port><n>
// convention.
type PinNameError struct {
	Device string
	Pin    string
}

func (e *PinNameError) Error() string {
	return fmt.Sprintf("stm32: %s: malformed pin name %q", e.Device, e.Pin)
}

// DeviceNotFoundError reports a RefName absent from the family catalog.
type DeviceNotFoundError struct {
	RefName string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("stm32: device %q not found in families catalog", e.RefName)
}

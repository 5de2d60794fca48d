package stm32

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
	"github.com/OpenTraceLab/devfile/pkg/identifier"
	"github.com/OpenTraceLab/devfile/pkg/xmldoc"
)

// Input is everything Build needs to assemble one device.
type Input struct {
	RefName   string // "STM32F407VGTx"
	ComboName string // "STM32F407V(E-G)Tx"
	Device    Source // device description
	GPIO      Source // GPIO modes document of the device's GPIO IP
}

// Result is an assembled device and the non-fatal problems met on the way.
type Result struct {
	Device   *devicemodel.Device
	Warnings []error
}

// Device loads and assembles the device named refName.
func (c *Catalog) Device(refName string) (*Result, error) {
	comboName, err := c.ComboName(refName)
	if err != nil {
		return nil, err
	}
	doc, err := c.loadDevice(comboName)
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: %w", refName, err)
	}

	ips, err := doc.Query("//IP[@Name='GPIO']")
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 || ips[0].Attr("Version") == "" {
		return nil, fmt.Errorf("stm32: %s: no GPIO IP version in %s", refName, doc.Path())
	}
	gpio, err := c.loadGPIOModes(ips[0].Attr("Version"))
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: %w", refName, err)
	}

	return c.Build(Input{RefName: refName, ComboName: comboName, Device: doc, GPIO: gpio})
}

// Build assembles a device from loaded documents.
func (c *Catalog) Build(in Input) (*Result, error) {
	id, err := identifier.Parse(in.RefName)
	if err != nil {
		return nil, err
	}
	name := id.String()
	log := c.logger.With("device", name)
	log.Info("parsing device")

	res := &Result{}
	dev := &devicemodel.Device{Name: name, Family: id.Family}

	coreText, err := firstText(in.Device, "//Core")
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: %w", name, err)
	}
	if dev.Architecture, dev.Core, err = ParseCore(name, coreText); err != nil {
		return nil, err
	}

	rams, err := sizes(in.Device, "//Ram")
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: %w", name, err)
	}
	flash, err := sizes(in.Device, "//Flash")
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: %w", name, err)
	}
	mem, err := buildMemoryModel(c.tables, log, memoryInput{
		device: name,
		id:     id,
		combo:  in.ComboName,
		rams:   rams,
		flash:  flash,
	})
	if err != nil {
		return nil, err
	}
	dev.RAM, dev.Flash, dev.Memories = mem.ram, mem.flash, mem.regions

	pkgs, err := in.Device.Query("//*[@Package]")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, &PackageError{Device: name}
	}
	if dev.PinCount, dev.Package, err = ParsePackage(name, pkgs[0].Attr("Package")); err != nil {
		return nil, err
	}

	dev.Header = "stm32" + id.Family + "xx.h"

	if dev.Define, err = resolveDefine(c.tables, name, id); err != nil {
		log.Warn("define not found", "error", err)
		res.Warnings = append(res.Warnings, err)
	}
	dev.ExtraDefines = slices.Clone(c.tables.ExtraDefines[id.Family])

	ips, err := in.Device.Query("//IP[@InstanceName]")
	if err != nil {
		return nil, err
	}
	instances := make([]string, 0, len(ips))
	for _, ip := range ips {
		instances = append(instances, ip.Attr("InstanceName"))
	}
	dev.Modules, dev.Peripherals = collectModules(instances)
	log.Debug("available modules\n" + groupModules(dev.Modules))

	pins := &pinResolver{
		device: name,
		doc:    in.Device,
		gpio:   in.GPIO,
		scheme: schemeFor(id.Family, c.tables, log),
		log:    log,
	}
	if dev.GPIOs, dev.GPIOAlternateFunctions, err = pins.resolve(); err != nil {
		return nil, err
	}

	if err := dev.Validate(); err != nil {
		return nil, err
	}
	res.Device = dev
	return res, nil
}

func firstText(doc Source, expr string) (string, error) {
	elems, err := doc.Query(expr)
	if err != nil {
		return "", err
	}
	if len(elems) == 0 {
		return "", fmt.Errorf("%s not found", expr)
	}
	return elems[0].Text(), nil
}

// sizes returns the numeric text of every element matching expr.
func sizes(doc Source, expr string) ([]uint64, error) {
	elems, err := doc.Query(expr)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(elems))
	for _, e := range elems {
		v, err := strconv.ParseUint(e.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid size %q", expr, e.Text())
		}
		out = append(out, v)
	}
	return out, nil
}

var _ Source = (*xmldoc.Document)(nil)

package stm32

import (
	"cmp"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
)

// pinLabelRegexp matches the GPIO part of a pin label; suffixes naming the
// pin's other roles ("PC14-OSC32_IN", "PB2/BOOT1") are not part of it.
var pinLabelRegexp = regexp.MustCompile(`^P([A-Z])([0-9]{1,2})`)

// ParsePinLabel derives the GPIO port and number from a raw pin label.
func ParsePinLabel(device, label string) (devicemodel.GPIO, int, error) {
	m := pinLabelRegexp.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return devicemodel.GPIO{}, 0, &PinNameError{Device: device, Pin: label}
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return devicemodel.GPIO{}, 0, &PinNameError{Device: device, Pin: label}
	}
	return devicemodel.GPIO{Port: m[1], ID: strconv.Itoa(n)}, n, nil
}

// pinResolver builds the GPIO list and the alternate function bindings of one
// device.
type pinResolver struct {
	device string
	doc    Source // device description
	gpio   Source // GPIO modes document
	scheme pinScheme
	log    *slog.Logger
}

type ioPin struct {
	label string
	gpio  devicemodel.GPIO
	num   int
}

func (r *pinResolver) resolve() ([]devicemodel.GPIO, []devicemodel.AlternateFunction, error) {
	elems, err := r.doc.Query("//Pin[@Type='I/O'][starts-with(@Name,'P')]")
	if err != nil {
		return nil, nil, err
	}

	pins := make([]ioPin, 0, len(elems))
	for _, e := range elems {
		label := e.Attr("Name")
		g, n, err := ParsePinLabel(r.device, label)
		if err != nil {
			return nil, nil, err
		}
		pins = append(pins, ioPin{label: label, gpio: g, num: n})
	}
	// Ordering keeps the output stable; it carries no meaning.
	slices.SortStableFunc(pins, func(a, b ioPin) int {
		if c := strings.Compare(a.gpio.Port, b.gpio.Port); c != 0 {
			return c
		}
		return cmp.Compare(a.num, b.num)
	})

	gpios := make([]devicemodel.GPIO, 0, len(pins))
	var bindings []devicemodel.AlternateFunction
	for _, p := range pins {
		afs, err := r.pinBindings(p.label)
		if err != nil {
			return nil, nil, err
		}
		for i := range afs {
			afs[i].GPIOPort = p.gpio.Port
			afs[i].GPIOID = p.gpio.ID
		}
		gpios = append(gpios, p.gpio)
		bindings = append(bindings, afs...)
	}
	return gpios, bindings, nil
}

// pinBindings collects the bindings of one pin: signals of the GPIO modes
// document plus the analog inputs, which only the device description lists.
func (r *pinResolver) pinBindings(label string) ([]devicemodel.AlternateFunction, error) {
	signals, ids, err := r.scheme.signals(r.gpio, label)
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: pin %s: %w", r.device, label, err)
	}
	analog, err := r.doc.CompactQuery(fmt.Sprintf("//Pin[@Name='%s']/Signal[starts-with(@Name,'ADC')]", label))
	if err != nil {
		return nil, fmt.Errorf("stm32: %s: pin %s: %w", r.device, label, err)
	}

	seen := make(map[string]struct{})
	var afs []devicemodel.AlternateFunction
	for _, e := range append(signals, analog...) {
		name := e.Attr("Name")
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		afs = append(afs, bindingsForSignal(name, ids[name])...)
	}
	return orderBindings(afs), nil
}

// orderBindings places bindings with a selector id first, ordered by the
// numeric leading component of the id and then by peripheral name. Bindings
// without an id follow in discovery order.
func orderBindings(afs []devicemodel.AlternateFunction) []devicemodel.AlternateFunction {
	out := make([]devicemodel.AlternateFunction, 0, len(afs))
	var rest []devicemodel.AlternateFunction
	for _, af := range afs {
		if af.HasID() {
			out = append(out, af)
		} else {
			rest = append(rest, af)
		}
	}
	slices.SortStableFunc(out, func(a, b devicemodel.AlternateFunction) int {
		if c := cmp.Compare(a.SelectorNumber(), b.SelectorNumber()); c != 0 {
			return c
		}
		return strings.Compare(a.Peripheral, b.Peripheral)
	})
	return append(out, rest...)
}

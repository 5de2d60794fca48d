package stm32

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/devfile/pkg/tables"
	"github.com/OpenTraceLab/devfile/pkg/xmldoc"
)

// Source is the query capability the resolvers need from a loaded document.
type Source interface {
	Query(expr string) ([]*xmldoc.Element, error)
	CompactQuery(expr string) ([]*xmldoc.Element, error)
}

// pinScheme is the family specific way a GPIO modes document describes the
// signals of a pin and how each one is selected.
type pinScheme interface {
	// signals returns the PinSignal elements of pin in document order and
	// the selector id of each signal keyed by signal name.
	signals(gpio Source, pin string) ([]*xmldoc.Element, map[string]string, error)
}

// schemeFor returns the pin scheme of a family. STM32F1 routes pins through
// AFIO remap fields; every later family uses per-pin AF numbers.
func schemeFor(family string, t *tables.Tables, log *slog.Logger) pinScheme {
	switch family {
	case "f1":
		return &remapScheme{family: family, tables: t, log: log}
	default:
		return &afScheme{parameter: "GPIO_AF", log: log}
	}
}

// remapScheme resolves signals grouped under RemapBlock elements.
type remapScheme struct {
	family string
	tables *tables.Tables
	log    *slog.Logger
}

func (s *remapScheme) signals(gpio Source, pin string) ([]*xmldoc.Element, map[string]string, error) {
	elems, err := gpio.CompactQuery(fmt.Sprintf("//GPIO_Pin[@Name='%s']/PinSignal/RemapBlock/..", pin))
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[string]string, len(elems))
	for _, e := range elems {
		name := e.Attr("Name")
		block := firstChild(e, "RemapBlock")
		if block == nil {
			continue
		}
		ids[name] = s.selector(name, block.Attr("Name"))
	}
	return elems, ids, nil
}

// selector encodes the remap field of signal as "position,mask,value". The
// raw index is the last character of the remap block name. Signals without a
// known remap field are always routed and get "-1".
func (s *remapScheme) selector(signal, block string) string {
	tokens := strings.Split(signal, "_")
	key := strings.ToLower(tokens[0])
	remap, ok := s.tables.LookupRemap(s.family, key)
	if !ok && len(tokens) > 1 {
		key += strings.ToLower(tokens[1])
		remap, ok = s.tables.LookupRemap(s.family, key)
	}
	if !ok {
		return "-1"
	}

	if block == "" {
		s.log.Warn("remap block without name", "signal", signal)
		return "-1"
	}
	idx, err := strconv.Atoi(block[len(block)-1:])
	if err != nil {
		s.log.Warn("remap block index not numeric", "signal", signal, "block", block)
		return "-1"
	}
	value, ok := remap.Value(idx)
	if !ok {
		s.log.Warn("remap block index outside remap field", "signal", signal, "block", block, "key", key)
		return "-1"
	}
	return fmt.Sprintf("%d,%d,%d", remap.Position, remap.Mask, value)
}

// afScheme resolves signals carrying a function select parameter.
type afScheme struct {
	parameter string
	log       *slog.Logger
}

func (s *afScheme) signals(gpio Source, pin string) ([]*xmldoc.Element, map[string]string, error) {
	elems, err := gpio.CompactQuery(fmt.Sprintf("//GPIO_Pin[@Name='%s']/PinSignal/SpecificParameter[@Name='%s']/..", pin, s.parameter))
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[string]string, len(elems))
	for _, e := range elems {
		name := e.Attr("Name")
		param := firstChildWithName(e, "SpecificParameter", s.parameter)
		if param == nil {
			continue
		}
		value := param.Child(0)
		if value == nil {
			s.log.Warn("function select parameter without value", "pin", pin, "signal", name)
			continue
		}
		id, err := ParseAFSelector(value.Text())
		if err != nil {
			s.log.Warn("function select value not understood", "pin", pin, "signal", name, "error", err)
			continue
		}
		ids[name] = id
	}
	return elems, ids, nil
}

func firstChild(e *xmldoc.Element, tag string) *xmldoc.Element {
	for _, c := range e.Children() {
		if c.Name() == tag {
			return c
		}
	}
	return nil
}

func firstChildWithName(e *xmldoc.Element, tag, name string) *xmldoc.Element {
	for _, c := range e.Children() {
		if c.Name() == tag && c.Attr("Name") == name {
			return c
		}
	}
	return nil
}

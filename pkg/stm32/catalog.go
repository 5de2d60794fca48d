// Package stm32 reads the STM32CubeMX part database and normalizes each
// device into a devicemodel.Device.
//
// The database root holds families.xml, one description per combo part number
// (e.g. "STM32F407V(E-G)Tx.xml") and the GPIO modes documents under IP/.
package stm32

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/OpenTraceLab/devfile/pkg/tables"
	"github.com/OpenTraceLab/devfile/pkg/xmldoc"
)

// Options configures a Catalog.
type Options struct {
	// Tables replaces the embedded reference tables.
	Tables *tables.Tables
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Catalog is the read-only context shared by all devices of one database:
// root path, family catalog, reference tables and logger.
type Catalog struct {
	root     string
	families Source
	tables   *tables.Tables
	logger   *slog.Logger
}

// Open loads families.xml from root.
func Open(root string, opts Options) (*Catalog, error) {
	families, err := xmldoc.ParseFile(filepath.Join(root, "families.xml"))
	if err != nil {
		return nil, fmt.Errorf("stm32: open catalog: %w", err)
	}
	return New(root, families, opts)
}

// New creates a catalog over an already loaded family document. families may
// be nil when devices are only assembled through Build.
func New(root string, families Source, opts Options) (*Catalog, error) {
	t := opts.Tables
	if t == nil {
		var err error
		if t, err = tables.Default(); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{root: root, families: families, tables: t, logger: logger}, nil
}

// Families returns the family names listed in the catalog.
func (c *Catalog) Families() ([]string, error) {
	elems, err := c.query("//Family")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(elems))
	for _, e := range elems {
		names = append(names, e.Attr("Name"))
	}
	return names, nil
}

// Devices returns the RefNames of all devices of family, e.g. "STM32F4".
func (c *Catalog) Devices(family string) ([]string, error) {
	elems, err := c.query(fmt.Sprintf("//Family[@Name='%s']/SubFamily/Mcu", family))
	if err != nil {
		return nil, err
	}
	refs := make([]string, 0, len(elems))
	for _, e := range elems {
		refs = append(refs, e.Attr("RefName"))
	}
	c.logger.Debug("found devices of family", "family", family, "count", len(refs))
	return refs, nil
}

// ComboName returns the combo part number that names the description file of
// refName.
func (c *Catalog) ComboName(refName string) (string, error) {
	elems, err := c.query(fmt.Sprintf("//Family/SubFamily/Mcu[@RefName='%s']", refName))
	if err != nil {
		return "", err
	}
	if len(elems) == 0 {
		return "", &DeviceNotFoundError{RefName: refName}
	}
	return elems[0].Attr("Name"), nil
}

func (c *Catalog) query(expr string) ([]*xmldoc.Element, error) {
	if c.families == nil {
		return nil, fmt.Errorf("stm32: catalog has no families document")
	}
	return c.families.Query(expr)
}

func (c *Catalog) loadDevice(comboName string) (*xmldoc.Document, error) {
	return xmldoc.ParseFile(filepath.Join(c.root, comboName+".xml"))
}

func (c *Catalog) loadGPIOModes(version string) (*xmldoc.Document, error) {
	return xmldoc.ParseFile(filepath.Join(c.root, "IP", "GPIO-"+version+"_Modes.xml"))
}

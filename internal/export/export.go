// Package export writes device models to files and terminals.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML, CBOR:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q (want json, yaml or cbor)", s)
}

// Extension returns the file extension of f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// encMode encodes device models deterministically.
var encMode cbor.EncMode

// decMode rejects input that the encoder would not produce.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Encode writes d to w in format f.
func Encode(w io.Writer, f Format, d *devicemodel.Device) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case CBOR:
		return encMode.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("export: unknown format %q", f)
}

// DecodeCBOR reads a device model written by Encode with CBOR and validates
// it.
func DecodeCBOR(data []byte) (*devicemodel.Device, error) {
	var d devicemodel.Device
	if err := decMode.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("export: decode cbor: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// WriteFile writes d to dir/<name><ext> and returns the path.
func WriteFile(dir string, f Format, d *devicemodel.Device) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, d.Name+f.Extension())
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Encode(out, f, d); err != nil {
		out.Close()
		return "", fmt.Errorf("export: %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}

package devicemodel

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a device model written by the YAML exporter. Unknown keys
// are rejected and the result is validated.
func DecodeYAML(r io.Reader) (*Device, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Device
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("devicemodel: decode yaml: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// DecodeJSON reads a device model written by the JSON exporter. Unknown keys
// are rejected and the result is validated.
func DecodeJSON(r io.Reader) (*Device, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Device
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("devicemodel: decode json: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

package identifier

import (
	"fmt"
	"regexp"
	"strings"
)

var stm32Regexp = regexp.MustCompile(`^(stm32)([a-z])([0-9]{3})([a-z0-9])([a-z0-9])([a-z0-9]*)$`)

// Parse splits a device name such as "STM32F407VGTx" into its classification
// tokens. Parsing is case-insensitive; all tokens are stored lowercase.
func Parse(name string) (Identifier, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	m := stm32Regexp.FindStringSubmatch(s)
	if m == nil {
		return Identifier{}, fmt.Errorf("identifier: unrecognized device name %q", name)
	}

	return Identifier{
		Platform: m[1],
		Family:   m[2] + m[3][:1],
		Name:     m[3],
		PinID:    m[4],
		SizeID:   m[5],
		Variant:  m[6],
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and tables.
func MustParse(name string) Identifier {
	id, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return id
}

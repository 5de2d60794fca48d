package stm32

import (
	"strings"

	"github.com/OpenTraceLab/devfile/pkg/identifier"
	"github.com/OpenTraceLab/devfile/pkg/tables"
)

// resolveDefine picks the CMSIS device define for id.
//
// When more than one define of the family starts with the device name, the
// size id is appended ("STM32F103" + "x8") and the first define sorting at or
// after that string is taken. This uses string order as a stand-in for the
// size ranges the defines cover ("STM32F103xB" covers sizes 8 and B) and is an
// approximation: size letters that do not sort like the ranges they belong to
// pick the wrong define.
func resolveDefine(t *tables.Tables, device string, id identifier.Identifier) (string, error) {
	candidates, ok := t.FamilyDefines(id.Family)
	if !ok {
		return "", &DefineNotResolvedError{Device: device, Family: id.Family}
	}

	prefix := "STM32" + strings.ToUpper(id.FamilyLetter()) + id.Name
	var matching []string
	for _, d := range candidates {
		if strings.HasPrefix(d, prefix) {
			matching = append(matching, d)
		}
	}
	if len(matching) == 1 {
		return matching[0], nil
	}

	sized := prefix + "x" + strings.ToUpper(id.SizeID)
	for _, d := range matching {
		if sized <= d {
			return d, nil
		}
	}
	return "", &DefineNotResolvedError{Device: device, Family: id.Family, Prefix: sized}
}

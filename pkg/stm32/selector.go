package stm32

import (
	"fmt"
	"strings"
)

const afParameterPrefix = "GPIO_AF"

// ParseAFSelector extracts the alternate function number from a GPIO_AF
// parameter value.
//
// The value has the form GPIO_AF<n>_<signal> where <n> is one or two decimal
// digits: "GPIO_AF7_USART1" -> "7", "GPIO_AF10_OTG_FS" -> "10". At most the
// two characters following the prefix are considered; underscores among them
// are dropped.
func ParseAFSelector(value string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(value), afParameterPrefix)
	if !ok {
		return "", fmt.Errorf("stm32: AF parameter %q lacks %s prefix", value, afParameterPrefix)
	}
	if len(rest) > 2 {
		rest = rest[:2]
	}
	rest = strings.ReplaceAll(rest, "_", "")
	if rest == "" {
		return "", fmt.Errorf("stm32: AF parameter %q has no function number", value)
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("stm32: AF parameter %q has non-numeric function %q", value, rest)
		}
	}
	return rest, nil
}

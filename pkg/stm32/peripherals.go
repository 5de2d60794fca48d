package stm32

import (
	"slices"
	"strings"
)

// peripheralPrefixes are the IP instance classes the device model lists as
// peripherals.
var peripheralPrefixes = []string{
	"TIM", "UART", "USART", "ADC", "DAC", "CAN", "SPI", "I2C", "OTG", "DMA", "USB", "FSMC",
}

// collectModules deduplicates and sorts the instantiated IP names and selects
// the recognized peripherals among them.
func collectModules(instances []string) (modules, peripherals []string) {
	modules = slices.DeleteFunc(slices.Clone(instances), func(s string) bool { return s == "" })
	slices.Sort(modules)
	modules = slices.Compact(modules)

	for _, m := range modules {
		if isPeripheral(m) {
			peripherals = append(peripherals, m)
		}
	}
	return modules, peripherals
}

func isPeripheral(name string) bool {
	for _, prefix := range peripheralPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// groupModules renders sorted module names one line per leading character.
func groupModules(modules []string) string {
	var b strings.Builder
	for i, m := range modules {
		if i > 0 {
			if m[:1] != modules[i-1][:1] {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(m)
	}
	return b.String()
}

package stm32

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
)

// signalDirections maps sub-signal names to their direction. Bidirectional
// lines are listed for completeness but bindings carry no direction for them.
var signalDirections = map[string]devicemodel.Direction{
	// Uart
	"rx":  devicemodel.In,
	"tx":  devicemodel.Out,
	"cts": devicemodel.In,
	"rts": devicemodel.Out,
	"ck":  devicemodel.Out,
	// Spi
	"miso": devicemodel.In,
	"mosi": devicemodel.Out,
	"nss":  devicemodel.InOut,
	"sck":  devicemodel.Out,
	// I2c
	"scl": devicemodel.Out,
	"sda": devicemodel.InOut,
}

// USART in synchronous mode acts as an SPI master.
var uartSpiMasterNames = map[string]string{"rx": "miso", "tx": "mosi", "ck": "sck"}

// Seen from an SPI slave the data lines swap roles.
var spiSlaveNames = map[string]string{"miso": "somi", "mosi": "simo", "nss": "nss", "sck": "sck"}

func direction(sub string) devicemodel.Direction {
	d := signalDirections[sub]
	if d == devicemodel.InOut {
		return ""
	}
	return d
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}

// instanceOf returns the trailing digit of an instance token ("USART2" ->
// "2") or "" for unnumbered instances.
func instanceOf(token string) string {
	if token == "" {
		return ""
	}
	last := token[len(token)-1]
	if last < '0' || last > '9' {
		return ""
	}
	return string(last)
}

// adcInstances expands a shared converter token ("ADC123") into one instance
// per digit, so ADC123_IN10 is bound on Adc1, Adc2 and Adc3 rather than only
// on the converter named by the last digit.
func adcInstances(token string) []string {
	digits := strings.TrimPrefix(token, "ADC")
	if digits == "" {
		return []string{""}
	}
	out := make([]string, 0, len(digits))
	for _, c := range digits {
		if c < '0' || c > '9' {
			return []string{instanceOf(token)}
		}
		out = append(out, string(c))
	}
	return out
}

// bindingsForSignal translates one raw signal name ("USART1_TX") into the
// peripheral bindings it offers. id is the family selector of the signal and
// may be empty. Signals of unsupported peripherals yield nothing.
func bindingsForSignal(signal, id string) []devicemodel.AlternateFunction {
	tokens := strings.Split(signal, "_")
	if len(tokens) < 2 {
		return nil
	}
	instance := instanceOf(tokens[0])
	sub := strings.ToLower(tokens[1])
	dir := direction(sub)

	var afs []devicemodel.AlternateFunction
	add := func(peripheral, name string, typ devicemodel.Direction, id string) {
		afs = append(afs, devicemodel.AlternateFunction{Peripheral: peripheral, Name: name, Type: typ, ID: id})
	}

	switch {
	case strings.HasPrefix(signal, "USART"), strings.HasPrefix(signal, "UART"):
		add("Uart"+instance, capitalize(sub), dir, id)
		if name, ok := uartSpiMasterNames[sub]; ok && strings.HasPrefix(signal, "USART") {
			add("UartSpiMaster"+instance, capitalize(name), dir, id)
		}

	case strings.HasPrefix(signal, "SPI"):
		add("SpiMaster"+instance, capitalize(sub), dir, id)
		if name, ok := spiSlaveNames[sub]; ok {
			add("SpiSlave"+instance, capitalize(name), dir.Invert(), id)
		}

	case strings.HasPrefix(signal, "CAN"):
		add("Can"+instance, capitalize(sub), dir, id)

	case strings.HasPrefix(signal, "I2C"):
		if sub == "scl" || sub == "sda" {
			add("I2cMaster"+instance, capitalize(sub), dir, id)
		}

	case strings.HasPrefix(signal, "TIM"):
		timer := "Timer" + strings.TrimPrefix(tokens[0], "TIM")
		for _, t := range tokens[1:] {
			switch {
			case strings.Contains(t, "CH"):
				add(timer, strings.ReplaceAll(t, "CH", "Channel"), "", id)
			case strings.Contains(t, "BKIN"):
				add(timer, "BreakIn", devicemodel.In, id)
			default:
				add(timer, "ExternalTrigger", devicemodel.In, id)
			}
		}

	case strings.HasPrefix(signal, "ADC"):
		if !strings.Contains(sub, "exti") {
			name := capitalize(strings.ReplaceAll(sub, "in", "Channel"))
			for _, n := range adcInstances(tokens[0]) {
				add("Adc"+n, name, devicemodel.Analog, "")
			}
		}

	case strings.HasPrefix(signal, "SYS"):
		if strings.Contains(sub, "mco") {
			peripheral := strings.ReplaceAll(strings.ReplaceAll(signal, "SYS", ""), "_", "")
			add(peripheral, "", devicemodel.Out, "0")
		}

	case strings.HasPrefix(signal, "OTG_FS"):
		if len(tokens) > 2 && (tokens[2] == "DM" || tokens[2] == "DP") {
			usbID := id
			if usbID == "" {
				usbID = "10"
			}
			add("Usb", capitalize(tokens[2]), "", usbID)
		}

	case strings.HasPrefix(signal, "FSMC_"):
		if !strings.HasPrefix(tokens[1], "DA") {
			add("Fsmc", capitalize(tokens[1]), "", id)
		}
	}
	return afs
}

package stm32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
)

func TestParseCore(t *testing.T) {
	tests := []struct {
		raw      string
		wantArch string
		wantCore string
	}{
		{"ARM Cortex-M0", "v6m", "cortex-m0"},
		{"ARM Cortex-M3", "v7m", "cortex-m3"},
		{"ARM Cortex-M4", "v7em", "cortex-m4f"},
		{"  ARM Cortex-M4 ", "v7em", "cortex-m4f"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			arch, core, err := ParseCore("stm32f407vgtx", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArch, arch)
			assert.Equal(t, tt.wantCore, core)
		})
	}
}

func TestParseCoreUnsupported(t *testing.T) {
	_, _, err := ParseCore("stm32h743zitx", "ARM Cortex-M7")
	require.Error(t, err)

	var coreErr *UnsupportedCoreError
	require.True(t, errors.As(err, &coreErr))
	assert.Equal(t, "stm32h743zitx", coreErr.Device)
	assert.Equal(t, "ARM Cortex-M7", coreErr.Core)
}

func TestParsePackage(t *testing.T) {
	tests := []struct {
		raw       string
		wantCount int
		wantCode  string
	}{
		{"LQFP100", 100, "LQFP"},
		{"TSSOP20", 20, "TSSOP"},
		{"UFQFPN48", 48, "UFQFPN"},
		{"WLCSP.49", 49, "WLCSP."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			count, code, err := ParsePackage("dev", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestParsePackageMalformed(t *testing.T) {
	for _, raw := range []string{"", "LQFP", "100"} {
		_, _, err := ParsePackage("dev", raw)
		var pkgErr *PackageError
		assert.True(t, errors.As(err, &pkgErr), "package %q", raw)
	}
}

func TestParseAFSelector(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"GPIO_AF7_USART1", "7"},
		{"GPIO_AF10_OTG_FS", "10"},
		{"GPIO_AF0_MCO", "0"},
		{"GPIO_AF12_FSMC", "12"},
		{" GPIO_AF1_TIM2 ", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseAFSelector(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAFSelectorInvalid(t *testing.T) {
	for _, value := range []string{"", "GPIO_PIN_x", "GPIO_AF", "GPIO_AF_", "GPIO_AFx_TIM1"} {
		_, err := ParseAFSelector(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestParsePinLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    devicemodel.GPIO
		wantNum int
	}{
		{"PA9", devicemodel.GPIO{Port: "A", ID: "9"}, 9},
		{"PA0-WKUP", devicemodel.GPIO{Port: "A", ID: "0"}, 0},
		{"PC14-OSC32_IN", devicemodel.GPIO{Port: "C", ID: "14"}, 14},
		{"PB2/BOOT1", devicemodel.GPIO{Port: "B", ID: "2"}, 2},
		{"PH01", devicemodel.GPIO{Port: "H", ID: "1"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			g, n, err := ParsePinLabel("dev", tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
			assert.Equal(t, tt.wantNum, n)
		})
	}

	_, _, err := ParsePinLabel("dev", "VDD")
	var pinErr *PinNameError
	assert.True(t, errors.As(err, &pinErr))
}

func TestCollectModules(t *testing.T) {
	modules, peripherals := collectModules([]string{
		"USART2", "GPIO", "TIM1", "", "ADC1", "USART2", "RCC", "TIM12", "USB_OTG_FS",
	})
	assert.Equal(t, []string{"ADC1", "GPIO", "RCC", "TIM1", "TIM12", "USART2", "USB_OTG_FS"}, modules)
	assert.Equal(t, []string{"ADC1", "TIM1", "TIM12", "USART2", "USB_OTG_FS"}, peripherals)

	assert.Equal(t, "ADC1\nGPIO\nRCC\nTIM1 TIM12\nUSART2 USB_OTG_FS", groupModules(modules))
}

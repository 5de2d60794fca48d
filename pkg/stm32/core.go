package stm32

import (
	"strings"
)

// coreArchitectures maps the Cortex-M profile to the architecture tag.
var coreArchitectures = map[string]string{
	"m0": "v6m",
	"m3": "v7m",
	"m4": "v7em",
}

// ParseCore resolves a core description such as "ARM Cortex-M4" into the
// architecture tag ("v7em") and the core tag ("cortex-m4f"). Cortex-M4 cores
// carry the "f" suffix for the FPU.
func ParseCore(device, raw string) (arch string, core string, err error) {
	core = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "ARM ")))

	arch, ok := coreArchitectures[strings.TrimPrefix(core, "cortex-")]
	if !ok {
		return "", "", &UnsupportedCoreError{Device: device, Core: raw}
	}
	if strings.HasSuffix(core, "m4") {
		core += "f"
	}
	return arch, core, nil
}

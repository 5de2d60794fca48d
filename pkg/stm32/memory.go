package stm32

import (
	"fmt"
	"log/slog"

	"github.com/OpenTraceLab/devfile/pkg/combo"
	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
	"github.com/OpenTraceLab/devfile/pkg/identifier"
	"github.com/OpenTraceLab/devfile/pkg/tables"
)

const kib = 1024

// memoryInput carries the reported sizes of a device, in KiB, in the order of
// the combo name's size group.
type memoryInput struct {
	device string
	id     identifier.Identifier
	combo  string
	rams   []uint64
	flash  []uint64
}

// memoryModel is the reconciled memory layout of one device. Sizes are bytes.
type memoryModel struct {
	ram     uint64
	flash   uint64
	regions []devicemodel.MemoryRegion
}

// sizeIndex locates the size id within the combo name's size group. A name
// without a group, an unlisted size id, or a position beyond the reported
// values selects the first variant.
func sizeIndex(log *slog.Logger, comboName, sizeID string, reported int) int {
	name, err := combo.Parse(comboName)
	if err != nil {
		log.Warn("combo name not understood, using first size variant", "combo", comboName, "error", err)
		return 0
	}
	group := name.SizeGroup()
	if group == nil {
		log.Debug("combo name has no size group", "combo", comboName)
		return 0
	}
	idx := group.Index(sizeID)
	if idx < 0 {
		log.Warn("size id not listed in combo name, using first size variant", "combo", comboName, "size", sizeID)
		return 0
	}
	if idx >= reported {
		log.Debug("size index beyond reported values", "index", idx, "reported", reported)
		return 0
	}
	return idx
}

// buildMemoryModel splits the reported RAM total into the banks of the
// family template and places every region at its address.
func buildMemoryModel(t *tables.Tables, log *slog.Logger, in memoryInput) (memoryModel, error) {
	if len(in.rams) == 0 || len(in.flash) == 0 {
		return memoryModel{}, fmt.Errorf("stm32: %s: device reports no Ram or Flash size", in.device)
	}

	idx := sizeIndex(log, in.combo, in.id.SizeID, len(in.rams))
	ramKiB := in.rams[idx]
	flashKiB := in.flash[0]
	if idx < len(in.flash) {
		flashKiB = in.flash[idx]
	}

	fam, model, ok := t.FindModel(in.id.Family, in.id.Name)
	if !ok {
		return memoryModel{}, &MemoryModelNotFoundError{Device: in.device, Family: in.id.Family, Name: in.id.Name}
	}

	// The reported total includes the secondary banks and CCM.
	primaryKiB := ramKiB
	for _, mem := range model.Memories {
		switch mem.Kind() {
		case tables.KindRAMBank, tables.KindCCM:
			if mem.Size > primaryKiB {
				return memoryModel{}, fmt.Errorf("stm32: %s: %s (%d KiB) exceeds remaining RAM (%d KiB)",
					in.device, mem.Name, mem.Size, primaryKiB)
			}
			primaryKiB -= mem.Size
		}
	}

	sramBase := fam.Start["sram"]
	var offset uint64
	regions := make([]devicemodel.MemoryRegion, 0, len(model.Memories))
	for _, mem := range model.Memories {
		region := devicemodel.MemoryRegion{Name: mem.Name, Access: "rwx"}
		switch mem.Kind() {
		case tables.KindPrimaryRAM:
			region.Start = devicemodel.Address(sramBase + offset)
			region.Size = primaryKiB * kib
			offset += region.Size
		case tables.KindRAMBank:
			region.Start = devicemodel.Address(sramBase + offset)
			region.Size = mem.Size * kib
			offset += region.Size
		case tables.KindFlash:
			region.Access = "rx"
			region.Start = devicemodel.Address(fam.Start["flash"])
			region.Size = flashKiB * kib
		default:
			region.Start = devicemodel.Address(fam.Start[mem.Name])
			region.Size = mem.Size * kib
		}
		regions = append(regions, region)
	}

	return memoryModel{ram: ramKiB * kib, flash: flashKiB * kib, regions: regions}, nil
}

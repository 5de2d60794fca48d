package stm32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/devfile/internal/testutil"
	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
	"github.com/OpenTraceLab/devfile/pkg/identifier"
	"github.com/OpenTraceLab/devfile/pkg/tables"
)

func defaultTables(t *testing.T) *tables.Tables {
	t.Helper()
	tbl, err := tables.Default()
	require.NoError(t, err)
	return tbl
}

func TestBuildMemoryModelF407(t *testing.T) {
	mem, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
		device: "stm32f407vgtx",
		id:     identifier.MustParse("STM32F407VGTx"),
		combo:  "STM32F407V(E-G)Tx",
		rams:   []uint64{192, 192},
		flash:  []uint64{512, 1024},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(192*1024), mem.ram)
	assert.Equal(t, uint64(1024*1024), mem.flash)

	want := []devicemodel.MemoryRegion{
		{Name: "sram1", Access: "rwx", Start: 0x20000000, Size: 112 * 1024},
		{Name: "sram2", Access: "rwx", Start: 0x2001C000, Size: 16 * 1024},
		{Name: "flash", Access: "rx", Start: 0x08000000, Size: 1024 * 1024},
		{Name: "ccm", Access: "rwx", Start: 0x10000000, Size: 64 * 1024},
		{Name: "backup", Access: "rwx", Start: 0x40024000, Size: 4 * 1024},
	}
	assert.Equal(t, want, mem.regions)

	// The SRAM banks add up to the reported total together with CCM.
	var sram uint64
	for _, r := range mem.regions {
		if r.Name == "sram1" || r.Name == "sram2" || r.Name == "ccm" {
			sram += r.Size
		}
	}
	assert.Equal(t, mem.ram, sram)
}

func TestBuildMemoryModelFirstVariant(t *testing.T) {
	mem, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
		device: "stm32f407vetx",
		id:     identifier.MustParse("STM32F407VETx"),
		combo:  "STM32F407V(E-G)Tx",
		rams:   []uint64{192, 192},
		flash:  []uint64{512, 1024},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(512*1024), mem.flash)
	assert.Equal(t, "flash", mem.regions[2].Name)
	assert.Equal(t, uint64(512*1024), mem.regions[2].Size)
}

func TestBuildMemoryModelSizeFallback(t *testing.T) {
	tests := []struct {
		name  string
		combo string
		ref   string
	}{
		{"no size group", "STM32F103C8Tx", "STM32F103CBTx"},
		{"size id not listed", "STM32F103C(8-B)Tx", "STM32F103C6Tx"},
		{"unbalanced group", "STM32F103C(8-BTx", "STM32F103CBTx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
				device: "dev",
				id:     identifier.MustParse(tt.ref),
				combo:  tt.combo,
				rams:   []uint64{20, 20},
				flash:  []uint64{64, 128},
			})
			require.NoError(t, err)
			assert.Equal(t, uint64(64*1024), mem.flash)
		})
	}
}

func TestSizeIndexFourVariants(t *testing.T) {
	log := testutil.NewTestLogger(t)
	assert.Equal(t, 1, sizeIndex(log, "STM32F401C(4-6-8-B)Ux", "6", 4))
	assert.Equal(t, 3, sizeIndex(log, "STM32F401C(4-6-8-B)Ux", "b", 4))
	// A position the device does not report falls back to the first one.
	assert.Equal(t, 0, sizeIndex(log, "STM32F401C(4-6-8-B)Ux", "b", 2))
}

func TestBuildMemoryModelNotFound(t *testing.T) {
	_, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
		device: "stm32f479vgtx",
		id:     identifier.MustParse("STM32F479VGTx"),
		combo:  "STM32F479VGTx",
		rams:   []uint64{384},
		flash:  []uint64{1024},
	})
	var modelErr *MemoryModelNotFoundError
	require.True(t, errors.As(err, &modelErr))
	assert.Equal(t, "f4", modelErr.Family)
	assert.Equal(t, "479", modelErr.Name)
}

func TestBuildMemoryModelMissingSizes(t *testing.T) {
	_, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
		device: "stm32f407vgtx",
		id:     identifier.MustParse("STM32F407VGTx"),
		combo:  "STM32F407V(E-G)Tx",
		flash:  []uint64{1024},
	})
	assert.Error(t, err)
}

func TestBuildMemoryModelBankTooLarge(t *testing.T) {
	_, err := buildMemoryModel(defaultTables(t), testutil.NewTestLogger(t), memoryInput{
		device: "stm32f407vgtx",
		id:     identifier.MustParse("STM32F407VGTx"),
		combo:  "STM32F407V(E-G)Tx",
		rams:   []uint64{32},
		flash:  []uint64{1024},
	})
	assert.Error(t, err)
}

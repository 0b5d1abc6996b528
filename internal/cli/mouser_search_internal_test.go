package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/mouser"
)

func TestFirstMouserPrice(t *testing.T) {
	assert.Empty(t, firstMouserPrice(mouser.Part{}))

	part := mouser.Part{PriceBreaks: []mouser.PriceBreak{
		{Quantity: 1, Price: "$0.50"},
		{Quantity: 100, Price: "$0.40"},
	}}
	assert.Equal(t, "$0.50", firstMouserPrice(part))
}

func TestBuildMouserPickItems(t *testing.T) {
	parts := []mouser.Part{
		{
			ManufacturerPartNumber: "STM32G071CBT6",
			Manufacturer:           "STMicroelectronics",
			Description:            "ARM MCU",
			Availability:           "5000 In Stock",
			PriceBreaks:            []mouser.PriceBreak{{Quantity: 1, Price: "$2.50"}},
		},
		{ManufacturerPartNumber: "X2"},
	}

	items := buildMouserPickItems(parts)
	require.Len(t, items, 2)

	assert.Equal(t, "STM32G071CBT6", items[0].PartNumber)
	assert.Equal(t, "STMicroelectronics", items[0].Manufacturer)
	assert.Equal(t, "$2.50", items[0].Price)
	assert.Equal(t, "mouser", items[0].Source)
	assert.Empty(t, items[1].Price)
}

func TestRenderMouserTable(t *testing.T) {
	parts := []mouser.Part{{
		ManufacturerPartNumber: "STM32G071CBT6",
		Manufacturer:           "STMicroelectronics",
		Description:            "ARM MCU",
		Availability:           "5000 In Stock",
		PriceBreaks:            []mouser.PriceBreak{{Quantity: 1, Price: "$2.50"}},
	}}

	cmd, buf := captureCmd()
	require.NoError(t, renderMouserTable(cmd, parts))

	output := buf.String()
	assert.Contains(t, output, "Part Number")
	assert.Contains(t, output, "Availability")
	assert.Contains(t, output, "STM32G071CBT6")
	assert.Contains(t, output, "$2.50")
}

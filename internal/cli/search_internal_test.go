package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/digikey"
	"github.com/akiselev/datasheet/internal/mouser"
)

func TestMouserSearchHits(t *testing.T) {
	parts := []mouser.Part{{
		ManufacturerPartNumber: "STM32G071CBT6",
		Manufacturer:           "STMicroelectronics",
		Description:            "ARM MCU",
		Availability:           "5000 In Stock",
		PriceBreaks:            []mouser.PriceBreak{{Quantity: 1, Price: "$2.50"}},
		DataSheetURL:           "https://www.mouser.com/ds.pdf",
		ProductDetailURL:       "https://www.mouser.com/p",
	}}

	hits := mouserSearchHits(parts)
	require.Len(t, hits, 1)
	assert.Equal(t, searchHit{
		PartNumber:   "STM32G071CBT6",
		Manufacturer: "STMicroelectronics",
		Description:  "ARM MCU",
		Availability: "5000 In Stock",
		Price:        "$2.50",
		Source:       "mouser",
		DatasheetURL: "https://www.mouser.com/ds.pdf",
		ProductURL:   "https://www.mouser.com/p",
	}, hits[0])
}

func TestDigikeySearchHits(t *testing.T) {
	products := []digikey.Product{{
		ManufacturerPartNumber: "RP2040",
		Manufacturer:           digikey.Manufacturer{Name: "Raspberry Pi"},
		ProductDescription:     "Dual ARM Cortex-M0+ MCU",
		QuantityAvailable:      24013,
		UnitPrice:              0.8,
		DataSheetURL:           "https://datasheets.raspberrypi.com/rp2040.pdf",
		ProductURL:             "https://www.digikey.com/rp2040",
	}}

	hits := digikeySearchHits(products)
	require.Len(t, hits, 1)
	assert.Equal(t, "RP2040", hits[0].PartNumber)
	assert.Equal(t, "24013 In Stock", hits[0].Availability)
	assert.Equal(t, "$0.8000", hits[0].Price)
	assert.Equal(t, "digikey", hits[0].Source)
}

func TestRenderSearchHits(t *testing.T) {
	hits := []searchHit{
		{PartNumber: "STM32G071CBT6", Manufacturer: "STMicroelectronics", Source: "mouser"},
		{PartNumber: "RP2040", Manufacturer: "Raspberry Pi", Source: "digikey"},
	}

	cmd, buf := captureCmd()
	require.NoError(t, renderSearchHits(cmd, hits))

	output := buf.String()
	assert.Contains(t, output, "Source")
	assert.Contains(t, output, "STM32G071CBT6")
	assert.Contains(t, output, "mouser")
	assert.Contains(t, output, "RP2040")
	assert.Contains(t, output, "digikey")
}

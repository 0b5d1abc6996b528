package digikey

// Response shapes mirror the v4 API's PascalCase JSON field names.

type keywordSearchRequest struct {
	Keywords            string `json:"Keywords"`
	RecordCount         int    `json:"RecordCount,omitempty"`
	RecordStartPosition int    `json:"RecordStartPosition,omitempty"`
}

// SearchResponse is the keyword search payload. ProductsCount counts all
// matches, not just the page carried in Products.
type SearchResponse struct {
	Products                       []Product `json:"Products"`
	ProductsCount                  int       `json:"ProductsCount"`
	ExactManufacturerProductsCount int       `json:"ExactManufacturerProductsCount"`
}

// Product is one catalog entry. The exact part lookup returns a bare
// Product, the keyword search a page of them.
type Product struct {
	DigiKeyPartNumber      string       `json:"DigiKeyPartNumber"`
	ManufacturerPartNumber string       `json:"ManufacturerPartNumber"`
	Manufacturer           Manufacturer `json:"Manufacturer"`

	ProductDescription  string `json:"ProductDescription"`
	DetailedDescription string `json:"DetailedDescription"`

	DataSheetURL string `json:"DataSheetUrl"`
	ProductURL   string `json:"ProductUrl"`
	PrimaryPhoto string `json:"PrimaryPhoto"`

	QuantityAvailable          int `json:"QuantityAvailable"`
	MinimumOrderQuantity       int `json:"MinimumOrderQuantity"`
	ManufacturerPublicQuantity int `json:"ManufacturerPublicQuantity"`

	UnitPrice       float64       `json:"UnitPrice"`
	StandardPricing []PriceBreak  `json:"StandardPricing"`
	Packaging       PackagingInfo `json:"Packaging"`

	RoHsStatus string `json:"RoHsStatus"`
	LeadStatus string `json:"LeadStatus"`
	PartStatus string `json:"PartStatus"`

	Parameters []Parameter `json:"Parameters"`
}

// Manufacturer identifies the maker of a part.
type Manufacturer struct {
	Name string `json:"Name"`
	ID   int    `json:"Id"`
}

// PriceBreak is one row of a part's quantity price table.
type PriceBreak struct {
	BreakQuantity int     `json:"BreakQuantity"`
	UnitPrice     float64 `json:"UnitPrice"`
	TotalPrice    float64 `json:"TotalPrice"`
}

// PackagingInfo carries the packaging description, for example "Tape & Reel".
type PackagingInfo struct {
	Value string `json:"Value"`
}

// Parameter is one technical attribute row, for example "Core Processor" /
// "ARM Cortex-M0+".
type Parameter struct {
	Parameter string `json:"Parameter"`
	Value     string `json:"Value"`
}

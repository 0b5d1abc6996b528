package mouser

import "encoding/json"

// Request and response shapes mirror the API's JSON field names exactly, so
// captured traffic can be compared against the vendor documentation.

type searchByKeywordRequest struct {
	SearchByKeywordRequest keywordQuery `json:"SearchByKeywordRequest"`
}

type keywordQuery struct {
	Keyword        string `json:"Keyword"`
	Records        int    `json:"Records"`
	StartingRecord int    `json:"StartingRecord"`
}

type searchByPartRequest struct {
	SearchByPartRequest partQuery `json:"SearchByPartRequest"`
}

type partQuery struct {
	MouserPartNumber string `json:"MouserPartNumber"`
}

// apiError is one entry of the response-level Errors array.
type apiError struct {
	Message string `json:"Message"`
}

type searchResponse struct {
	Errors        []apiError     `json:"Errors"`
	SearchResults *SearchResults `json:"SearchResults"`
}

// SearchResults is the payload of a successful search. NumberOfResult counts
// all matches, not just the page carried in Parts.
type SearchResults struct {
	NumberOfResult int    `json:"NumberOfResult"`
	Parts          []Part `json:"Parts"`
}

// Part is one catalog entry.
type Part struct {
	MouserPartNumber       string `json:"MouserPartNumber"`
	ManufacturerPartNumber string `json:"ManufacturerPartNumber"`
	Manufacturer           string `json:"Manufacturer"`
	Description            string `json:"Description"`
	Category               string `json:"Category"`

	// Availability is a display string like "4280 In Stock";
	// AvailabilityInStock carries the bare count.
	Availability        string `json:"Availability"`
	AvailabilityInStock string `json:"AvailabilityInStock"`

	// AvailabilityOnOrder is a plain string in some responses and an array
	// of objects in others. Kept raw so either shape decodes.
	AvailabilityOnOrder json.RawMessage `json:"AvailabilityOnOrder,omitempty"`

	FactoryStock    string `json:"FactoryStock"`
	LeadTime        string `json:"LeadTime"`
	LifecycleStatus string `json:"LifecycleStatus"`
	Min             string `json:"Min"`
	Mult            string `json:"Mult"`

	DataSheetURL     string `json:"DataSheetUrl"`
	ProductDetailURL string `json:"ProductDetailUrl"`
	ImagePath        string `json:"ImagePath"`
	ROHSStatus       string `json:"ROHSStatus"`

	PriceBreaks []PriceBreak `json:"PriceBreaks"`
}

// PriceBreak is one row of a part's quantity price table. Price arrives as a
// display string with the currency symbol baked in, for example "$1.23".
type PriceBreak struct {
	Quantity int    `json:"Quantity"`
	Price    string `json:"Price"`
	Currency string `json:"Currency"`
}

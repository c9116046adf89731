package graphql

// ItemInput is one cart line in an estimate request.
type ItemInput struct {
	WeightGrams *float64 `json:"weightGrams" validate:"omitempty,gte=0"`
	HeightCm    float64  `json:"heightCm" validate:"gte=0"`
	WidthCm     float64  `json:"widthCm" validate:"gte=0"`
	LengthCm    float64  `json:"lengthCm" validate:"gte=0"`
}

// EstimateShippingInput is the argument of the estimateShipping query.
type EstimateShippingInput struct {
	PostalCode string      `json:"postalCode"`
	Items      []ItemInput `json:"items" validate:"dive"`
	Subtotal   *float64    `json:"subtotal" validate:"omitempty,gte=0"`
	Carriers   []string    `json:"carriers"`
}

type Destination struct {
	PostalCode string `json:"postalCode"`
	State      string `json:"state"`
	Region     string `json:"region"`
	Tier       string `json:"tier"`
}

type RateOption struct {
	RateID       string  `json:"rateId"`
	Carrier      string  `json:"carrier"`
	Service      string  `json:"service"`
	Name         string  `json:"name"`
	ServiceType  string  `json:"serviceType"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Days         int     `json:"days"`
	ExpiresAt    string  `json:"expiresAt"`
	FreeOfCharge bool    `json:"freeOfCharge"`
}

type Error struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Carrier *string `json:"carrier"`
}

type ResponseMetadata struct {
	RequestID  string `json:"requestId"`
	DurationMs int    `json:"durationMs"`
	Degraded   bool   `json:"degraded"`
}

type EstimateShippingResult struct {
	Success      bool             `json:"success"`
	QuoteIDs     []string         `json:"quoteIds"`
	Destination  *Destination     `json:"destination"`
	FreeShipping bool             `json:"freeShipping"`
	Rates        []*RateOption    `json:"rates"`
	Errors       []*Error         `json:"errors"`
	Metadata     ResponseMetadata `json:"metadata"`
}

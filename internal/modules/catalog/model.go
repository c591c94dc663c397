package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// CatalogItem is the API-facing shape of one sellable product definition.
// First-class attributes live in dedicated storage columns; everything in
// Specifications is packed into the specifications JSON column.
type CatalogItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Sport     string  `json:"sport"`
	SKU       string  `json:"sku"`
	Status    string  `json:"status"`
	BasePrice float64 `json:"basePrice"`
	UnitCost  float64 `json:"unitCost"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Specifications
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Specifications holds the extension fields of a catalog item.
type Specifications struct {
	Fabric               string     `json:"fabric"`
	Description          string     `json:"description"`
	MinQuantity          int        `json:"minQuantity"`
	MaxQuantity          int        `json:"maxQuantity"`
	BuildInstructions    string     `json:"buildInstructions"`
	ETADays              string     `json:"etaDays"`
	Sizes                StringList `json:"sizes"`
	Colors               StringList `json:"colors"`
	CustomizationOptions StringList `json:"customizationOptions"`
}

// StringList is an ordered sequence of strings, duplicates and order preserved.
// It decodes from three encodings clients are known to send: a JSON array, a
// comma-separated string, or a JSON array packed inside a string. Anything
// unreadable decodes to an empty list rather than failing the whole request.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = StringList{}
		return nil
	}
	*l = parseStringList(s)
	return nil
}

// Money is a non-negative decimal amount. It decodes from a JSON number or a
// numeric string; unparsable or negative values clamp to zero.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*m = 0
			return nil
		}
		f = parsed
	}
	if f < 0 {
		f = 0
	}
	*m = Money(f)
	return nil
}

// CreateItemRequest is the payload for creating a catalog item.
type CreateItemRequest struct {
	Name                 string      `json:"name"`
	Category             string      `json:"category"`
	Sport                string      `json:"sport"`
	SKU                  string      `json:"sku"`
	Status               string      `json:"status"`
	BasePrice            *Money      `json:"basePrice"`
	UnitCost             *Money      `json:"unitCost"`
	ImageURL             *string     `json:"imageUrl"`
	Fabric               *string     `json:"fabric"`
	Description          *string     `json:"description"`
	MinQuantity          *int        `json:"minQuantity"`
	MaxQuantity          *int        `json:"maxQuantity"`
	BuildInstructions    *string     `json:"buildInstructions"`
	ETADays              *string     `json:"etaDays"`
	Sizes                *StringList `json:"sizes"`
	Colors               *StringList `json:"colors"`
	CustomizationOptions *StringList `json:"customizationOptions"`
}

// UpdateItemRequest is the payload for a partial update. Nil fields were not
// supplied and must not touch the stored value.
type UpdateItemRequest struct {
	Name                 *string     `json:"name"`
	Category             *string     `json:"category"`
	Sport                *string     `json:"sport"`
	SKU                  *string     `json:"sku"`
	Status               *string     `json:"status"`
	BasePrice            *Money      `json:"basePrice"`
	UnitCost             *Money      `json:"unitCost"`
	ImageURL             *string     `json:"imageUrl"`
	Fabric               *string     `json:"fabric"`
	Description          *string     `json:"description"`
	MinQuantity          *int        `json:"minQuantity"`
	MaxQuantity          *int        `json:"maxQuantity"`
	BuildInstructions    *string     `json:"buildInstructions"`
	ETADays              *string     `json:"etaDays"`
	Sizes                *StringList `json:"sizes"`
	Colors               *StringList `json:"colors"`
	CustomizationOptions *StringList `json:"customizationOptions"`
}

// Older clients still send a few fields under their storage-column spelling.
var requestAliases = map[string]string{
	"base_price":            "basePrice",
	"unit_cost":             "unitCost",
	"image_url":             "imageUrl",
	"customization_options": "customizationOptions",
}

// normalizeAliases rewrites legacy snake_case keys to their camelCase names
// before the request struct decodes. The camelCase spelling wins when both are
// present. Keys that match neither spelling are dropped by the struct decoder.
func normalizeAliases(data []byte) []byte {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return data
	}
	for from, to := range requestAliases {
		v, ok := raw[from]
		if !ok {
			continue
		}
		if _, exists := raw[to]; !exists {
			raw[to] = v
		}
		delete(raw, from)
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return data
	}
	return out
}

func (r *CreateItemRequest) UnmarshalJSON(data []byte) error {
	type alias CreateItemRequest
	var a alias
	if err := json.Unmarshal(normalizeAliases(data), &a); err != nil {
		return err
	}
	*r = CreateItemRequest(a)
	return nil
}

func (r *UpdateItemRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateItemRequest
	var a alias
	if err := json.Unmarshal(normalizeAliases(data), &a); err != nil {
		return err
	}
	*r = UpdateItemRequest(a)
	return nil
}

// Validate returns every violation found, not just the first.
func (r CreateItemRequest) Validate() []string {
	var violations []string
	if strings.TrimSpace(r.Name) == "" {
		violations = append(violations, "name is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		violations = append(violations, "category is required")
	}
	if strings.TrimSpace(r.SKU) == "" {
		violations = append(violations, "sku is required")
	}
	if r.MinQuantity != nil && *r.MinQuantity < 1 {
		violations = append(violations, "minQuantity must be at least 1")
	}
	if r.MaxQuantity != nil && *r.MaxQuantity < 1 {
		violations = append(violations, "maxQuantity must be at least 1")
	}
	return violations
}

// ValidationError reports the full violation list for a rejected request.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid catalog item: " + strings.Join(e.Violations, "; ")
}

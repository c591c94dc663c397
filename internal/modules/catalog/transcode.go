package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the specifications blob is missing a field.
const (
	defaultMinQuantity = 1
	defaultMaxQuantity = 1000
	defaultETADays     = "7-10 business days"
)

// Row is the storage-shaped representation of a catalog item, keyed by column
// name. Only the keys present in a Row are written on update, which is what
// makes a partial update leave untouched columns alone.
type Row map[string]any

// toStorageCreate builds a full storage row from a create request. Every
// first-class column is written; status defaults to "active".
func toStorageCreate(req CreateItemRequest, now time.Time) Row {
	row := Row{
		colName:     strings.TrimSpace(req.Name),
		colCategory: strings.TrimSpace(req.Category),
		colSport:    strings.TrimSpace(req.Sport),
		colSKU:      strings.TrimSpace(req.SKU),
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "active"
	}
	row[colStatus] = status
	row[colBasePrice] = moneyValue(req.BasePrice)
	row[colUnitCost] = moneyValue(req.UnitCost)
	if req.ImageURL != nil {
		row[colImageURL] = strings.TrimSpace(*req.ImageURL)
	}
	row[colSpecifications] = packSpecifications(req.extensionFields())
	row[colUpdatedAt] = now
	return row
}

// toStorageUpdate builds a partial storage row: only supplied first-class
// fields appear. The specifications column is ALWAYS written, even when no
// extension field was supplied ("{}") , so a stored blob is replaced wholesale
// unless the service merges first. Callers that want to keep extension data
// must re-send it or run with specification merging enabled.
func toStorageUpdate(req UpdateItemRequest, now time.Time) Row {
	row := Row{}
	setTrimmed(row, colName, req.Name)
	setTrimmed(row, colCategory, req.Category)
	setTrimmed(row, colSport, req.Sport)
	setTrimmed(row, colSKU, req.SKU)
	setTrimmed(row, colStatus, req.Status)
	setTrimmed(row, colImageURL, req.ImageURL)
	if req.BasePrice != nil {
		row[colBasePrice] = float64(*req.BasePrice)
	}
	if req.UnitCost != nil {
		row[colUnitCost] = float64(*req.UnitCost)
	}
	row[colSpecifications] = packSpecifications(req.extensionFields())
	row[colUpdatedAt] = now
	return row
}

func setTrimmed(row Row, col string, v *string) {
	if v != nil {
		row[col] = strings.TrimSpace(*v)
	}
}

func moneyValue(m *Money) float64 {
	if m == nil {
		return 0
	}
	return float64(*m)
}

// extensionFields collects the supplied extension fields under their
// blob key names.
func (r CreateItemRequest) extensionFields() map[string]any {
	return collectExtensions(r.Fabric, r.Description, r.MinQuantity, r.MaxQuantity,
		r.BuildInstructions, r.ETADays, r.Sizes, r.Colors, r.CustomizationOptions)
}

func (r UpdateItemRequest) extensionFields() map[string]any {
	return collectExtensions(r.Fabric, r.Description, r.MinQuantity, r.MaxQuantity,
		r.BuildInstructions, r.ETADays, r.Sizes, r.Colors, r.CustomizationOptions)
}

func collectExtensions(fabric, description *string, minQty, maxQty *int,
	buildInstructions, etaDays *string, sizes, colors, customization *StringList,
) map[string]any {
	m := map[string]any{}
	if fabric != nil {
		m["fabric"] = strings.TrimSpace(*fabric)
	}
	if description != nil {
		m["description"] = strings.TrimSpace(*description)
	}
	if minQty != nil {
		m["minQuantity"] = *minQty
	}
	if maxQty != nil {
		m["maxQuantity"] = *maxQty
	}
	if buildInstructions != nil {
		m["buildInstructions"] = strings.TrimSpace(*buildInstructions)
	}
	if etaDays != nil {
		m["etaDays"] = strings.TrimSpace(*etaDays)
	}
	if sizes != nil {
		m["sizes"] = *sizes
	}
	if colors != nil {
		m["colors"] = *colors
	}
	if customization != nil {
		m["customizationOptions"] = *customization
	}
	return m
}

func packSpecifications(fields map[string]any) string {
	b, err := json.Marshal(fields)
	if err != nil {
		slog.Warn("failed to encode specifications, writing empty object",
			"op", "catalog.packSpecifications", "err", err)
		return "{}"
	}
	return string(b)
}

// mergeSpecifications overlays the supplied extension fields onto the stored
// blob and repacks the result.
func mergeSpecifications(stored any, fields map[string]any) string {
	base := parseSpecificationsMap(stored)
	for k, v := range fields {
		base[k] = v
	}
	return packSpecifications(base)
}

// fromStorage translates a storage row back into the API shape. It never
// fails: a nil row yields nil, anything unreadable inside the row degrades to
// the field's default and logs a warning. The four identity strings and both
// prices are always present in the output.
func fromStorage(row Row) *CatalogItem {
	if row == nil {
		return nil
	}
	item := &CatalogItem{
		ID:        stringField(row, colID),
		Name:      stringField(row, colName),
		Category:  stringField(row, colCategory),
		Sport:     stringField(row, colSport),
		SKU:       stringField(row, colSKU),
		Status:    stringField(row, colStatus),
		BasePrice: numberField(row, colBasePrice),
		UnitCost:  numberField(row, colUnitCost),
		ImageURL:  stringField(row, colImageURL),
		CreatedAt: timeField(row, colCreatedAt),
		UpdatedAt: timeField(row, colUpdatedAt),
	}
	item.Specifications = unpackSpecifications(row[colSpecifications])
	return item
}

func stringField(row Row, col string) string {
	switch v := row[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func numberField(row Row, col string) float64 {
	switch v := row[col].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		return parseNumber(string(v))
	case string:
		return parseNumber(v)
	default:
		return 0
	}
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func timeField(row Row, col string) time.Time {
	if t, ok := row[col].(time.Time); ok {
		return t
	}
	return time.Time{}
}

// unpackSpecifications parses the specifications blob and applies per-field
// defaulting for every extension field.
func unpackSpecifications(raw any) Specifications {
	m := parseSpecificationsMap(raw)
	return Specifications{
		Fabric:               specString(m, "fabric", ""),
		Description:          specString(m, "description", ""),
		MinQuantity:          specQuantity(m, "minQuantity", defaultMinQuantity),
		MaxQuantity:          specQuantity(m, "maxQuantity", defaultMaxQuantity),
		BuildInstructions:    specString(m, "buildInstructions", ""),
		ETADays:              specString(m, "etaDays", defaultETADays),
		Sizes:                specList(m, "sizes"),
		Colors:               specList(m, "colors"),
		CustomizationOptions: specList(m, "customizationOptions"),
	}
}

// parseSpecificationsMap tolerates the blob arriving as JSON text, bytes, an
// already-parsed map, or nil. Malformed text degrades to an empty map with a
// warning. The returned map is always a fresh copy safe to mutate.
func parseSpecificationsMap(raw any) map[string]any {
	var m map[string]any
	switch v := raw.(type) {
	case nil:
	case map[string]any:
		m = make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
	case []byte:
		m = parseSpecificationsText(string(v))
	case string:
		m = parseSpecificationsText(v)
	default:
		slog.Warn("unexpected specifications type, using defaults",
			"op", "catalog.parseSpecificationsMap", "type", fmt.Sprintf("%T", raw))
	}
	if m == nil {
		m = map[string]any{}
	}
	// rows written before the camelCase rename still carry the old key
	if v, ok := m["customization_options"]; ok {
		if _, exists := m["customizationOptions"]; !exists {
			m["customizationOptions"] = v
		}
		delete(m, "customization_options")
	}
	return m
}

func parseSpecificationsText(s string) map[string]any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		slog.Warn("unreadable specifications, using defaults",
			"op", "catalog.parseSpecificationsMap", "err", err)
		return nil
	}
	return m
}

func specString(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func specQuantity(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	var n int
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n < 1 {
		return 1
	}
	return n
}

func specList(m map[string]any, key string) StringList {
	v, ok := m[key]
	if !ok || v == nil {
		return StringList{}
	}
	switch t := v.(type) {
	case []string:
		return StringList(t)
	case StringList:
		return t
	case []any:
		out := make(StringList, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(el))
			}
		}
		return out
	case string:
		return parseStringList(t)
	default:
		return StringList{}
	}
}

// parseStringList reads a list out of a string: either a JSON array packed
// inside the string, or a comma-separated list with per-element trimming and
// empty elements dropped. Unreadable input yields an empty list.
func parseStringList(s string) StringList {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err != nil {
			slog.Warn("unreadable list value, using empty list",
				"op", "catalog.parseStringList", "err", err)
			return StringList{}
		}
		return StringList(arr)
	}
	out := StringList{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

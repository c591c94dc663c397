package catalog

// Column names for the catalog_items table.
const (
	TableName = "catalog_items"

	colID             = "id"
	colName           = "name"
	colCategory       = "category"
	colSport          = "sport"
	colSKU            = "sku"
	colStatus         = "status"
	colBasePrice      = "base_price"
	colUnitCost       = "unit_cost"
	colImageURL       = "base_image_url"
	colSpecifications = "specifications"
	colCreatedAt      = "created_at"
	colUpdatedAt      = "updated_at"
)

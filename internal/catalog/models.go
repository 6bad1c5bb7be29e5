package catalog

// Category is the closed set of product families carried by the catalog.
type Category string

const (
	CategoryElectric  Category = "electric"
	CategoryAcoustic  Category = "acoustic"
	CategoryClassical Category = "classical"
	CategoryBass      Category = "bass"

	// CategoryAll is a view-level pseudo category. Callers resolve it to a
	// full listing themselves; it is never a valid FilterByCategory argument.
	CategoryAll Category = "all"
)

// Valid reports whether c names a real product family.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectric, CategoryAcoustic, CategoryClassical, CategoryBass:
		return true
	}
	return false
}

// Specs holds the build specification of an instrument.
type Specs struct {
	BodyMaterial string `json:"body_material"`
	NeckMaterial string `json:"neck_material"`
	Fingerboard  string `json:"fingerboard"`
	Pickups      string `json:"pickups,omitempty"`
	Strings      int    `json:"strings"`
	Scale        string `json:"scale"`
}

// Product represents one instrument in the catalog. Products are immutable
// once loaded; nothing in the service mutates a product in place.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Images       []string `json:"images,omitempty"`
	Category     Category `json:"category"`
	Specs        Specs    `json:"specifications"`
	InStock      bool     `json:"in_stock"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
}

// FilterSpec is the combination of narrowing criteria derived from a browse
// request. Nil price bounds mean "unset".
type FilterSpec struct {
	Category    Category
	Query       string
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
}

// ProductListResponse wraps a list of products for the JSON surface.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

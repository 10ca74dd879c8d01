package models

// Product is one listing card as it appears in a catalog, search or home grid.
// Price fields hold upstream values until pricing.Margin applies the markup.
type Product struct {
	Name               string   `json:"name"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"originalPrice"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	ProductID          string   `json:"productId"`
	Slug               string   `json:"slug"`
	URL                string   `json:"url,omitempty"`
	Image              string   `json:"image"`
	OldPrice           *float64 `json:"oldPrice"`
	Discount           string   `json:"discount"`
	Rating             *float64 `json:"rating"`
	Reviews            int      `json:"reviews"`
	IsOfficialStore    bool     `json:"isOfficialStore"`
	HasExpressShipping bool     `json:"hasExpressShipping"`
	Campaign           string   `json:"campaign,omitempty"`
	ProfitMargin       float64  `json:"profitMargin"`
	ProfitAmount       float64  `json:"profitAmount"`
}

type Variation struct {
	Name          string   `json:"name"`
	Value         string   `json:"value"`
	Available     bool     `json:"available"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
}

// ProductDetails is the full product page.
type ProductDetails struct {
	Product

	Title           string            `json:"title"`
	SKU             string            `json:"sku"`
	Images          []string          `json:"images"`
	Variations      []Variation       `json:"variations"`
	StockQuantity   *int              `json:"stockQuantity"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"descriptionHtml"`
	Shipping        string            `json:"shipping"`
	Badges          []string          `json:"badges"`
	KeyFeatures     []string          `json:"keyFeatures"`
	Specifications  map[string]string `json:"specifications"`
	InStock         bool              `json:"inStock"`
}

// HasStock reports whether the product can be bought: either it has no
// variations at all, or at least one of them is available.
func (d *ProductDetails) HasStock() bool {
	if len(d.Variations) == 0 {
		return true
	}
	for _, v := range d.Variations {
		if v.Available {
			return true
		}
	}
	return false
}

type CategoryItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Subcategory struct {
	Name  string         `json:"name"`
	URL   string         `json:"url"`
	Items []CategoryItem `json:"items"`
}

type Category struct {
	Name          string        `json:"name"`
	URL           string        `json:"url"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Review struct {
	Rating   int     `json:"rating"`
	Title    string  `json:"title"`
	Comment  string  `json:"comment"`
	Date     *string `json:"date"`
	Author   string  `json:"author"`
	Verified bool    `json:"verified"`
}

// ReviewSet is one page of a product's ratings and reviews.
type ReviewSet struct {
	OverallRating      *float64    `json:"overallRating"`
	TotalRatings       int         `json:"totalRatings"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	Reviews            []Review    `json:"reviews"`
	CurrentPage        int         `json:"currentPage"`
	TotalPages         int         `json:"totalPages"`
	HasMore            bool        `json:"hasMore"`
}

package jumia

import "regexp"

// Schema holds every selector and pattern the extractors depend on. Markup
// drift on the storefront should only ever require editing DefaultSchema.
type Schema struct {
	// PriceNoise is removed from price text before numeric parsing.
	PriceNoise *regexp.Regexp

	Listing ListingSchema
	Detail  DetailSchema
	Reviews ReviewSchema
	Menu    MenuSchema

	// ProductStock applies to the add-to-cart block of products without
	// variations; VariationStock to each popup variation.
	ProductStock   StockPolicy
	VariationStock StockPolicy
}

type ListingSchema struct {
	Card          string
	SponsoredAttr string

	NameAttr     string
	NameFallback string
	BrandAttr    string
	CategoryAttr string
	IDAttr       string
	RatingAttr   string
	ReviewsAttr  string

	Price    string
	OldPrice string
	Discount string
	Image    string
	Campaign string

	OfficialStore   string
	ExpressShipping string
}

type DetailSchema struct {
	Title     string
	Brand     string
	AddToCart string
	SKUAttr   string

	Price    string
	OldPrice string
	Discount string

	GalleryImage      string
	PlaceholderMarker string
	ThumbSegment      string
	LargeSegment      string

	Rating             string
	RatingPattern      *regexp.Regexp
	ReviewCount        string
	ReviewCountPattern *regexp.Regexp

	// Primary variation strategy: checkbox/radio inputs.
	VariationInput    string
	VariationDisabled string

	// Fallback variation strategy: popup forms.
	PopupForm      string
	PopupName      string
	PopupPrice     string
	PopupStock     string
	PopupDisabled  string
	PopupValueAttr string

	// StockText is searched beneath the parent of AddToCart.
	StockText string

	Description     string
	Shipping        string
	Badges          string
	OfficialBadge   string
	KeyFeatures     string
	MaxFeatureLen   int
	SpecRows        string
	SpecLabel       string
	SpecValue       string
	MaxSpecLabelLen int
}

type ReviewSchema struct {
	OverallRating string
	TotalRatings  string
	FirstNumber   *regexp.Regexp

	DistributionRow   string
	DistributionCount string
	CountPattern      *regexp.Regexp

	Article      string
	StarsFill    string
	WidthPattern *regexp.Regexp
	Title        string
	Comment      string
	DateAuthor   string
	DatePattern  *regexp.Regexp
	AuthorRegexp *regexp.Regexp
	Verified     string

	LastPage    string
	PagePattern *regexp.Regexp

	AnonymousAuthor string
}

// MenuSchema describes the storefront's flyout category menu.
type MenuSchema struct {
	Flyout    string
	Container string
	MainLink  string
	MainName  string
	Submenu   string
	Group     string
	GroupLink string
	Item      string
}

// StockPolicy turns free stock text into a quantity. FewUnitsQuantity and
// InStockQuantity are placeholder approximations, not figures published by
// the storefront. An empty InStock phrase disables that branch.
type StockPolicy struct {
	UnitsLeft        *regexp.Regexp
	FewUnits         string
	FewUnitsQuantity int
	InStock          string
	InStockQuantity  int
}

var (
	unitsLeftPattern = regexp.MustCompile(`(?i)(\d+)\s*units?\s*left`)
	firstNumber      = regexp.MustCompile(`(\d+)`)
)

// DefaultSchema matches jumia.com.ng markup.
var DefaultSchema = &Schema{
	PriceNoise: regexp.MustCompile(`[₦,\s]`),

	Listing: ListingSchema{
		Card:          "a.core",
		SponsoredAttr: "data-mirakl-click-ad-id",

		NameAttr:     "data-gtm-name",
		NameFallback: "h3.name",
		BrandAttr:    "data-gtm-brand",
		CategoryAttr: "data-gtm-category",
		IDAttr:       "data-gtm-id",
		RatingAttr:   "data-gtm-dimension27",
		ReviewsAttr:  "data-gtm-dimension26",

		Price:    ".prc",
		OldPrice: ".old",
		Discount: ".bdg._dsct",
		Image:    "img.img",
		Campaign: ".bdg.camp",

		OfficialStore:   ".bdg._mall",
		ExpressShipping: ".ic.xprss",
	},

	Detail: DetailSchema{
		Title:     "h1.-fs20",
		Brand:     ".col10 .-phs .-pvxs a._more",
		AddToCart: "#add-to-cart",
		SKUAttr:   "data-sku",

		Price:    ".col10 .-phs .-hr span.-b.-ubpt",
		OldPrice: ".col10 .-phs .-hr span.-gy5",
		Discount: ".bdg._dsct._dyn",

		GalleryImage:      "#imgs .itm img",
		PlaceholderMarker: "data:image/svg",
		ThumbSegment:      "/500x500/",
		LargeSegment:      "/680x680/",

		Rating:             ".stars._m._al",
		RatingPattern:      regexp.MustCompile(`(\d+\.?\d*)\s*out of`),
		ReviewCount:        ".col10 .-phs a._more",
		ReviewCountPattern: regexp.MustCompile(`\((\d+)\s*verified ratings\)`),

		VariationInput:    ".var-w input.vi",
		VariationDisabled: "_dis",

		PopupForm:      `.cw .cont form[data-var="true"]`,
		PopupName:      ".-m.-fs16",
		PopupPrice:     ".-ubpt.-tal.-m",
		PopupStock:     ".-df.-i-ctr.-fs12",
		PopupDisabled:  "button[disabled]",
		PopupValueAttr: "data-svar",

		StockText: ".-df.-i-ctr.-fs12, .stock-info",

		Description:     ".markup.-mhm.-pvl",
		Shipping:        ".markup.-fs12.-pbs",
		Badges:          ".col10 .-df.-i-ctr.-pts .bdg, .col10 .-df.-i-ctr.-pts a.bdg",
		OfficialBadge:   "official store",
		KeyFeatures:     ".card.-mtm.-pvl ul li",
		MaxFeatureLen:   200,
		SpecRows:        ".card.-mtm.-pvl table tr",
		SpecLabel:       "th",
		SpecValue:       "td",
		MaxSpecLabelLen: 100,
	},

	Reviews: ReviewSchema{
		OverallRating: ".-fs29 .-b",
		TotalRatings:  ".-fs16.-pts",
		FirstNumber:   firstNumber,

		DistributionRow:   "ul.-ptxs.-mts.-pbm li",
		DistributionCount: ".-gy5",
		CountPattern:      regexp.MustCompile(`\((\d+)\)`),

		Article:      "article.-pvs",
		StarsFill:    ".stars .in",
		WidthPattern: regexp.MustCompile(`width:\s*(\d+(?:\.\d+)?)%`),
		Title:        "h3.-m.-fs16",
		Comment:      "p.-pvs",
		DateAuthor:   ".-df.-j-bet.-i-ctr.-gy5 .-pvs",
		DatePattern:  regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`),
		AuthorRegexp: regexp.MustCompile(`by\s+(.+)$`),
		Verified:     ".-df.-i-ctr.-gn5",

		LastPage:    `.pg-w a[aria-label*="Last Page"]`,
		PagePattern: regexp.MustCompile(`page=(\d+)`),

		AnonymousAuthor: "Anonymous",
	},

	Menu: MenuSchema{
		Flyout:    ".flyout-w",
		Container: ".flyout",
		MainLink:  "a.itm",
		MainName:  ".text",
		Submenu:   ".sub",
		Group:     ".cat",
		GroupLink: "a.tit",
		Item:      "a.s-itm",
	},

	ProductStock: StockPolicy{
		UnitsLeft:        unitsLeftPattern,
		FewUnits:         "few units",
		FewUnitsQuantity: 5,
		InStock:          "in stock",
		InStockQuantity:  99,
	},
	VariationStock: StockPolicy{
		UnitsLeft:        unitsLeftPattern,
		FewUnits:         "few units",
		FewUnitsQuantity: 5,
	},
}

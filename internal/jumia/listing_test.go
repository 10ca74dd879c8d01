package jumia

import (
	"testing"

	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body><div class="-paxs row _no-g _4cl-3cm-shs">
<article class="prd _fb col c-prd">
  <a class="core" href="/tecno-spark-20-256gb-12345.html"
     data-gtm-name="Tecno Spark 20 256GB" data-gtm-brand="Tecno" data-gtm-category="Phones &amp; Tablets/Mobile Phones"
     data-gtm-id="TE123MP" data-gtm-dimension27="4.3" data-gtm-dimension26="87">
    <div class="img-c"><img class="img" data-src="https://ng.jumia.is/unsafe/fit-in/300x300/1.jpg" src="data:image/svg+xml;base64,xx"></div>
    <div class="info">
      <h3 class="name">Tecno Spark 20 (fallback)</h3>
      <div class="prc">₦ 189,900</div>
      <div class="s-prc-w"><div class="old">₦ 240,000</div><div class="bdg _dsct _sm">21%</div></div>
      <div class="bdg _mall _xs">Official Store</div>
      <div class="bdg camp _xs">Black Friday</div>
      <svg class="ic xprss"></svg>
    </div>
  </a>
</article>
<article class="prd _fb col c-prd">
  <a class="core" href="/sponsored-blender-1.html" data-gtm-name="Sponsored Blender" data-mirakl-click-ad-id="ad-991">
    <div class="prc">₦ 25,000</div>
  </a>
</article>
<article class="prd _fb col c-prd">
  <a class="core" href="/nivea-body-lotion-400ml-555.html" data-gtm-dimension27="" data-gtm-dimension26="abc">
    <img class="img" src="https://ng.jumia.is/2.jpg">
    <h3 class="name">Nivea Body Lotion 400ml</h3>
    <div class="prc">₦ 4,350</div>
  </a>
</article>
<article class="prd _fb col c-prd">
  <a class="core" data-gtm-name="No Link Item" data-mirakl-click-ad-id="">
    <div class="prc">Price unavailable</div>
  </a>
</article>
</div></body></html>`

func TestExtractListing(t *testing.T) {
	doc := markup.MustParse(listingPage)
	products := DefaultSchema.ExtractListing(doc, DefaultOrigin)

	// two sponsored cards (one with an empty ad id) are dropped
	require.Len(t, products, 2)

	phone := products[0]
	require.Equal(t, "Tecno Spark 20 256GB", phone.Name)
	require.Equal(t, 189900.0, phone.Price)
	require.NotNil(t, phone.OldPrice)
	require.Equal(t, 240000.0, *phone.OldPrice)
	require.Equal(t, "21%", phone.Discount)
	require.Equal(t, "Tecno", phone.Brand)
	require.Equal(t, "Phones & Tablets/Mobile Phones", phone.Category)
	require.Equal(t, "TE123MP", phone.ProductID)
	require.Equal(t, "tecno-spark-20-256gb-12345", phone.Slug)
	require.Equal(t, DefaultOrigin+"/tecno-spark-20-256gb-12345.html", phone.URL)
	require.Equal(t, "https://ng.jumia.is/unsafe/fit-in/300x300/1.jpg", phone.Image)
	require.Equal(t, 4.3, *phone.Rating)
	require.Equal(t, 87, phone.Reviews)
	require.True(t, phone.IsOfficialStore)
	require.True(t, phone.HasExpressShipping)
	require.Equal(t, "Black Friday", phone.Campaign)

	lotion := products[1]
	require.Equal(t, "Nivea Body Lotion 400ml", lotion.Name)
	require.Equal(t, 4350.0, lotion.Price)
	require.Nil(t, lotion.OldPrice)
	require.Nil(t, lotion.Rating)
	require.Equal(t, 0, lotion.Reviews)
	require.False(t, lotion.IsOfficialStore)
	require.False(t, lotion.HasExpressShipping)
	require.Equal(t, "https://ng.jumia.is/2.jpg", lotion.Image)
}

func TestExtractCardsOutcomes(t *testing.T) {
	doc := markup.MustParse(`<a class="core" href="/x.html" data-gtm-dimension26="abc"><div class="prc">Call us</div></a>
<a class="core"><h3 class="name">Bare</h3></a>`)
	cards := DefaultSchema.ExtractCards(doc, DefaultOrigin)
	require.Len(t, cards, 2)

	require.Equal(t, Invalid, cards[0].Price.Presence)
	require.Equal(t, 0.0, cards[0].Product.Price)
	require.Equal(t, Invalid, cards[0].Reviews.Presence)
	require.Equal(t, Absent, cards[0].OldPrice.Presence)
	require.Equal(t, Absent, cards[0].Rating.Presence)

	require.Equal(t, "Bare", cards[1].Product.Name)
	require.Equal(t, "", cards[1].Product.Slug)
	require.Equal(t, Absent, cards[1].Price.Presence)
}

func TestExtractListingSkipsOnlySponsored(t *testing.T) {
	page := `<a class="core" data-mirakl-click-ad-id="1"></a>
<a class="core" href="/a.html"></a>
<a class="core" data-mirakl-click-ad-id="2"></a>
<a class="core" href="/b.html"></a>
<a class="core" href="/c.html"></a>`
	products := DefaultSchema.ExtractListing(markup.MustParse(page), DefaultOrigin)
	require.Len(t, products, 3)
	require.Equal(t, []string{"a", "b", "c"}, []string{products[0].Slug, products[1].Slug, products[2].Slug})
}

func TestSlug(t *testing.T) {
	testCases := []struct {
		href string
		slug string
	}{
		{"/tecno-spark-20-12345.html", "tecno-spark-20-12345"},
		{"https://www.jumia.com.ng/tecno-spark-20-12345.html", "tecno-spark-20-12345"},
		{"/mlp-black-friday/", "mlp-black-friday/"},
		{"/tecno-spark-20-12345.html?shop=1#reviews", "tecno-spark-20-12345"},
		{"//www.jumia.com.ng/tecno-spark-20-12345.html", "tecno-spark-20-12345"},
		{"https://www.jumia.com.ng/x%20y-9.html", "x%20y-9"},
		{"/p/x%20y.html", "p/x%20y"},
		{"a b", "a b"},
		{"téléphone-samsung-42", "téléphone-samsung-42"},
		{"", ""},
	}
	for _, test := range testCases {
		got := Slug(test.href)
		require.Equal(t, test.slug, got, test.href)
		require.Equal(t, got, Slug(got), "idempotent for %q", test.href)
	}

	require.Equal(t, "https://www.jumia.com.ng/abc.html", ProductURL(DefaultOrigin+"/", "abc"))
	require.Equal(t, "abc", Slug(ProductURL(DefaultOrigin, "abc")))
}

package jumia

import (
	"strings"
	"testing"

	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/stretchr/testify/require"
)

const detailPage = `<html><body>
<div id="imgs">
  <a class="itm"><img data-src="https://ng.jumia.is/unsafe/fit-in/500x500/product/1.jpg"></a>
  <a class="itm"><img src="data:image/svg+xml;base64,PHN2Zz4="></a>
  <a class="itm"><img src="https://ng.jumia.is/unsafe/fit-in/500x500/product/2.jpg"></a>
  <a class="itm"><img data-src="https://ng.jumia.is/unsafe/fit-in/680x680/product/1.jpg"></a>
</div>
<div class="col10">
  <div class="-phs">
    <h1 class="-fs20 -pts -pbxs">Hisense 43" Smart TV</h1>
    <div class="-pvxs">Brand: <a class="_more" href="/hisense/">Hisense</a></div>
    <div class="stars _m _al">4.2 out of 5</div>
    <a class="_more" href="#reviews">(128 verified ratings)</a>
    <div class="-hr">
      <span class="-b -ubpt -tal -fs24">₦ 265,000</span>
      <span class="-gy5 -lthr">₦ 310,000</span>
      <span class="bdg _dsct _dyn">15%</span>
    </div>
  </div>
  <div class="-df -i-ctr -pts">
    <a class="bdg _mall" href="/mall/">Official Store</a>
    <span class="bdg _glb">Jumia   Global</span>
  </div>
  <div class="var-w">
    <input class="vi" type="radio" id="v1" value="SKU-43">
    <label for="v1">43 inches</label>
    <input class="vi _dis" type="radio" id="v2" value="SKU-50">
    <label for="v2">50 inches</label>
  </div>
  <div><button id="add-to-cart" data-sku="HI123EA">Add to cart</button><p class="-df -i-ctr -fs12">7 units left</p></div>
</div>
<div class="markup -mhm -pvl"><p>A <b>bright</b> panel.</p></div>
<div class="markup -fs12 -pbs">Free delivery in Lagos</div>
<div class="card -mtm -pvl">
  <ul><li>4K UHD</li><li>Dolby Audio</li><li>` + "%LONG%" + `</li></ul>
  <table>
    <tr><th>SKU</th><td>HI123EA</td></tr>
    <tr><th>Weight (kg)</th><td>7</td></tr>
    <tr><th>Empty</th><td></td></tr>
  </table>
</div>
</body></html>`

func detailFixture() string {
	return strings.Replace(detailPage, "%LONG%", strings.Repeat("x", 250), 1)
}

func TestExtractDetails(t *testing.T) {
	p := DefaultSchema.ExtractDetails(markup.MustParse(detailFixture()))
	d := p.Details

	require.Equal(t, `Hisense 43" Smart TV`, d.Title)
	require.Equal(t, d.Title, d.Name)
	require.Equal(t, "Hisense", d.Brand)
	require.Equal(t, "HI123EA", d.SKU)
	require.Equal(t, Found, p.SKU.Presence)

	require.Equal(t, 265000.0, d.Price)
	require.Equal(t, 310000.0, *d.OldPrice)
	require.Equal(t, "15%", d.Discount)

	require.Equal(t, []string{
		"https://ng.jumia.is/unsafe/fit-in/680x680/product/1.jpg",
		"https://ng.jumia.is/unsafe/fit-in/680x680/product/2.jpg",
	}, d.Images)
	require.Equal(t, d.Images[0], d.Image)

	require.Equal(t, 4.2, *d.Rating)
	require.Equal(t, 128, d.Reviews)

	require.Equal(t, "inputs", p.VariationStrategy)
	require.Equal(t, []models.Variation{
		{Name: "43 inches", Value: "SKU-43", Available: true},
		{Name: "50 inches", Value: "SKU-50", Available: false},
	}, d.Variations)
	require.True(t, d.InStock)

	require.Equal(t, 7, *d.StockQuantity)
	require.Equal(t, "A bright panel.", d.Description)
	require.Equal(t, "<p>A <b>bright</b> panel.</p>", d.DescriptionHTML)
	require.Equal(t, "Free delivery in Lagos", d.Shipping)

	require.Equal(t, []string{"Official Store", "Jumia Global"}, d.Badges)
	require.True(t, d.IsOfficialStore)

	require.Equal(t, []string{"4K UHD", "Dolby Audio"}, d.KeyFeatures)
	require.Equal(t, map[string]string{"SKU": "HI123EA", "Weight (kg)": "7"}, d.Specifications)
}

func TestExtractDetailsPopupFallback(t *testing.T) {
	page := `<div class="col10"><div class="-phs"><div class="-hr"><span class="-b -ubpt">₦ 12,000</span></div></div></div>
<div class="cw"><div class="cont">
  <div class="row"><p class="-m -fs16">EU 40</p><span class="-ubpt -tal -m">₦ 12,000</span>
    <span class="-df -i-ctr -fs12">3 units left</span><form data-var="true" data-svar="SZ-40"></form><button>+</button></div>
  <div class="row"><p class="-m -fs16">EU 41</p><span class="-ubpt -tal -m">₦ 12,500</span>
    <span class="-df -i-ctr -fs12">few units left</span><form data-var="true"></form><button disabled>+</button></div>
  <div class="row"><p class="-m -fs16">EU 42</p><span class="-ubpt -tal -m"></span>
    <span class="-df -i-ctr -fs12">Out of stock</span><form data-var="true" data-svar="SZ-42"></form><button disabled>+</button></div>
  <div class="row"><form data-var="true" data-svar="nameless"></form></div>
</div></div>`

	p := DefaultSchema.ExtractDetails(markup.MustParse(page))
	d := p.Details

	require.Equal(t, "popup", p.VariationStrategy)
	require.Len(t, d.Variations, 3)

	require.Equal(t, "EU 40", d.Variations[0].Name)
	require.Equal(t, "SZ-40", d.Variations[0].Value)
	require.True(t, d.Variations[0].Available)
	require.Equal(t, 12000.0, *d.Variations[0].Price)
	require.Equal(t, 3, *d.Variations[0].StockQuantity)

	require.Equal(t, "EU 41", d.Variations[1].Value)
	require.False(t, d.Variations[1].Available)
	require.Equal(t, 5, *d.Variations[1].StockQuantity)

	require.Nil(t, d.Variations[2].Price)
	require.Nil(t, d.Variations[2].StockQuantity)

	require.True(t, d.InStock)
	require.Equal(t, Absent, p.SKU.Presence)
	require.Equal(t, "", d.SKU)
}

func TestExtractDetailsEmptyPage(t *testing.T) {
	p := DefaultSchema.ExtractDetails(markup.MustParse(`<html><body><p>Page not found</p></body></html>`))
	d := p.Details

	require.Equal(t, "", d.Title)
	require.Equal(t, 0.0, d.Price)
	require.Equal(t, Absent, p.Price.Presence)
	require.Nil(t, d.OldPrice)
	require.Nil(t, d.Rating)
	require.Equal(t, 0, d.Reviews)
	require.Nil(t, d.StockQuantity)
	require.Empty(t, d.Images)
	require.NotNil(t, d.Images)
	require.Empty(t, d.Variations)
	require.NotNil(t, d.Variations)
	require.Nil(t, d.KeyFeatures)
	require.Nil(t, d.Specifications)
	require.True(t, d.InStock)
	require.Equal(t, "", p.VariationStrategy)
}

func TestProductStockSentinels(t *testing.T) {
	page := `<div><button id="add-to-cart"></button><span class="stock-info">In stock</span></div>`
	p := DefaultSchema.ExtractDetails(markup.MustParse(page))
	require.Equal(t, 99, *p.Details.StockQuantity)
}

func TestHasStock(t *testing.T) {
	testCases := []struct {
		name       string
		variations []models.Variation
		expected   bool
	}{
		{"no variations", nil, true},
		{"one available", []models.Variation{{Available: false}, {Available: true}}, true},
		{"all unavailable", []models.Variation{{Available: false}, {Available: false}}, false},
	}
	for _, test := range testCases {
		d := models.ProductDetails{Variations: test.variations}
		require.Equal(t, test.expected, d.HasStock(), test.name)
	}
}

type fixedStrategy struct {
	name string
	out  []models.Variation
}

func (f fixedStrategy) Name() string                                { return f.name }
func (f fixedStrategy) Extract(*markup.Document) []models.Variation { return f.out }

func TestResolveVariations(t *testing.T) {
	doc := markup.MustParse("")
	first := fixedStrategy{name: "first"}
	second := fixedStrategy{name: "second", out: []models.Variation{{Name: "M"}}}
	third := fixedStrategy{name: "third", out: []models.Variation{{Name: "L"}}}

	got, name := ResolveVariations(doc, []VariationStrategy{first, second, third})
	require.Equal(t, "second", name)
	require.Equal(t, "M", got[0].Name)

	got, name = ResolveVariations(doc, []VariationStrategy{first})
	require.Equal(t, "", name)
	require.Empty(t, got)
}

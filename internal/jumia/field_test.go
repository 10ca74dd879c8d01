package jumia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	s := DefaultSchema
	testCases := []struct {
		text     string
		value    float64
		presence Presence
	}{
		{"₦ 12,499", 12499, Found},
		{"₦ 1,500 - ₦ 2,000", 1500, Found},
		{"  3,250.50 ", 3250.5, Found},
		{"₦ 0", 0, Found},
		{"", 0, Absent},
		{"  ₦ ", 0, Absent},
		{"Call for price", 0, Invalid},
	}
	for _, test := range testCases {
		got := s.parsePrice(test.text)
		require.Equal(t, test.presence, got.Presence, test.text)
		require.Equal(t, test.value, got.Value, test.text)
	}
}

func TestFieldDefaults(t *testing.T) {
	require.Equal(t, 7, found(7).Or(0))
	require.Equal(t, 3, absent[int]().Or(3))
	require.Equal(t, 3, invalid[int]().Or(3))

	require.Nil(t, absent[int]().Ptr())
	require.Equal(t, 0, *found(0).Ptr())

	require.Nil(t, nonZero(found(0.0)))
	require.Nil(t, nonZero(invalid[float64]()))
	require.Equal(t, 4.5, *nonZero(found(4.5)))

	require.Equal(t, "found", Found.String())
	require.Equal(t, "absent", Absent.String())
	require.Equal(t, "invalid", Invalid.String())
}

func TestCaptureInt(t *testing.T) {
	re := DefaultSchema.Detail.ReviewCountPattern
	require.Equal(t, found(42), captureInt(re, "Samsung(42 verified ratings)"))
	require.Equal(t, Invalid, captureInt(re, "No ratings yet").Presence)
	require.Equal(t, Absent, captureInt(re, "  ").Presence)
}

func TestStockPolicy(t *testing.T) {
	product := DefaultSchema.ProductStock
	testCases := []struct {
		text     string
		value    int
		presence Presence
	}{
		{"3 units left", 3, Found},
		{"1 unit left", 1, Found},
		{"Only 12 UNITS LEFT!", 12, Found},
		{"few units left", 5, Found},
		{"Few units left", 5, Found},
		{"In Stock", 99, Found},
		{"Out of stock", 0, Invalid},
		{"Free delivery on thousands of products", 0, Invalid},
		{"", 0, Absent},
	}
	for _, test := range testCases {
		got := product.Parse(test.text)
		require.Equal(t, test.presence, got.Presence, test.text)
		require.Equal(t, test.value, got.Value, test.text)
	}

	// variations have no in-stock sentinel
	variation := DefaultSchema.VariationStock
	require.Nil(t, variation.Parse("In Stock").Ptr())
	require.Equal(t, 5, *variation.Parse("few units left").Ptr())
}

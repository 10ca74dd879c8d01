package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	c.apply(env(nil))

	require.Equal(t, "jumia", c.Platform)
	require.Equal(t, "https://www.jumia.com.ng", c.Origin)
	require.Equal(t, 15.0, c.ProfitMarginPercent)
	require.Equal(t, "5000", c.HTTPPort)
	require.Equal(t, FetchStatic, c.FetchMode)
	require.Equal(t, "off", c.DelayProfile)
	require.False(t, c.RespectRobots)
}

func TestProfitMargin(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"", 15},
		{"20", 20},
		{" 12.5 ", 12.5},
		{"abc", 15},
		{"0", 15},
	}
	for _, test := range testCases {
		c := DefaultConfig()
		c.apply(env(map[string]string{"PROFIT_MARGIN_PERCENTAGE": test.value}))
		require.Equal(t, test.expected, c.ProfitMarginPercent, test.value)
	}
}

func TestOverrides(t *testing.T) {
	c := DefaultConfig()
	c.apply(env(map[string]string{
		"JUMIA_BASE_URL":        "http://localhost:9000/",
		"JUMIA_CATEGORIES_FILE": "/etc/jumia/categories.json",
		"JUMIA_FETCH_MODE":      "Headless",
		"JUMIA_RESPECT_ROBOTS":  "true",
		"JUMIA_RATE_PER_SECOND": "0.5",
		"JUMIA_RATE_BURST":      "not-a-number",
		"PORT":                  "8081",
		"JUMIA_API_KEY":         "secret",
		"JUMIA_LOG_FORMAT":      "json",
	}))

	require.Equal(t, "http://localhost:9000", c.Origin)
	require.Equal(t, "/etc/jumia/categories.json", c.CategoriesPath)
	require.Equal(t, FetchHeadless, c.FetchMode)
	require.True(t, c.RespectRobots)
	require.Equal(t, 0.5, c.RatePerSecond)
	require.Equal(t, 3, c.RateBurst)
	require.Equal(t, "8081", c.HTTPPort)
	require.Equal(t, "secret", c.APIKey)
	require.Equal(t, "json", c.LogFormat)
}

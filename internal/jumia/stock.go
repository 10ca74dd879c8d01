package jumia

import "strings"

// Parse turns free stock text into a quantity:
// "N units left" gives N, a few-units phrase gives FewUnitsQuantity and, when
// enabled, an in-stock phrase gives InStockQuantity. Anything else is Invalid.
func (p StockPolicy) Parse(text string) Field[int] {
	text = strings.TrimSpace(text)
	if text == "" {
		return absent[int]()
	}
	if n := captureInt(p.UnitsLeft, text); n.Presence == Found {
		return n
	}
	lower := strings.ToLower(text)
	if p.FewUnits != "" && strings.Contains(lower, p.FewUnits) {
		return found(p.FewUnitsQuantity)
	}
	if p.InStock != "" && strings.Contains(lower, p.InStock) {
		return found(p.InStockQuantity)
	}
	return invalid[int]()
}

package jumia

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/titanous/json5"
)

// ConfigError reports a missing or unreadable category file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("load categories from %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadCategories reads the category tree at path on every call and rewrites
// its URLs to absolute form against origin.
func LoadCategories(path, origin string) ([]models.Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var categories []models.Category
	if err := json5.Unmarshal(raw, &categories); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if categories == nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("expected a list of categories")}
	}

	return NormalizeCategories(categories, origin), nil
}

// NormalizeCategories returns a copy of categories with every URL at all
// three levels made absolute. URLs that already carry a scheme are kept.
func NormalizeCategories(categories []models.Category, origin string) []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		c.URL = absolute(origin, c.URL)

		subs := make([]models.Subcategory, len(c.Subcategories))
		for j, sub := range c.Subcategories {
			sub.URL = absolute(origin, sub.URL)

			items := make([]models.CategoryItem, len(sub.Items))
			for k, item := range sub.Items {
				item.URL = absolute(origin, item.URL)
				items[k] = item
			}
			sub.Items = items
			subs[j] = sub
		}
		c.Subcategories = subs
		out[i] = c
	}
	return out
}

// ExtractMenu rebuilds the category tree from a saved copy of the
// storefront's flyout menu. URLs are kept as they appear in the markup.
func (s *Schema) ExtractMenu(doc *markup.Document) []models.Category {
	ms := s.Menu
	categories := []models.Category{}

	doc.Find(ms.Flyout).Each(func(_ int, flyout *goquery.Selection) {
		container := flyout.ChildrenFiltered(ms.Container)
		main := container.ChildrenFiltered(ms.MainLink).First()
		name := markup.Text(main.Find(ms.MainName))
		if name == "" {
			return
		}

		category := models.Category{
			Name:          name,
			URL:           main.AttrOr("href", ""),
			Subcategories: []models.Subcategory{},
		}

		container.ChildrenFiltered(ms.Submenu).Find(ms.Group).Each(func(_ int, group *goquery.Selection) {
			link := group.Find(ms.GroupLink)
			title := markup.Text(link)
			if title == "" {
				return
			}
			sub := models.Subcategory{
				Name:  title,
				URL:   link.AttrOr("href", ""),
				Items: []models.CategoryItem{},
			}
			group.Find(ms.Item).Each(func(_ int, item *goquery.Selection) {
				if n := markup.Text(item); n != "" {
					sub.Items = append(sub.Items, models.CategoryItem{Name: n, URL: item.AttrOr("href", "")})
				}
			})
			category.Subcategories = append(category.Subcategories, sub)
		})

		categories = append(categories, category)
	})

	return categories
}

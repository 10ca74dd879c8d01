package jumia

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
)

// ExtractReviews reads one page of a product's ratings and reviews.
func (s *Schema) ExtractReviews(doc *markup.Document, page int) models.ReviewSet {
	rs := s.Reviews

	set := models.ReviewSet{
		OverallRating:      nonZero(parseFloat(markup.Text(doc.Find(rs.OverallRating)))),
		TotalRatings:       captureInt(rs.FirstNumber, strings.ReplaceAll(markup.Text(doc.Find(rs.TotalRatings)), ",", "")).Or(0),
		RatingDistribution: map[int]int{},
		Reviews:            []models.Review{},
		CurrentPage:        page,
	}

	doc.Find(rs.DistributionRow).Each(func(_ int, li *goquery.Selection) {
		stars := parseInt(firstRune(markup.Text(li)))
		if stars.Presence != Found || stars.Value < 1 || stars.Value > 5 {
			return
		}
		count := strings.ReplaceAll(markup.Text(li.Find(rs.DistributionCount)), ",", "")
		set.RatingDistribution[stars.Value] = captureInt(rs.CountPattern, count).Or(0)
	})

	doc.Find(rs.Article).Each(func(_ int, article *goquery.Selection) {
		dateAuthor := markup.Text(article.Find(rs.DateAuthor).First())
		author := capture(rs.AuthorRegexp, dateAuthor)

		set.Reviews = append(set.Reviews, models.Review{
			Rating:   s.StarRating(article.Find(rs.StarsFill).AttrOr("style", "")).Or(0),
			Title:    markup.Text(article.Find(rs.Title)),
			Comment:  markup.Text(article.Find(rs.Comment).First()),
			Date:     capture(rs.DatePattern, dateAuthor).Ptr(),
			Author:   strings.TrimSpace(author.Or(rs.AnonymousAuthor)),
			Verified: markup.Exists(article, rs.Verified),
		})
	})

	set.TotalPages = captureInt(rs.PagePattern, doc.Find(rs.LastPage).AttrOr("href", "")).Or(0)
	if set.TotalPages < 1 {
		set.TotalPages = 1
	}
	set.HasMore = set.CurrentPage < set.TotalPages

	return set
}

// StarRating converts a star-fill style such as "width:80%" into a 0–5
// rating, rounding halves up.
func (s *Schema) StarRating(style string) Field[int] {
	c := capture(s.Reviews.WidthPattern, style)
	if c.Presence != Found {
		return Field[int]{Presence: c.Presence}
	}
	pct, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		return invalid[int]()
	}
	stars := int(math.Floor(pct*5/100 + 0.5))
	return found(min(max(stars, 0), 5))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

package news

import "github.com/Tramle26/ai-economic-consultant/internal/model"

const (
	noDescription = "No description available"
	unknownSource = "Unknown"
)

type rawArticle struct {
	Title         string
	Summary       string
	URL           string
	BannerImage   string
	SourceLogo    string
	Source        string
	TimePublished string
}

// formatPublished turns YYYYMMDDTHHMMSS into YYYY-MM-DD. Shorter input
// yields "".
func formatPublished(raw string) string {
	if len(raw) < 8 {
		return ""
	}
	return raw[0:4] + "-" + raw[4:6] + "-" + raw[6:8]
}

func normalize(items []rawArticle) []model.NewsArticle {
	articles := make([]model.NewsArticle, 0, len(items))
	for _, item := range items {
		if item.Title == "" {
			continue
		}

		a := model.NewsArticle{
			Title:       item.Title,
			Description: item.Summary,
			URL:         item.URL,
			Image:       item.BannerImage,
			Source:      item.Source,
			PublishedAt: formatPublished(item.TimePublished),
		}
		if a.Description == "" {
			a.Description = noDescription
		}
		if a.Image == "" {
			a.Image = item.SourceLogo
		}
		if a.Source == "" {
			a.Source = unknownSource
		}

		articles = append(articles, a)
		if len(articles) == MaxArticles {
			break
		}
	}
	return articles
}

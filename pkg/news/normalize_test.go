package news

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestFormatPublished(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full timestamp", input: "20260226T075324", want: "2026-02-26"},
		{name: "date only", input: "20260226", want: "2026-02-26"},
		{name: "too short", input: "2026022", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPublished(tt.input))
		})
	}
}

func TestNormalizeDropsUntitledAndCaps(t *testing.T) {
	items := make([]rawArticle, 0, 120)
	for i := 0; i < 120; i++ {
		title := fmt.Sprintf("Story %d", i)
		if i%2 == 1 {
			title = ""
		}
		items = append(items, rawArticle{Title: title, TimePublished: "20240102T093000"})
	}

	articles := normalize(items)

	assert.Equal(t, MaxArticles, len(articles))
	for _, a := range articles {
		assert.NotEqual(t, "", a.Title)
		assert.Equal(t, "2024-01-02", a.PublishedAt)
	}
}

func TestNormalizeKeepsBannerOverLogo(t *testing.T) {
	articles := normalize([]rawArticle{{
		Title:       "t",
		BannerImage: "banner",
		SourceLogo:  "logo",
		Source:      "Benzinga",
	}})

	assert.Equal(t, "banner", articles[0].Image)
	assert.Equal(t, "Benzinga", articles[0].Source)
}

func TestFinnhubArticle(t *testing.T) {
	headline := "Nvidia beats estimates"
	source := "CNBC"
	ts := time.Date(2026, time.March, 1, 14, 30, 0, 0, time.UTC).Unix()

	raw := finnhubArticle(&headline, nil, nil, nil, &source, &ts)
	articles := normalize([]rawArticle{raw})

	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Nvidia beats estimates", articles[0].Title)
	assert.Equal(t, "No description available", articles[0].Description)
	assert.Equal(t, "CNBC", articles[0].Source)
	assert.Equal(t, "2026-03-01", articles[0].PublishedAt)
}

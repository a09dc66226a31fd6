package memory

import (
	"time"

	"palette/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

// Fixtures is the demo content shown before a database is wired in.
func Fixtures() models.Collections {
	return models.Collections{
		Articles: []models.Article{
			{
				ID:        "1",
				Title:     "Social Media Marketing Tips for 2025",
				Body:      "Posting consistently matters more than posting often. Pick two platforms, learn their formats and reuse each idea across both.",
				Excerpt:   "Practical ways to grow an audience without burning out.",
				Tags:      []string{"marketing", "social media", "growth"},
				CreatedAt: day(2025, 1, 15),
			},
			{
				ID:        "2",
				Title:     "How I Plan a Month of Content in One Afternoon",
				Body:      "Batching is the whole trick. Start with a theme per week, then fill in formats.",
				Excerpt:   "A repeatable content calendar workflow.",
				Tags:      []string{"planning", "productivity"},
				CreatedAt: day(2025, 2, 3),
			},
			{
				ID:        "3",
				Title:     "SEO for Creators",
				Body:      "Search traffic compounds. Titles, descriptions and internal links do most of the work.",
				Excerpt:   "",
				Tags:      []string{"seo", "blogging"},
				CreatedAt: day(2025, 3, 21),
			},
		},
		Resources: []models.Resource{
			{
				ID:          "1",
				Title:       "SEO Best Practices 2025",
				Description: "A printable checklist covering titles, metadata and site speed.",
				Tags:        []string{"seo", "marketing", "guide"},
				URL:         "/resources/seo-best-practices-2025.pdf",
			},
			{
				ID:          "2",
				Title:       "Thumbnail Template Pack",
				Description: "Twenty editable thumbnail layouts for video creators.",
				Tags:        []string{"design", "youtube", "templates"},
				URL:         "/resources/thumbnail-template-pack.zip",
			},
			{
				ID:          "3",
				Title:       "Sponsorship Rate Calculator",
				Description: "Spreadsheet for pricing brand deals by reach and engagement.",
				Tags:        []string{"business", "sponsorship"},
				URL:         "/resources/sponsorship-rate-calculator.xlsx",
			},
		},
		Scripts: []models.Script{
			{
				ID:        "1",
				Title:     "Channel Trailer",
				Body:      "Hey, I'm glad you found the channel. Every week I break down one marketing experiment, what worked, what flopped and what I would try next time. If that sounds useful, subscribe and I'll see you on Monday.",
				Tags:      []string{"youtube", "intro"},
				UpdatedAt: day(2025, 1, 28),
			},
			{
				ID:        "2",
				Title:     "Podcast Episode 12: Pricing Digital Products",
				Body:      "Today we're talking about pricing. Most creators undercharge for digital products because they compare themselves to free content.",
				Tags:      []string{"podcast", "business", "digital products"},
				UpdatedAt: day(2025, 3, 5),
			},
		},
		Events: []models.Event{
			{
				ID:          "1",
				Title:       "Weekly Livestream",
				Description: "Live Q&A about marketing and audience growth.",
				Start:       day(2025, 4, 2),
			},
			{
				ID:          "2",
				Title:       "Newsletter Deadline",
				Description: "Final draft of the March newsletter is due.",
				Start:       day(2025, 3, 28),
			},
		},
	}
}

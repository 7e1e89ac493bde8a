package blog

import (
	"time"

	"github.com/uzmarket/bazaar-backend/internal/locale"
)

type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	TitleUz         string     `json:"titleUz"`
	TitleRu         string     `json:"titleRu"`
	TitleEn         string     `json:"titleEn"`
	Content         string     `json:"content"`
	ContentUz       string     `json:"contentUz"`
	ContentRu       string     `json:"contentRu"`
	ContentEn       string     `json:"contentEn"`
	Slug            string     `json:"slug"`
	Tags            []string   `json:"tags"`
	IsPublished     bool       `json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt"`
	FeaturedImage   *string    `json:"featuredImage"`
	MetaDescription *string    `json:"metaDescription"`
	GeneratedByAI   bool       `json:"generatedByAi"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	DisplayTitle   string `json:"displayTitle,omitempty"`
	DisplayContent string `json:"displayContent,omitempty"`
}

func (p *Post) Localize(lang locale.Lang) {
	p.DisplayTitle = locale.Pick(lang, p.Title, p.TitleUz, p.TitleRu, p.TitleEn)
	p.DisplayContent = locale.Pick(lang, p.Content, p.ContentUz, p.ContentRu, p.ContentEn)
}

type Filters struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

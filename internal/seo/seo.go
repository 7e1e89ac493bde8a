package seo

import "time"

// Settings is a singleton: the storefront has exactly one row, created on
// first save.
type Settings struct {
	ID                string    `json:"id"`
	GoogleAnalyticsID *string   `json:"googleAnalyticsId"`
	MetaPixelID       *string   `json:"metaPixelId"`
	CustomHeadCode    *string   `json:"customHeadCode"`
	SiteName          *string   `json:"siteName"`
	SiteDescription   *string   `json:"siteDescription"`
	SiteKeywords      *string   `json:"siteKeywords"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

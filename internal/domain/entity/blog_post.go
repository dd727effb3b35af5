package entity

import (
	"time"
)

type BlogCategory string

const (
	CategoryTechnique  BlogCategory = "technique"
	CategoryBusiness   BlogCategory = "business"
	CategoryRecettes   BlogCategory = "recettes"
	CategoryTendances  BlogCategory = "tendances"
	CategoryConseils   BlogCategory = "conseils"
	CategoryActualites BlogCategory = "actualites"
)

type BlogCategoryInfo struct {
	ID    BlogCategory `json:"id"`
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
}

type BlogPost struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Excerpt      string       `json:"excerpt"`
	Content      string       `json:"content"`
	Author       string       `json:"author"`
	AuthorAvatar string       `json:"authorAvatar,omitempty"`
	PublishedAt  time.Time    `json:"publishedAt"`
	Category     BlogCategory `json:"category"`
	Tags         []string     `json:"tags"`
	ImageURL     string       `json:"imageUrl"`
	ReadTime     int          `json:"readTime"`
	Views        int          `json:"views,omitempty"`
	Featured     bool         `json:"featured,omitempty"`
}

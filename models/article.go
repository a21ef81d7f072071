package models

import (
	"strings"
	"time"
)

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     *string   `json:"image"`
	Tags      []string  `json:"tags" gorm:"serializer:json;type:jsonb"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseTags splits a raw comma-separated tag string into trimmed, non-empty
// entries. Duplicates are kept as typed.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// TagString joins tags back into the comma-separated form used by the edit form.
func (a *Article) TagString() string {
	return strings.Join(a.Tags, ", ")
}

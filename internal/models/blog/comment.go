package blog

import "github.com/yukikurage/demodb/internal/models"

type Comment struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	PostID   uint64 `gorm:"not null;index" json:"post_id"`
	AuthorID uint64 `gorm:"not null;index" json:"author_id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	models.Timestamps

	// Relations
	Post   *Post   `gorm:"foreignKey:PostID" json:"-"`
	Author *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

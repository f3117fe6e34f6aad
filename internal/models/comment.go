package models

type Comment struct {
	ID         int    `json:"id"`
	PostID     int    `json:"post_id"`
	AuthorID   int    `json:"author_id"`
	AuthorName string `json:"author_name"` // joined from users, not a column
	Text       string `json:"text"`
}

package models

// Post is a single blog entry. Date is a display string ("January 2, 2006")
// stamped once at creation time.
type Post struct {
	ID         int    `json:"id"`
	AuthorID   int    `json:"author_id"`
	AuthorName string `json:"author_name"` // joined from users, not a column
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Date       string `json:"date"`
	Body       string `json:"body"`
	ImageURL   string `json:"img_url"`
}

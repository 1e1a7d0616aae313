package domain

// Comment represents a comment attached to a community post
type Comment struct {
	PostID  string `json:"post_id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

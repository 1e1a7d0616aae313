package domain

// Post kinds accepted by the community feed.
const (
	PostKindProject  = "project"
	PostKindQuestion = "question"
)

// CommunityPost represents a project showcase or a question posted by a user
type CommunityPost struct {
	Language string `json:"language"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
}

// IsValidPostKind reports whether kind is one of the accepted post kinds.
func IsValidPostKind(kind string) bool {
	return kind == PostKindProject || kind == PostKindQuestion
}

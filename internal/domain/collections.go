package domain

// Document store collection names. The store adapter maps each name to an
// explicit schema; writes against any other name are rejected.
const (
	CollectionPosts       = "communitypost"
	CollectionComments    = "comment"
	CollectionSubmissions = "submission"
)

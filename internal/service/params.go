package service

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type PostInput struct {
	Title   string
	Content string
}

type CommentInput struct {
	PostID  string // not checked against existing posts
	Content string
}

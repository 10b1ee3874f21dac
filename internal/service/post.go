package service

import (
	"github.com/komachi-dev/komachi/internal/domain"
	"github.com/komachi-dev/komachi/internal/posterid"
)

type PostService interface {
	Create(data domain.PostCreationData) (domain.Post, error)
}

type Post struct {
	storage   PostStorage
	validator PostValidator
}

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.Post, error)
}

type PostValidator interface {
	Body(body string) error
	Name(name string) error
}

func NewPost(storage PostStorage, validator PostValidator) PostService {
	return &Post{storage, validator}
}

// Create appends a post to an open thread. Thread existence, board policy
// and the capacity ceiling are enforced by the storage transaction; this
// layer validates input and labels the result.
func (p *Post) Create(data domain.PostCreationData) (domain.Post, error) {
	if err := p.validator.Body(data.Body); err != nil {
		return domain.Post{}, err
	}
	if err := p.validator.Name(data.Name); err != nil {
		return domain.Post{}, err
	}

	post, err := p.storage.CreatePost(data)
	if err != nil {
		return domain.Post{}, err
	}

	labelPost(&post)
	return post, nil
}

// labelPost derives the per-day poster label and drops the raw address so
// it cannot leak past the service boundary.
func labelPost(post *domain.Post) {
	post.PosterId = posterid.Derive(post.SubmitterAddress, post.CreatedAt)
	post.SubmitterAddress = ""
}

func labelPosts(posts []*domain.Post) {
	for _, post := range posts {
		labelPost(post)
	}
}

package api

import (
	"time"

	"github.com/komachi-dev/komachi/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body" validate:"required"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=255"`
}

type CreatePostRequest struct {
	Body string `json:"body" validate:"required"`
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
}

type CreateBoardRequest struct {
	Key         string `json:"key" validate:"required,max=32"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	CategoryId  int64  `json:"category_id" validate:"required"`
	IsReadOnly  bool   `json:"is_read_only,omitempty"`
}

type SetBoardReadOnlyRequest struct {
	IsReadOnly *bool `json:"is_read_only" validate:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

// Response DTOs

type BoardResponse struct {
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsReadOnly  bool      `json:"is_read_only"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	Id          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SortOrder   int             `json:"sort_order"`
	Boards      []BoardResponse `json:"boards"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// PostResponse is a post as rendered to clients. The submitter address is
// already replaced by the derived poster id; Name carries the anonymous
// placeholder when the poster left it empty.
type PostResponse struct {
	Id        domain.PostId `json:"id"`
	Number    int           `json:"number"`
	Body      string        `json:"body"`
	BodyHtml  string        `json:"body_html"`
	Name      string        `json:"name"`
	PosterId  string        `json:"poster_id"`
	CreatedAt time.Time     `json:"created_at"`
}

type ThreadMetadataResponse struct {
	Id        domain.ThreadId     `json:"id"`
	Board     domain.BoardKey     `json:"board"`
	Title     string              `json:"title"`
	Status    domain.ThreadStatus `json:"status"`
	PostCount int                 `json:"post_count"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type ThreadResponse struct {
	ThreadMetadataResponse
	Posts []PostResponse `json:"posts"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type ThreadListResponse struct {
	Threads    []ThreadResponse `json:"threads"`
	Pagination Pagination       `json:"pagination"`
}

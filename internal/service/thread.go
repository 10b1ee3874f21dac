package service

import (
	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.Thread, error)
	List(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) (ThreadPage, error)
	Get(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error)
	Archive(board domain.BoardKey, id domain.ThreadId) error
}

// ThreadPage is one page of a board's thread listing in bump order.
type ThreadPage struct {
	Threads    []ThreadWithPreview
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ThreadWithPreview carries the opening post plus the most recent replies.
// Post numbers are the true display numbers from the full thread, not
// positions within the truncated preview.
type ThreadWithPreview struct {
	domain.ThreadMetadata
	Posts []*domain.Post
}

type Thread struct {
	storage        ThreadStorage
	boardStorage   BoardStorage
	validator      ThreadValidator
	postValidator  PostValidator
	previewReplies int
	maxPageSize    int
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.ThreadId, error)
	ListThreads(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error)
	GetThread(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error)
	GetThreadPreviews(threadIds []domain.ThreadId, previewReplies int) (map[domain.ThreadId][]*domain.Post, error)
	ArchiveThread(board domain.BoardKey, id domain.ThreadId) error
}

type ThreadValidator interface {
	Title(title string) error
}

func NewThread(storage ThreadStorage, boardStorage BoardStorage, validator ThreadValidator, postValidator PostValidator, previewReplies, maxPageSize int) ThreadService {
	return &Thread{storage, boardStorage, validator, postValidator, previewReplies, maxPageSize}
}

// Create makes a thread with its opening post as one atomic unit. Board
// policy is enforced inside the storage transaction.
func (t *Thread) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	if err := t.validator.Title(data.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := t.postValidator.Body(data.OpPost.Body); err != nil {
		return domain.Thread{}, err
	}
	if err := t.postValidator.Name(data.OpPost.Name); err != nil {
		return domain.Thread{}, err
	}

	id, err := t.storage.CreateThread(data)
	if err != nil {
		return domain.Thread{}, err
	}

	return t.Get(data.Board, id)
}

func (t *Thread) List(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) (ThreadPage, error) {
	if page < 1 {
		return ThreadPage{}, internal_errors.Validation("Page must be a positive integer")
	}
	if limit < 1 || limit > t.maxPageSize {
		return ThreadPage{}, internal_errors.Validation("Limit is out of range")
	}

	// Listing only needs the board to exist; read-only boards still list.
	if _, err := t.boardStorage.GetBoard(board); err != nil {
		return ThreadPage{}, err
	}

	threads, total, err := t.storage.ListThreads(board, page, limit, status)
	if err != nil {
		return ThreadPage{}, err
	}

	threadIds := make([]domain.ThreadId, len(threads))
	for i, th := range threads {
		threadIds[i] = th.Id
	}
	previews, err := t.storage.GetThreadPreviews(threadIds, t.previewReplies)
	if err != nil {
		return ThreadPage{}, err
	}

	listed := make([]ThreadWithPreview, len(threads))
	for i, th := range threads {
		posts := previews[th.Id]
		labelPosts(posts)
		listed[i] = ThreadWithPreview{ThreadMetadata: th, Posts: posts}
	}

	return ThreadPage{
		Threads:    listed,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (t *Thread) Get(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
	thread, err := t.storage.GetThread(board, id)
	if err != nil {
		return domain.Thread{}, err
	}
	labelPosts(thread.Posts)
	return thread, nil
}

func (t *Thread) Archive(board domain.BoardKey, id domain.ThreadId) error {
	return t.storage.ArchiveThread(board, id)
}

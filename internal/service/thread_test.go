package service

import (
	"testing"
	"time"

	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
	"github.com/komachi-dev/komachi/internal/posterid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThreadService(storage *MockThreadStorage, boards *MockBoardStorage) ThreadService {
	return NewThread(storage, boards, &MockThreadValidator{}, &MockPostValidator{}, 10, 100)
}

func TestThreadCreate(t *testing.T) {
	t.Run("success returns assembled thread", func(t *testing.T) {
		created := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
		storage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, error) {
				return 5, nil
			},
			getThreadFunc: func(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
				return domain.Thread{
					ThreadMetadata: domain.ThreadMetadata{Id: id, Board: board, Title: "T1", Status: domain.ThreadOpen, PostCount: 1},
					Posts: []*domain.Post{
						{Id: 1, ThreadId: id, Body: "hello", Number: 1, SubmitterAddress: "203.0.113.5", CreatedAt: created},
					},
				}, nil
			},
		}
		svc := newThreadService(storage, &MockBoardStorage{})

		thread, err := svc.Create(domain.ThreadCreationData{
			Board:  "news",
			Title:  "T1",
			OpPost: domain.PostCreationData{Body: "hello", SubmitterAddress: "203.0.113.5"},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ThreadId(5), thread.Id)
		assert.Equal(t, domain.ThreadOpen, thread.Status)
		require.Len(t, thread.Posts, 1)
		assert.Equal(t, 1, thread.Posts[0].Number)
		assert.Equal(t, posterid.Derive("203.0.113.5", created), thread.Posts[0].PosterId)
		assert.Empty(t, thread.Posts[0].SubmitterAddress)
	})

	t.Run("invalid title stops before storage", func(t *testing.T) {
		called := false
		storage := &MockThreadStorage{
			createThreadFunc: func(data domain.ThreadCreationData) (domain.ThreadId, error) {
				called = true
				return 1, nil
			},
		}
		validator := &MockThreadValidator{
			titleFunc: func(title string) error {
				return internal_errors.Validation("Title is required")
			},
		}
		svc := NewThread(storage, &MockBoardStorage{}, validator, &MockPostValidator{}, 10, 100)

		_, err := svc.Create(domain.ThreadCreationData{Board: "news"})
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("empty opening body rejected", func(t *testing.T) {
		validator := &MockPostValidator{
			bodyFunc: func(body string) error {
				return internal_errors.Validation("Body is required")
			},
		}
		svc := NewThread(&MockThreadStorage{}, &MockBoardStorage{}, &MockThreadValidator{}, validator, 10, 100)

		_, err := svc.Create(domain.ThreadCreationData{Board: "news", Title: "T1"})
		assert.Error(t, err)
	})
}

func TestThreadList(t *testing.T) {
	t.Run("page and limit validation", func(t *testing.T) {
		svc := newThreadService(&MockThreadStorage{}, &MockBoardStorage{})

		_, err := svc.List("news", 0, 10, nil)
		assert.Error(t, err)

		_, err = svc.List("news", 1, 0, nil)
		assert.Error(t, err)

		_, err = svc.List("news", 1, 101, nil)
		assert.Error(t, err)
	})

	t.Run("missing board returns not found", func(t *testing.T) {
		boards := &MockBoardStorage{
			getBoardFunc: func(key domain.BoardKey) (domain.Board, error) {
				return domain.Board{}, internal_errors.NotFound("Board not found")
			},
		}
		svc := newThreadService(&MockThreadStorage{}, boards)

		_, err := svc.List("ghost", 1, 10, nil)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, internal_errors.KindNotFound, statusErr.Kind)
	})

	t.Run("assembles previews with true numbers and labels", func(t *testing.T) {
		created := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
		storage := &MockThreadStorage{
			listThreadsFunc: func(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error) {
				return []domain.ThreadMetadata{
					{Id: 2, Board: board, Title: "Newer", Status: domain.ThreadOpen, PostCount: 30},
					{Id: 1, Board: board, Title: "Older", Status: domain.ThreadOpen, PostCount: 1},
				}, 2, nil
			},
			getPreviewsFunc: func(threadIds []domain.ThreadId, previewReplies int) (map[domain.ThreadId][]*domain.Post, error) {
				assert.Equal(t, []domain.ThreadId{2, 1}, threadIds)
				assert.Equal(t, 10, previewReplies)
				return map[domain.ThreadId][]*domain.Post{
					2: {
						{Id: 10, ThreadId: 2, Number: 1, SubmitterAddress: "203.0.113.5", CreatedAt: created},
						{Id: 90, ThreadId: 2, Number: 30, SubmitterAddress: "203.0.113.9", CreatedAt: created},
					},
					1: {
						{Id: 11, ThreadId: 1, Number: 1, SubmitterAddress: "203.0.113.5", CreatedAt: created},
					},
				}, nil
			},
		}
		svc := newThreadService(storage, &MockBoardStorage{})

		pageResult, err := svc.List("news", 1, 50, nil)
		require.NoError(t, err)

		require.Len(t, pageResult.Threads, 2)
		assert.Equal(t, "Newer", pageResult.Threads[0].Title, "bump order must be preserved")
		assert.Equal(t, 30, pageResult.Threads[0].Posts[1].Number, "preview keeps full-thread numbering")
		assert.NotEmpty(t, pageResult.Threads[0].Posts[0].PosterId)
		assert.Empty(t, pageResult.Threads[0].Posts[0].SubmitterAddress)
		assert.Equal(t, 2, pageResult.Total)
		assert.Equal(t, 1, pageResult.TotalPages)
	})

	t.Run("total pages roundup", func(t *testing.T) {
		storage := &MockThreadStorage{
			listThreadsFunc: func(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error) {
				return nil, 101, nil
			},
		}
		svc := newThreadService(storage, &MockBoardStorage{})

		pageResult, err := svc.List("news", 1, 50, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, pageResult.TotalPages)
	})
}

func TestThreadGet(t *testing.T) {
	created := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	storage := &MockThreadStorage{
		getThreadFunc: func(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{
				ThreadMetadata: domain.ThreadMetadata{Id: id, Board: board, Status: domain.ThreadOpen, PostCount: 2},
				Posts: []*domain.Post{
					{Id: 1, Number: 1, SubmitterAddress: "203.0.113.5", CreatedAt: created},
					{Id: 2, Number: 2, SubmitterAddress: "203.0.113.5", CreatedAt: created},
				},
			}, nil
		},
	}
	svc := newThreadService(storage, &MockBoardStorage{})

	thread, err := svc.Get("news", 7)
	require.NoError(t, err)

	require.Len(t, thread.Posts, 2)
	// Same submitter, same day: identical labels.
	assert.Equal(t, thread.Posts[0].PosterId, thread.Posts[1].PosterId)
	for _, post := range thread.Posts {
		assert.Empty(t, post.SubmitterAddress)
	}
}

func TestThreadGetNotFound(t *testing.T) {
	storage := &MockThreadStorage{
		getThreadFunc: func(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		},
	}
	svc := newThreadService(storage, &MockBoardStorage{})

	_, err := svc.Get("news", 999)
	var statusErr *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, internal_errors.KindNotFound, statusErr.Kind)
}

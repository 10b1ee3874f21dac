package service

import (
	"github.com/komachi-dev/komachi/internal/domain"
)

// --- Mocks ---

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	getBoardFunc       func(key domain.BoardKey) (domain.Board, error)
	createBoardFunc    func(data domain.BoardCreationData) error
	setReadOnlyFunc    func(key domain.BoardKey, readOnly bool) error
	getCategoriesFunc  func() ([]domain.BoardCategory, error)
	createCategoryFunc func(name, description string, sortOrder int) (int64, error)
}

func (m *MockBoardStorage) GetBoard(key domain.BoardKey) (domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(key)
	}
	return domain.Board{Key: key, Title: "Test Board"}, nil
}

func (m *MockBoardStorage) CreateBoard(data domain.BoardCreationData) error {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(data)
	}
	return nil
}

func (m *MockBoardStorage) SetBoardReadOnly(key domain.BoardKey, readOnly bool) error {
	if m.setReadOnlyFunc != nil {
		return m.setReadOnlyFunc(key, readOnly)
	}
	return nil
}

func (m *MockBoardStorage) GetBoardCategories() ([]domain.BoardCategory, error) {
	if m.getCategoriesFunc != nil {
		return m.getCategoriesFunc()
	}
	return nil, nil
}

func (m *MockBoardStorage) CreateBoardCategory(name, description string, sortOrder int) (int64, error) {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(name, description, sortOrder)
	}
	return 1, nil
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc  func(data domain.ThreadCreationData) (domain.ThreadId, error)
	listThreadsFunc   func(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error)
	getThreadFunc     func(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error)
	getPreviewsFunc   func(threadIds []domain.ThreadId, previewReplies int) (map[domain.ThreadId][]*domain.Post, error)
	archiveThreadFunc func(board domain.BoardKey, id domain.ThreadId) error
}

func (m *MockThreadStorage) CreateThread(data domain.ThreadCreationData) (domain.ThreadId, error) {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(data)
	}
	return 1, nil
}

func (m *MockThreadStorage) ListThreads(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(board, page, limit, status)
	}
	return nil, 0, nil
}

func (m *MockThreadStorage) GetThread(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(board, id)
	}
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: id, Board: board, Status: domain.ThreadOpen}}, nil
}

func (m *MockThreadStorage) GetThreadPreviews(threadIds []domain.ThreadId, previewReplies int) (map[domain.ThreadId][]*domain.Post, error) {
	if m.getPreviewsFunc != nil {
		return m.getPreviewsFunc(threadIds, previewReplies)
	}
	return map[domain.ThreadId][]*domain.Post{}, nil
}

func (m *MockThreadStorage) ArchiveThread(board domain.BoardKey, id domain.ThreadId) error {
	if m.archiveThreadFunc != nil {
		return m.archiveThreadFunc(board, id)
	}
	return nil
}

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	createPostFunc func(data domain.PostCreationData) (domain.Post, error)
}

func (m *MockPostStorage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	if m.createPostFunc != nil {
		return m.createPostFunc(data)
	}
	return domain.Post{Id: 1, ThreadId: data.ThreadId, Body: data.Body, Name: data.Name, SubmitterAddress: data.SubmitterAddress}, nil
}

// --- Validator mocks ---

type MockBoardValidator struct {
	keyFunc   func(key string) error
	titleFunc func(title string) error
}

func (m *MockBoardValidator) Key(key string) error {
	if m.keyFunc != nil {
		return m.keyFunc(key)
	}
	return nil
}

func (m *MockBoardValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

type MockThreadValidator struct {
	titleFunc func(title string) error
}

func (m *MockThreadValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

type MockPostValidator struct {
	bodyFunc func(body string) error
	nameFunc func(name string) error
}

func (m *MockPostValidator) Body(body string) error {
	if m.bodyFunc != nil {
		return m.bodyFunc(body)
	}
	return nil
}

func (m *MockPostValidator) Name(name string) error {
	if m.nameFunc != nil {
		return m.nameFunc(name)
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/komachi-dev/komachi/internal/config"
	"github.com/komachi-dev/komachi/internal/domain"
	"github.com/komachi-dev/komachi/internal/markdown"
	"github.com/komachi-dev/komachi/internal/service"
)

type MockBoardService struct {
	MockCategories     func() ([]domain.BoardCategory, error)
	MockGet            func(key domain.BoardKey) (domain.Board, error)
	MockAuthorizeWrite func(key domain.BoardKey) (domain.Board, error)
	MockCreate         func(data domain.BoardCreationData) error
	MockCreateCategory func(name, description string, sortOrder int) (int64, error)
	MockSetReadOnly    func(key domain.BoardKey, readOnly bool) error
}

func (m *MockBoardService) Categories() ([]domain.BoardCategory, error) {
	if m.MockCategories != nil {
		return m.MockCategories()
	}
	return nil, nil
}

func (m *MockBoardService) Get(key domain.BoardKey) (domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(key)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) AuthorizeWrite(key domain.BoardKey) (domain.Board, error) {
	if m.MockAuthorizeWrite != nil {
		return m.MockAuthorizeWrite(key)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) Create(data domain.BoardCreationData) error {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return nil
}

func (m *MockBoardService) CreateCategory(name, description string, sortOrder int) (int64, error) {
	if m.MockCreateCategory != nil {
		return m.MockCreateCategory(name, description, sortOrder)
	}
	return 0, nil
}

func (m *MockBoardService) SetReadOnly(key domain.BoardKey, readOnly bool) error {
	if m.MockSetReadOnly != nil {
		return m.MockSetReadOnly(key, readOnly)
	}
	return nil
}

type MockThreadService struct {
	MockCreate  func(data domain.ThreadCreationData) (domain.Thread, error)
	MockList    func(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) (service.ThreadPage, error)
	MockGet     func(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error)
	MockArchive func(board domain.BoardKey, id domain.ThreadId) error
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) List(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) (service.ThreadPage, error) {
	if m.MockList != nil {
		return m.MockList(board, page, limit, status)
	}
	return service.ThreadPage{}, nil
}

func (m *MockThreadService) Get(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
	if m.MockGet != nil {
		return m.MockGet(board, id)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Archive(board domain.BoardKey, id domain.ThreadId) error {
	if m.MockArchive != nil {
		return m.MockArchive(board, id)
	}
	return nil
}

type MockPostService struct {
	MockCreate func(data domain.PostCreationData) (domain.Post, error)
}

func (m *MockPostService) Create(data domain.PostCreationData) (domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Post{}, nil
}

func newTestHandler() *Handler {
	cfg := &config.Config{Public: config.Public{ThreadsPerPage: 20, MaxThreadsPerPage: 100, PreviewReplies: 10}}
	return New(&MockBoardService{}, &MockThreadService{}, &MockPostService{}, markdown.New(), cfg)
}

// newTestRouter wires the public routes the way the real router does, so
// URL params resolve through chi.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/boards", h.GetBoards)
	r.Get("/v1/boards/{board}", h.GetBoard)
	r.Post("/v1/admin/categories", h.CreateCategory)
	r.Post("/v1/admin/boards", h.CreateBoard)
	r.Patch("/v1/admin/boards/{board}", h.SetBoardReadOnly)
	r.Post("/v1/admin/{board}/{thread}/archive", h.ArchiveThread)
	r.Get("/v1/{board}", h.ListThreads)
	r.Post("/v1/{board}", h.CreateThread)
	r.Get("/v1/{board}/{thread}", h.GetThread)
	r.Post("/v1/{board}/{thread}", h.CreatePost)
	return r
}

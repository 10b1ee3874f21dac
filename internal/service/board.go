package service

import (
	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
)

// to mock service in tests
type BoardService interface {
	Categories() ([]domain.BoardCategory, error)
	Get(key domain.BoardKey) (domain.Board, error)
	AuthorizeWrite(key domain.BoardKey) (domain.Board, error)
	Create(data domain.BoardCreationData) error
	CreateCategory(name, description string, sortOrder int) (int64, error)
	SetReadOnly(key domain.BoardKey, readOnly bool) error
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
}

type BoardStorage interface {
	GetBoardCategories() ([]domain.BoardCategory, error)
	GetBoard(key domain.BoardKey) (domain.Board, error)
	CreateBoard(data domain.BoardCreationData) error
	CreateBoardCategory(name, description string, sortOrder int) (int64, error)
	SetBoardReadOnly(key domain.BoardKey, readOnly bool) error
}

type BoardValidator interface {
	Key(key string) error
	Title(title string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) BoardService {
	return &Board{storage, validator}
}

func (b *Board) Categories() ([]domain.BoardCategory, error) {
	return b.storage.GetBoardCategories()
}

func (b *Board) Get(key domain.BoardKey) (domain.Board, error) {
	if err := b.validator.Key(key); err != nil {
		return domain.Board{}, err
	}
	return b.storage.GetBoard(key)
}

// AuthorizeWrite is the write gate: the board must exist and must not be
// read-only. Read paths only need Get.
func (b *Board) AuthorizeWrite(key domain.BoardKey) (domain.Board, error) {
	board, err := b.Get(key)
	if err != nil {
		return domain.Board{}, err
	}
	if board.IsReadOnly {
		return domain.Board{}, internal_errors.ReadOnly("Board is read-only")
	}
	return board, nil
}

func (b *Board) Create(data domain.BoardCreationData) error {
	if err := b.validator.Key(data.Key); err != nil {
		return err
	}
	if err := b.validator.Title(data.Title); err != nil {
		return err
	}
	return b.storage.CreateBoard(data)
}

func (b *Board) CreateCategory(name, description string, sortOrder int) (int64, error) {
	if name == "" {
		return 0, internal_errors.Validation("Category name is required")
	}
	return b.storage.CreateBoardCategory(name, description, sortOrder)
}

func (b *Board) SetReadOnly(key domain.BoardKey, readOnly bool) error {
	if err := b.validator.Key(key); err != nil {
		return err
	}
	return b.storage.SetBoardReadOnly(key, readOnly)
}

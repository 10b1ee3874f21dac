package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

func (s *Storage) CreateBoard(data domain.BoardCreationData) error {
	_, err := s.db.Exec(`
        INSERT INTO boards (key, title, description, is_read_only, category_id)
        VALUES ($1, $2, $3, $4, $5)
    `, data.Key, data.Title, data.Description, data.IsReadOnly, data.CategoryId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return &internal_errors.ErrorWithStatusCode{
				Message:    "Board already exists",
				StatusCode: 409,
				Kind:       internal_errors.KindValidation,
			}
		}
		return fmt.Errorf("failed to insert board: %w", err)
	}
	return nil
}

func (s *Storage) GetBoard(key domain.BoardKey) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
        SELECT key, title, description, is_read_only, category_id, created, updated
        FROM boards
        WHERE key = $1
    `, key).Scan(
		&board.Key, &board.Title, &board.Description,
		&board.IsReadOnly, &board.CategoryId, &board.CreatedAt, &board.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

func (s *Storage) SetBoardReadOnly(key domain.BoardKey, readOnly bool) error {
	result, err := s.db.Exec(`
        UPDATE boards
        SET is_read_only = $1, updated = NOW() AT TIME ZONE 'utc'
        WHERE key = $2
    `, readOnly, key)
	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

// GetBoardCategories returns all categories with their boards attached,
// categories by sort order, boards by creation time.
func (s *Storage) GetBoardCategories() ([]domain.BoardCategory, error) {
	rows, err := s.db.Query(`
        SELECT c.id, c.name, c.description, c.sort_order, c.created, c.updated,
               b.key, b.title, b.description, b.is_read_only, b.created, b.updated
        FROM board_categories c
        LEFT JOIN boards b ON b.category_id = c.id
        ORDER BY c.sort_order, c.id, b.created
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.BoardCategory
	idxById := make(map[int64]int)
	for rows.Next() {
		var c domain.BoardCategory
		var key, title, description sql.NullString
		var isReadOnly sql.NullBool
		var created, updated sql.NullTime
		if err := rows.Scan(
			&c.Id, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
			&key, &title, &description, &isReadOnly, &created, &updated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan board category row: %w", err)
		}

		idx, ok := idxById[c.Id]
		if !ok {
			categories = append(categories, c)
			idx = len(categories) - 1
			idxById[c.Id] = idx
		}
		if key.Valid { // LEFT JOIN: category may have no boards yet
			categories[idx].Boards = append(categories[idx].Boards, domain.Board{
				Key:         key.String,
				Title:       title.String,
				Description: description.String,
				IsReadOnly:  isReadOnly.Bool,
				CategoryId:  c.Id,
				CreatedAt:   created.Time,
				UpdatedAt:   updated.Time,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return categories, nil
}

func (s *Storage) CreateBoardCategory(name, description string, sortOrder int) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO board_categories (name, description, sort_order)
        VALUES ($1, $2, $3)
        RETURNING id
    `, name, description, sortOrder).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return 0, &internal_errors.ErrorWithStatusCode{
				Message:    "Category already exists",
				StatusCode: 409,
				Kind:       internal_errors.KindValidation,
			}
		}
		return 0, fmt.Errorf("failed to insert board category: %w", err)
	}
	return id, nil
}

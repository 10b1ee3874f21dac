package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"
)

// CreatePost appends a post to a thread. The whole count-check, insert,
// bump and maybe-close sequence runs in one transaction with the thread
// row locked, so two appends racing for the last slot are serialized at
// the database and the capacity ceiling holds across server processes.
func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the thread row; concurrent appends to the same thread queue here.
	// Board policy is read in the same statement so the write path never
	// trusts state fetched outside the transaction.
	var rawStatus string
	var isReadOnly bool
	err = tx.QueryRow(`
        SELECT t.status, b.is_read_only
        FROM threads t
        JOIN boards b ON b.key = t.board_key
        WHERE t.board_key = $1 AND t.id = $2
        FOR UPDATE OF t
    `, data.Board, data.ThreadId).Scan(&rawStatus, &isReadOnly)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Post{}, fmt.Errorf("failed to lock thread: %w", err)
	}
	if isReadOnly {
		return domain.Post{}, internal_errors.ReadOnly("Board is read-only")
	}

	status, err := domain.ParseThreadStatus(rawStatus)
	if err != nil {
		return domain.Post{}, err
	}
	switch status {
	case domain.ThreadArchived:
		return domain.Post{}, internal_errors.ThreadClosed("Thread is archived")
	case domain.ThreadClosed:
		// CLOSED only ever happens at capacity, so report it as such.
		return domain.Post{}, internal_errors.CapacityReached("Thread has reached its post limit")
	}

	var count int
	if err := tx.QueryRow(
		"SELECT count(*) FROM posts WHERE thread_id = $1",
		data.ThreadId,
	).Scan(&count); err != nil {
		return domain.Post{}, fmt.Errorf("failed to count posts: %w", err)
	}
	if count >= domain.MaxPostsPerThread {
		return domain.Post{}, internal_errors.CapacityReached("Thread has reached its post limit")
	}

	createdTs := now()
	data.CreatedAt = &createdTs
	post, err := insertPost(tx, data)
	if err != nil {
		return domain.Post{}, err
	}

	// Bump, and close in the same statement when this was the last slot.
	newStatus := domain.ThreadOpen
	if count+1 >= domain.MaxPostsPerThread {
		newStatus = domain.ThreadClosed
	}
	if _, err := tx.Exec(
		"UPDATE threads SET updated = $1, status = $2 WHERE id = $3",
		createdTs, newStatus, data.ThreadId,
	); err != nil {
		return domain.Post{}, fmt.Errorf("failed to bump thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	post.Number = count + 1
	return post, nil
}

// insertPost writes a single post row inside an existing transaction.
// Shared by CreatePost and CreateThread (opening post).
func insertPost(tx *sql.Tx, data domain.PostCreationData) (domain.Post, error) {
	createdTs := now()
	if data.CreatedAt != nil {
		createdTs = *data.CreatedAt
	}

	var id domain.PostId
	err := tx.QueryRow(`
        INSERT INTO posts (thread_id, body, name, submitter_address, created)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, data.ThreadId, data.Body, data.Name, data.SubmitterAddress, createdTs).Scan(&id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	return domain.Post{
		Id:               id,
		ThreadId:         data.ThreadId,
		Body:             data.Body,
		Name:             data.Name,
		SubmitterAddress: data.SubmitterAddress,
		CreatedAt:        createdTs,
	}, nil
}

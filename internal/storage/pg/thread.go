package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/komachi-dev/komachi/internal/domain"
	internal_errors "github.com/komachi-dev/komachi/internal/errors"

	"github.com/lib/pq"
)

// CreateThread inserts a thread together with its opening post in one
// transaction: either both exist afterwards or neither does. Board
// existence and the read-only flag are re-checked inside the transaction
// so a concurrent policy change cannot slip a write through.
func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.ThreadId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var isReadOnly bool
	err = tx.QueryRow(
		"SELECT is_read_only FROM boards WHERE key = $1",
		data.Board,
	).Scan(&isReadOnly)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, internal_errors.NotFound("Board not found")
		}
		return -1, fmt.Errorf("failed to validate board: %w", err)
	}
	if isReadOnly {
		return -1, internal_errors.ReadOnly("Board is read-only")
	}

	createdTs := now()
	var id domain.ThreadId
	err = tx.QueryRow(`
        INSERT INTO threads (board_key, title, status, created, updated)
        VALUES ($1, $2, $3, $4, $4)
        RETURNING id
    `, data.Board, data.Title, domain.ThreadOpen, createdTs).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert thread: %w", err)
	}

	// Opening post shares the thread's creation timestamp.
	op := data.OpPost
	op.ThreadId = id
	op.CreatedAt = &createdTs
	if _, err := insertPost(tx, op); err != nil {
		return -1, fmt.Errorf("failed to create opening post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// statusFilter expands an optional status into the set of statuses a
// listing should match. The default deliberately includes CLOSED threads
// (a full thread is still readable) and hides ARCHIVED ones.
func statusFilter(status *domain.ThreadStatus) []string {
	if status != nil {
		return []string{string(*status)}
	}
	return []string{string(domain.ThreadOpen), string(domain.ThreadClosed)}
}

func (s *Storage) ListThreads(board domain.BoardKey, page, limit int, status *domain.ThreadStatus) ([]domain.ThreadMetadata, int, error) {
	statuses := pq.Array(statusFilter(status))

	var total int
	err := s.db.QueryRow(`
        SELECT count(*) FROM threads
        WHERE board_key = $1 AND status = ANY($2)
    `, board, statuses).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count threads: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT t.id, t.board_key, t.title, t.status, t.created, t.updated,
               (SELECT count(*) FROM posts p WHERE p.thread_id = t.id) AS post_count
        FROM threads t
        WHERE t.board_key = $1 AND t.status = ANY($2)
        ORDER BY t.updated DESC, t.id DESC
        OFFSET $3 LIMIT $4
    `, board, statuses, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.ThreadMetadata
	for rows.Next() {
		var t domain.ThreadMetadata
		var rawStatus string
		if err := rows.Scan(&t.Id, &t.Board, &t.Title, &rawStatus, &t.CreatedAt, &t.UpdatedAt, &t.PostCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan thread row: %w", err)
		}
		if t.Status, err = domain.ParseThreadStatus(rawStatus); err != nil {
			return nil, 0, err
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, total, nil
}

func (s *Storage) GetThread(board domain.BoardKey, id domain.ThreadId) (domain.Thread, error) {
	var metadata domain.ThreadMetadata
	var rawStatus string
	err := s.db.QueryRow(`
        SELECT id, board_key, title, status, created, updated
        FROM threads
        WHERE board_key = $1 AND id = $2
    `, board, id).Scan(
		&metadata.Id, &metadata.Board, &metadata.Title,
		&rawStatus, &metadata.CreatedAt, &metadata.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread metadata: %w", err)
	}
	if metadata.Status, err = domain.ParseThreadStatus(rawStatus); err != nil {
		return domain.Thread{}, err
	}

	rows, err := s.db.Query(`
        SELECT id, thread_id, body, name, submitter_address, created,
               row_number() OVER (ORDER BY created, id) AS n
        FROM posts
        WHERE thread_id = $1
        ORDER BY created, id
    `, id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.Id, &post.ThreadId, &post.Body, &post.Name,
			&post.SubmitterAddress, &post.CreatedAt, &post.Number,
		); err != nil {
			return domain.Thread{}, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	metadata.PostCount = len(posts)
	return domain.Thread{ThreadMetadata: metadata, Posts: posts}, nil
}

// GetThreadPreviews fetches, for each thread id, the opening post plus up
// to previewReplies most recent replies. Display numbers come from a window
// over the full post sequence, so a preview post carries the same number it
// has in the untruncated thread.
func (s *Storage) GetThreadPreviews(threadIds []domain.ThreadId, previewReplies int) (map[domain.ThreadId][]*domain.Post, error) {
	previews := make(map[domain.ThreadId][]*domain.Post)
	if len(threadIds) == 0 {
		return previews, nil
	}

	rows, err := s.db.Query(`
        WITH numbered AS (
            SELECT id, thread_id, body, name, submitter_address, created,
                   row_number() OVER (PARTITION BY thread_id ORDER BY created, id) AS n,
                   count(*) OVER (PARTITION BY thread_id) AS total
            FROM posts
            WHERE thread_id = ANY($1)
        )
        SELECT id, thread_id, body, name, submitter_address, created, n
        FROM numbered
        WHERE n = 1 OR n > total - $2
        ORDER BY thread_id, n
    `, pq.Array(threadIds), previewReplies)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread previews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.Id, &post.ThreadId, &post.Body, &post.Name,
			&post.SubmitterAddress, &post.CreatedAt, &post.Number,
		); err != nil {
			return nil, fmt.Errorf("failed to scan preview post: %w", err)
		}
		previews[post.ThreadId] = append(previews[post.ThreadId], &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return previews, nil
}

// ArchiveThread moves a thread to ARCHIVED. Legal from OPEN and CLOSED;
// archiving an already archived thread fails the transition check.
func (s *Storage) ArchiveThread(board domain.BoardKey, id domain.ThreadId) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var rawStatus string
	err = tx.QueryRow(`
        SELECT status FROM threads
        WHERE board_key = $1 AND id = $2
        FOR UPDATE
    `, board, id).Scan(&rawStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Thread not found")
		}
		return fmt.Errorf("failed to fetch thread status: %w", err)
	}

	status, err := domain.ParseThreadStatus(rawStatus)
	if err != nil {
		return err
	}
	if !status.CanTransitionTo(domain.ThreadArchived) {
		return internal_errors.ThreadClosed("Thread is already archived")
	}

	if _, err := tx.Exec(
		"UPDATE threads SET status = $1 WHERE id = $2",
		domain.ThreadArchived, id,
	); err != nil {
		return fmt.Errorf("failed to archive thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Key         BoardKey
	Title       BoardTitle
	Description string
	IsReadOnly  bool
	CategoryId  int64
}

type Board struct {
	Key         BoardKey
	Title       BoardTitle
	Description string
	IsReadOnly  bool
	CategoryId  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BoardCategory groups boards on the index page, ordered by SortOrder.
type BoardCategory struct {
	Id          int64
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Boards      []Board
}

package store

import (
	"encoding/base64"
	"encoding/json"

	"github.com/safar/go-catalog-store/internal/database"
)

type CursorPage[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

type OffsetPage[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// OrderCursor marks the last order returned; listing resumes just before
// Position in insertion order.
type OrderCursor struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
}

func EncodeCursor(cursor OrderCursor) string {
	data, err := json.Marshal(cursor)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor returns the cursor for the start of the listing when encoded
// is empty. ok is false in that case.
func DecodeCursor(encoded string) (cursor OrderCursor, ok bool, err error) {
	if encoded == "" {
		return cursor, false, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return cursor, false, database.NewValidationError(database.EntityOrder, "cursor", "malformed")
	}

	if err := json.Unmarshal(data, &cursor); err != nil {
		return cursor, false, database.NewValidationError(database.EntityOrder, "cursor", "malformed")
	}

	return cursor, true, nil
}

func paginate[T any](table *database.Table[T], page, pageSize int, clone func(*T) *T) *OffsetPage[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := table.Len()
	rows := table.Slice((page-1)*pageSize, pageSize)

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		items = append(items, *clone(row))
	}

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &OffsetPage[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

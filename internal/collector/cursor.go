package collector

import (
	"errors"
	"fmt"
	"ground/pkg/domain"
	"ground/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCursor is returned for page cursors not produced by LOISubmissions.
var ErrInvalidCursor = errors.New("invalid cursor")

const cursorSeparator = "_"

// encodeCursor renders a page position as "<RFC 3339 creation time>_<submission id>".
func encodeCursor(c storage.SubmissionCursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

// decodeCursor parses a cursor made by encodeCursor. An empty cursor is the
// first page.
func decodeCursor(s string) (*storage.SubmissionCursor, error) {
	if s == "" {
		return nil, nil
	}

	rawTime, rawID, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCursor, s)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	return &storage.SubmissionCursor{CreatedAt: createdAt, ID: domain.SubmissionID(id)}, nil
}

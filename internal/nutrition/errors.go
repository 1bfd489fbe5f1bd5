package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store failure reasons.
const (
	ReasonProductInsertFailed = "product-insert-failed"
	ReasonServingInsertFailed = "serving-insert-failed"
	ReasonNotFound            = "not-found"
	ReasonUnreachable         = "unreachable"
)

// StoreError is a fatal persistence failure. Per-serving insert
// failures are not fatal and travel in StoreResult.FailedServings
// instead.
type StoreError struct {
	Reason string
	Detail string
}

func (e *StoreError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("store failed: %s", e.Reason)
	}
	return fmt.Sprintf("store failed: %s: %s", e.Reason, e.Detail)
}

// insertFailureReason tells connectivity failures apart from row-level
// insert failures: a broken connection or an expired deadline is
// "unreachable", anything else is the insert itself failing.
func insertFailureReason(err error) string {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return ReasonUnreachable
	}
	return ReasonProductInsertFailed
}

package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// PostgreSQL SQLSTATE codes the stores translate.
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

// translate maps driver errors onto domain sentinels. what names the entity
// for the error message.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s (%s): %w", what, pqErr.Constraint, domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s (%s): %w", what, pqErr.Constraint, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s: %w", what, err)
}

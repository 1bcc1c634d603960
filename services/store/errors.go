package store

import (
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Tagged store errors. Callers can distinguish a missing record from a
// uniqueness conflict from a transport failure with errors.Is.
var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("uniqueness constraint violated")
	ErrUnavailable = errors.New("store unavailable")
)

const constraintViolationCode = "Neo.ClientError.Schema.ConstraintValidationFailed"

// classify maps a driver error onto one of the tagged sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var neoErr *db.Neo4jError
	if errors.As(err, &neoErr) && neoErr.Code == constraintViolationCode {
		return fmt.Errorf("%w: %s", ErrConflict, neoErr.Msg)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

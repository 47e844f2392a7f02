package store

import "errors"

// Sentinel errors returned by the clipboard store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageInit is returned when the data directory cannot be created,
	// the database cannot be opened or the schema cannot be migrated.
	ErrStorageInit = errors.New("storage initialisation failed")

	// ErrItemNotFound is returned when a get, pin or delete targets an id
	// that has no row.
	ErrItemNotFound = errors.New("item not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan item row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan item rows")
)

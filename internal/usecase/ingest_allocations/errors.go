package ingest_allocations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе (нет записей и т.п.)
	ErrInvalidInput = errors.New("ingest_allocations: invalid input data")
)

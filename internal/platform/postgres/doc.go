// Package postgres provides PostgreSQL implementations of the store
// interfaces. Each store maps driver errors to the portable error values
// defined in the store package so callers never depend on pgconn.
package postgres

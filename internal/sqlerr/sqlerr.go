// Package sqlerr classifies database driver errors.
//
// It maps raw Postgres SQLSTATE codes into a small error-kind
// enumeration and converts them into HTTP errors at the storage
// boundary: missing rows become 404s, constraint violations become
// 500s with a derived message instead of the driver's own text.
package sqlerr

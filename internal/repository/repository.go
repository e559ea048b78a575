// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each entity and keeps it away from the
// service layer. Methods take a context and return driver errors
// unwrapped; classification into HTTP errors happens at the sqlerr
// boundary.
package repository

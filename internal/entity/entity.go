// Package entity defines the persistent record types of the catalog.
package entity

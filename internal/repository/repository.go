// Package repository implements PostgreSQL persistence for the domain records.
package repository

import "errors"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

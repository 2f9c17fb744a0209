// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHistoryNotFound is returned when a history row addressed by id does
	// not exist.
	ErrHistoryNotFound = errors.New("history record was not found")

	// ErrQRCodeNotFound is returned when a saved QR code addressed by id does
	// not exist.
	ErrQRCodeNotFound = errors.New("qr code was not found")

	// ErrProfileNotFound is returned when no profile is stored for a scope.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrMutationNotFound is returned when an outbox entry addressed by id
	// does not exist.
	ErrMutationNotFound = errors.New("outbox entry was not found")

	// ErrEmptyScope is returned when a record that must be owned by an
	// account carries no user scope.
	ErrEmptyScope = errors.New("user scope is empty")

	// ErrInvalidRecord is returned when the database rejects a record because
	// of a data exception or an integrity constraint violation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrStorageUnavailable is returned when the database cannot be reached
	// or rejected the operation for a transient reason.
	ErrStorageUnavailable = errors.New("storage is unavailable")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a payload or outbox reference cannot
	// be serialized for storage.
	ErrEncodingPayload = errors.New("failed to encode payload")
)

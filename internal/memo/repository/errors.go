package repository

import "errors"

var (
	ErrFailedToMigrate = errors.New("failed to migrate schema")
	ErrFailedToInsert  = errors.New("failed to insert memo")
	ErrFailedToGet     = errors.New("failed to get memo")
	ErrFailedToList    = errors.New("failed to list memos")
	ErrFailedToUpdate  = errors.New("failed to update memo")
	ErrFailedToDelete  = errors.New("failed to delete memo")
)

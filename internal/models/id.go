package models

import (
	"github.com/google/uuid"

	"github.com/vericred/vericred-api/pkg/apperrors"
)

// ParseID validates an entity id received at the API boundary. Ids are
// opaque strings to callers but uuids internally; malformed input fails
// fast here instead of leaking into SQL parameters.
func ParseID(field, value string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", apperrors.ValidationError(field, "malformed id")
	}
	return id.String(), nil
}

// ParseLookupID validates an id that addresses an existing entity. A
// malformed id cannot name anything, so a lookup with one reads as
// NotFound; ids inside creation payloads go through ParseID instead.
func ParseLookupID(resource, value string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", apperrors.NotFoundError(resource)
	}
	return id.String(), nil
}

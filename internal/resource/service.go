package resource

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tiendaapi/internal/middleware"
	"tiendaapi/internal/store"
)

// Store is the subset of the storage gateway a Service needs.
type Store[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, bool, error)
	FindWhere(ctx context.Context, p store.Predicate) ([]T, error)
	FindSorted(ctx context.Context, field string, dir store.Direction) ([]T, error)
	Insert(ctx context.Context, record T) (int, error)
	Replace(ctx context.Context, id int, record T) error
	Delete(ctx context.Context, id int) error
}

// Entity binds a record type to its name, validation and id accessors.
type Entity[T any] struct {
	Name     string
	Validate func(T) error
	ID       func(T) int
	SetID    func(*T, int)
}

// Service implements list/detail/create/replace/delete plus filtered and
// sorted reads for one entity type. Store failures never leave the service
// unclassified: callers see ErrInvalid, ErrNotFound, ErrConflict or
// ErrInternal.
type Service[T any] struct {
	store  Store[T]
	entity Entity[T]
}

func NewService[T any](st Store[T], entity Entity[T]) *Service[T] {
	return &Service[T]{store: st, entity: entity}
}

func (s *Service[T]) Name() string {
	return s.entity.Name
}

// List returns the whole collection. An empty collection is not an error.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, s.internal(ctx, "list", 0, err)
	}
	return records, nil
}

func (s *Service[T]) Get(ctx context.Context, id int) (T, error) {
	record, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, s.internal(ctx, "get", id, err)
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("%w: %s %d", ErrNotFound, s.entity.Name, id)
	}
	return record, nil
}

// Create validates record, ignores any caller-supplied id and returns the
// stored record with the id the database assigned.
func (s *Service[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	if err := s.entity.Validate(record); err != nil {
		return zero, err
	}
	s.entity.SetID(&record, 0)

	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return zero, s.internal(ctx, "create", 0, err)
	}
	s.entity.SetID(&record, id)
	return record, nil
}

// Replace overwrites record pathID. The id carried by the payload must match.
// Write conflicts are reported, never retried.
func (s *Service[T]) Replace(ctx context.Context, pathID int, record T) error {
	if payloadID := s.entity.ID(record); payloadID != pathID {
		return invalidf("path id %d does not match payload id %d", pathID, payloadID)
	}
	if err := s.entity.Validate(record); err != nil {
		return err
	}

	err := s.store.Replace(ctx, pathID, record)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s %d", ErrNotFound, s.entity.Name, pathID)
	case errors.Is(err, store.ErrConflict):
		log.Printf("request_id=%s resource=%s op=replace id=%d conflict: %v",
			middleware.RequestIDFromContext(ctx), s.entity.Name, pathID, err)
		return fmt.Errorf("%w: %s %d was modified concurrently", ErrConflict, s.entity.Name, pathID)
	default:
		return s.internal(ctx, "replace", pathID, err)
	}
}

// Delete checks existence first so that "never existed" and "deleted by
// someone else in the meantime" both resolve to ErrNotFound.
func (s *Service[T]) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	err := s.store.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s %d", ErrNotFound, s.entity.Name, id)
	default:
		return s.internal(ctx, "delete", id, err)
	}
}

// Filter returns the records matching p. No match is reported as ErrNotFound,
// unlike List where an empty collection is a normal result.
func (s *Service[T]) Filter(ctx context.Context, p store.Predicate) ([]T, error) {
	records, err := s.store.FindWhere(ctx, p)
	if err != nil {
		if errors.Is(err, store.ErrUnknownField) || errors.Is(err, store.ErrInvalidPredicate) {
			return nil, invalidf("cannot filter %s by %s", s.entity.Name, p.Field)
		}
		return nil, s.internal(ctx, "filter:"+p.Field, 0, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no %s matches %s %s", ErrNotFound, s.entity.Name, p.Field, p.Op)
	}
	return records, nil
}

// FindOne returns the first record matching p.
func (s *Service[T]) FindOne(ctx context.Context, p store.Predicate) (T, error) {
	records, err := s.Filter(ctx, p)
	if err != nil {
		var zero T
		return zero, err
	}
	return records[0], nil
}

// Sort validates rawDirection before touching the store.
func (s *Service[T]) Sort(ctx context.Context, field, rawDirection string) ([]T, error) {
	dir, err := ParseDirection(rawDirection)
	if err != nil {
		return nil, err
	}

	records, err := s.store.FindSorted(ctx, field, dir)
	if err != nil {
		if errors.Is(err, store.ErrUnknownField) {
			return nil, invalidf("cannot sort %s by %s", s.entity.Name, field)
		}
		return nil, s.internal(ctx, "sort:"+field, 0, err)
	}
	return records, nil
}

// ParseDirection accepts "asc" or "desc" in any case. Surrounding
// whitespace is not tolerated.
func ParseDirection(raw string) (store.Direction, error) {
	switch strings.ToLower(raw) {
	case "asc":
		return store.Ascending, nil
	case "desc":
		return store.Descending, nil
	default:
		return 0, invalidf("invalid order %q, use 'asc' or 'desc'", raw)
	}
}

// IsDirection reports whether raw names a sort direction.
func IsDirection(raw string) bool {
	_, err := ParseDirection(raw)
	return err == nil
}

func (s *Service[T]) internal(ctx context.Context, op string, id int, err error) error {
	requestID := middleware.RequestIDFromContext(ctx)
	if id > 0 {
		log.Printf("request_id=%s resource=%s op=%s id=%d error=%v", requestID, s.entity.Name, op, id, err)
	} else {
		log.Printf("request_id=%s resource=%s op=%s error=%v", requestID, s.entity.Name, op, err)
	}
	return fmt.Errorf("%w: %s %s", ErrInternal, op, s.entity.Name)
}

// ID returns the identifier carried by record.
func (s *Service[T]) ID(record T) int {
	return s.entity.ID(record)
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports a get, update or delete against an id that does not
// exist. Check it with errors.Is; the wrapping StoreError carries the
// user-facing message.
var ErrNotFound = errors.New("record not found")

// StoreError wraps any transport or persistence failure with a message fit
// for the transient notification the admin UI shows. The operation that
// produced it is aborted; no retry is attempted.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Op: op, Message: "enregistrement introuvable", Err: ErrNotFound}
	}
	return &StoreError{Op: op, Message: err.Error(), Err: err}
}

// Filter is an equality/comparison predicate applied to List and Count,
// e.g. Where("event_date >= ?", today).
type Filter struct {
	Query string
	Args  []any
}

func Where(query string, args ...any) Filter {
	return Filter{Query: query, Args: args}
}

// Store is the per-entity query/mutation façade. One instance is created per
// record kind; every admin page goes through the same five operations.
type Store[T any] struct {
	db       *gorm.DB
	name     string
	orderBy  string
	preloads []string
}

// NewStore builds a store ordering List results by orderBy and preloading
// the named associations on every read.
func NewStore[T any](db *gorm.DB, name, orderBy string, preloads ...string) *Store[T] {
	return &Store[T]{db: db, name: name, orderBy: orderBy, preloads: preloads}
}

// DB exposes the underlying handle for the few service queries that do not
// fit the generic shape (counts with joins, dashboard aggregates).
func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

func (s *Store[T]) session() *gorm.DB {
	tx := s.db
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// List returns every record, optionally narrowed by filters, in the store's
// designated order.
func (s *Store[T]) List(filters ...Filter) ([]T, error) {
	var records []T
	tx := s.session().Order(s.orderBy)
	for _, f := range filters {
		tx = tx.Where(f.Query, f.Args...)
	}
	if err := tx.Find(&records).Error; err != nil {
		return nil, storeErr(s.name+".list", err)
	}
	return records, nil
}

func (s *Store[T]) GetByID(id uint) (*T, error) {
	var record T
	if err := s.session().First(&record, id).Error; err != nil {
		return nil, storeErr(s.name+".get", err)
	}
	return &record, nil
}

func (s *Store[T]) Create(record *T) error {
	if err := s.db.Create(record).Error; err != nil {
		return storeErr(s.name+".create", err)
	}
	return nil
}

// protected columns are never written through UpdateByID.
var protectedColumns = []string{"id", "created_at", "updated_at"}

// UpdateByID overwrites the named fields on the record with the given id and
// returns the reloaded record. It fails with ErrNotFound if the id does not
// exist.
func (s *Store[T]) UpdateByID(id uint, fields map[string]any) (*T, error) {
	for _, col := range protectedColumns {
		delete(fields, col)
	}

	var record T
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, storeErr(s.name+".update", err)
	}
	if len(fields) > 0 {
		if err := s.db.Model(&record).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, storeErr(s.name+".update", err)
		}
	}

	var updated T
	if err := s.session().First(&updated, id).Error; err != nil {
		return nil, storeErr(s.name+".update", err)
	}
	return &updated, nil
}

// DeleteByID removes the record. Dependent checks (RoomType → Room) are the
// caller's job; no cascade or guard happens here.
func (s *Store[T]) DeleteByID(id uint) error {
	var record T
	result := s.db.Where("id = ?", id).Delete(&record)
	if result.Error != nil {
		return storeErr(s.name+".delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return storeErr(s.name+".delete", gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *Store[T]) Count(filters ...Filter) (int64, error) {
	var record T
	var n int64
	tx := s.db.Model(&record)
	for _, f := range filters {
		tx = tx.Where(f.Query, f.Args...)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, storeErr(s.name+".count", err)
	}
	return n, nil
}

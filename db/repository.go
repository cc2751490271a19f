package db

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("unique constraint violated")
)

// The functions below take the caller's session explicitly. Handlers pass
// db.WithContext(r.Context()) so every call is bound to one request.

// Insert persists rec and reloads it so store-assigned columns are filled in.
func Insert[T any](tx *gorm.DB, rec *T) error {
	if err := tx.Create(rec).Error; err != nil {
		return translate(err)
	}
	return translate(tx.First(rec).Error)
}

func GetByID[T any](tx *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := tx.First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func All[T any](tx *gorm.DB) ([]T, error) {
	recs := []T{}
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Update overwrites only the columns present in changes and returns the
// reloaded row.
func Update[T any](tx *gorm.DB, id uint, changes map[string]interface{}) (*T, error) {
	var rec T
	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&rec).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&rec, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// Delete removes the row. Rows referencing it are left untouched.
func Delete[T any](tx *gorm.DB, id uint) error {
	err := tx.Transaction(func(tx *gorm.DB) error {
		var rec T
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	return translate(err)
}

// Exists reports whether any row of T has column equal to value.
func Exists[T any](tx *gorm.DB, column string, value interface{}) (bool, error) {
	var count int64
	err := tx.Model(new(T)).Where(map[string]interface{}{column: value}).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConstraintViolation
	default:
		return err
	}
}

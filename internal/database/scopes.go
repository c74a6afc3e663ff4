package database

import (
	"gorm.io/gorm"
)

// NewestFirst orders rows by creation time, newest first, with id as tie-breaker
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}

// WhereOptional filters column = *value when value is non-nil
func WhereOptional[T any](column string, value *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

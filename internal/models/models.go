package models

// All lists every model in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&Company{},
		&Project{},
		&Task{},
		&TimeEntry{},
		&Invoice{},
		&InvoiceItem{},
	}
}

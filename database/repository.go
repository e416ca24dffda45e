package database

// Repository owns all entity reads and writes. Handlers and services
// never touch the tables directly; the invariants (unique items,
// content-deduplicated notes, cascade-safe links) live here.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User   UserRepository
	Change ChangeRepository
	Type   TypeRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:   NewUserRepository(db),
		Change: NewChangeRepository(db),
		Type:   NewTypeRepository(db),
		Audit:  NewAuditRepository(db),
	}
}

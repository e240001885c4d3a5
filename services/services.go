package services

import (
	"github.com/soclog/change-inventory/repositories"
)

// Services holds all service instances
type Services struct {
	Auth   AuthService
	Change ChangeService
	Type   TypeService
	CSV    CSVService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Auth:   NewAuthService(repos.User),
		Change: NewChangeService(repos.Change),
		Type:   NewTypeService(repos.Type),
		CSV:    NewCSVService(repos.Change),
	}
}

package repository

import (
	"github.com/deppfellow/fitness-center/internal/database"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customer *CustomerRepository
	Workout  *WorkoutRepository
}

// NewRepositories builds every repository on top of the same connection
// provider. In production the provider is *database.Database.
func NewRepositories(db database.Provider) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(db),
		Workout:  NewWorkoutRepository(db),
	}
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAllIndexes creates the indexes backing the uniqueness guarantees:
// account email, role name, vehicle plate, and unit code per property.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database) error {
	ensurers := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewAccountRepository(db),
		NewRoleRepository(db),
		NewPropertyRepository(db),
		NewVehicleRepository(db),
	}
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}

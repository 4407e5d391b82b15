package interfaces

import (
	"context"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

//go:generate mockgen -source=act_repository_interface.go -destination=mocks/mock_act_repository.go -package=mock_interfaces

// IActRepository abstracts DynamoDB persistence for Act.
//
// Delete exists solely for the compensating rollback when entry attachment
// fails after the act row was written; the engine never deletes acts
// otherwise.
type IActRepository interface {
	Create(ctx context.Context, act entities.Act) (entities.Act, error)
	Delete(ctx context.Context, id string) error
}

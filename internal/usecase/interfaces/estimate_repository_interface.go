package interfaces

import (
	"context"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for EstimateLimit.
//
// The acts-service only reads estimates: the limit table is owned by the
// contract management side.
type IEstimateRepository interface {
	ListByContractID(ctx context.Context, contractID string) ([]entities.EstimateLimit, error)
}

package repositories

import (
	"context"

	"promoreel/internal/domain/entities"
)

type ReelRepository interface {
	Save(ctx context.Context, request *entities.ReelRequest) error
	FindByID(ctx context.Context, id entities.ReelRequestID) (*entities.ReelRequest, error)
	SaveResult(ctx context.Context, result *entities.ReelResult) error
	FindResultByRequestID(ctx context.Context, requestID entities.ReelRequestID) (*entities.ReelResult, error)
}

package repositories

import (
	"context"
	"fmt"
	"sync"

	"promoreel/internal/domain/entities"
	domainrepos "promoreel/internal/domain/repositories"
)

// MemoryReelRepository keeps one process worth of runs in memory; nothing
// persists across restarts.
type MemoryReelRepository struct {
	requests map[entities.ReelRequestID]*entities.ReelRequest
	results  map[entities.ReelRequestID]*entities.ReelResult
	mu       sync.RWMutex
}

func NewMemoryReelRepository() domainrepos.ReelRepository {
	return &MemoryReelRepository{
		requests: make(map[entities.ReelRequestID]*entities.ReelRequest),
		results:  make(map[entities.ReelRequestID]*entities.ReelResult),
	}
}

func (r *MemoryReelRepository) Save(ctx context.Context, request *entities.ReelRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[request.ID()] = request
	return nil
}

func (r *MemoryReelRepository) FindByID(ctx context.Context, id entities.ReelRequestID) (*entities.ReelRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, exists := r.requests[id]
	if !exists {
		return nil, fmt.Errorf("request not found: %s", id)
	}

	return request, nil
}

func (r *MemoryReelRepository) SaveResult(ctx context.Context, result *entities.ReelResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results[result.RequestID()] = result
	return nil
}

func (r *MemoryReelRepository) FindResultByRequestID(ctx context.Context, requestID entities.ReelRequestID) (*entities.ReelResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.results[requestID]
	if !exists {
		return nil, fmt.Errorf("result not found for request: %s", requestID)
	}

	return result, nil
}

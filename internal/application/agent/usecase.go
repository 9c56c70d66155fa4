// Package agent provides the read-through lookup of offer counterparties in
// an external company registry. Agents are never persisted.
package agent

import (
	"context"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
)

// Registry is the port to the external company-registry API.
type Registry interface {
	FindByINN(ctx context.Context, inn string) (*entity.Agent, error)
}

// UseCase resolves agents by tax identifier.
type UseCase struct {
	registry Registry
}

// NewUseCase builds the agent use case.
func NewUseCase(registry Registry) *UseCase {
	return &UseCase{registry: registry}
}

// Get looks up the agent with the given INN. Returns domain.ErrAgentNotFound
// for any upstream miss or incomplete registry data.
func (uc *UseCase) Get(ctx context.Context, inn string) (*entity.Agent, error) {
	return uc.registry.FindByINN(ctx, inn)
}

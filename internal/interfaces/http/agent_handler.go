package http

import (
	"github.com/gofiber/fiber/v2"

	agentapp "github.com/mshagov/ecooffer-api/internal/application/agent"
	"github.com/mshagov/ecooffer-api/internal/application/dto"
)

// AgentHandler handles counterparty lookups in the external registry.
type AgentHandler struct {
	uc *agentapp.UseCase
}

// NewAgentHandler builds the handler.
func NewAgentHandler(uc *agentapp.UseCase) *AgentHandler {
	return &AgentHandler{uc: uc}
}

// GetByINN godoc
// @Summary      Look up an agent by INN
// @Tags         agents
// @Produce      json
// @Param        inn  path  string  true  "Tax id"
// @Success      200  {object}  dto.AgentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /agents/{inn} [get]
func (h *AgentHandler) GetByINN(c *fiber.Ctx) error {
	agent, err := h.uc.Get(c.Context(), c.Params("inn"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AgentResponse{Agent: dto.NewAgentView(agent)})
}

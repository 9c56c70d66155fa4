package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// AgentView agent record on the wire. Management may be absent.
type AgentView struct {
	FullName   string  `json:"fullname"`
	ShortName  string  `json:"shortname"`
	INN        string  `json:"inn"`
	Management *string `json:"management,omitempty"`
}

// AgentResponse envelope for one agent.
type AgentResponse struct {
	Agent AgentView `json:"agent"`
}

// NewAgentView maps an entity to its wire shape.
func NewAgentView(a *entity.Agent) AgentView {
	return AgentView{
		FullName:   a.FullName,
		ShortName:  a.ShortName,
		INN:        a.INN,
		Management: a.Management,
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"github.com/danielhkuo/agent-dispatch/models"
)

// Assignment pairs one contact with the agent it goes to. Every contact
// appears in exactly one assignment.
type Assignment struct {
	Contact models.Contact
	AgentID string
}

// Distribute assigns contacts to agents round-robin: contact i goes to
// agent i mod len(agents). Output preserves contact order and is fully
// deterministic for a given contact and agent order.
//
// There is no cursor carried between calls — each batch starts at the
// first agent, so fairness holds within a batch, not across uploads.
func Distribute(contacts []models.Contact, agents []models.Agent) ([]Assignment, error) {
	if len(agents) == 0 {
		return nil, ErrNoAgents
	}

	assignments := make([]Assignment, 0, len(contacts))
	for i, contact := range contacts {
		assignments = append(assignments, Assignment{
			Contact: contact,
			AgentID: agents[i%len(agents)].ID,
		})
	}
	return assignments, nil
}

package dto

// CommissionRollupResponse summarises commission owed per agent.
type CommissionRollupResponse struct {
	Agents     []AgentTotal `json:"agents"`
	GrandTotal int64        `json:"grandTotal"`
}

// AgentTotal is one agent's aggregate.
type AgentTotal struct {
	Agent      string `json:"agent"`
	Candidates int    `json:"candidates"`
	Total      int64  `json:"total"`
}

// AgentCommissionResponse lists an agent's candidates with the commission owed for each.
type AgentCommissionResponse struct {
	Agent      string           `json:"agent"`
	Candidates []AgentCandidate `json:"candidates"`
	Total      int64            `json:"total"`
}

// AgentCandidate is a candidate row in the agent detail view.
type AgentCandidate struct {
	CandidateID     int    `json:"candidateId"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	VisaStatus      string `json:"visaStatus"`
	AgentCommission int64  `json:"agentCommission"`
}

package service

import (
	"sort"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// CommissionRollup sums commission per agent name. Names are grouped as stored,
// so "Ali Travels" and "ali travels" are separate agents.
func CommissionRollup(candidates []models.Candidate) map[string]int64 {
	out := make(map[string]int64)
	for _, c := range candidates {
		out[c.AgentName] += c.AgentCommission
	}
	return out
}

// AgentCommission returns the candidates recruited by agent and their commission total.
func AgentCommission(candidates []models.Candidate, agent string) ([]dto.AgentCandidate, int64) {
	rows := make([]dto.AgentCandidate, 0)
	var total int64
	for _, c := range candidates {
		if c.AgentName != agent {
			continue
		}
		rows = append(rows, dto.AgentCandidate{
			CandidateID:     c.ID,
			Name:            c.Name,
			Country:         c.Country,
			VisaStatus:      string(c.VisaStatus),
			AgentCommission: c.AgentCommission,
		})
		total += c.AgentCommission
	}
	return rows, total
}

// CommissionService builds the commission views.
type CommissionService struct{}

// NewCommissionService constructs the service.
func NewCommissionService() *CommissionService {
	return &CommissionService{}
}

// Rollup lists agents by total owed, highest first, ties by name.
func (s *CommissionService) Rollup(records RecordReader) *dto.CommissionRollupResponse {
	candidates := records.ListCandidates()
	totals := CommissionRollup(candidates)
	counts := make(map[string]int, len(totals))
	for _, c := range candidates {
		counts[c.AgentName]++
	}

	resp := &dto.CommissionRollupResponse{Agents: make([]dto.AgentTotal, 0, len(totals))}
	for agent, total := range totals {
		resp.Agents = append(resp.Agents, dto.AgentTotal{Agent: agent, Candidates: counts[agent], Total: total})
		resp.GrandTotal += total
	}
	sort.Slice(resp.Agents, func(i, j int) bool {
		if resp.Agents[i].Total == resp.Agents[j].Total {
			return resp.Agents[i].Agent < resp.Agents[j].Agent
		}
		return resp.Agents[i].Total > resp.Agents[j].Total
	})
	return resp
}

// Agent returns one agent's detail. Unknown agents yield an empty list.
func (s *CommissionService) Agent(records RecordReader, agent string) *dto.AgentCommissionResponse {
	rows, total := AgentCommission(records.ListCandidates(), agent)
	return &dto.AgentCommissionResponse{Agent: agent, Candidates: rows, Total: total}
}

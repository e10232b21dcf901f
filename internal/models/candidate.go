package models

import "time"

// VisaStatus is the free-form stage label stored on a candidate.
type VisaStatus string

const (
	VisaStatusDocumentCollection VisaStatus = "Document Collection"
	VisaStatusMedicalPending     VisaStatus = "Medical Pending"
	VisaStatusMedicalFit         VisaStatus = "Medical Fit"
	VisaStatusMofaReady          VisaStatus = "MOFA Ready"
	VisaStatusWakalahDone        VisaStatus = "Wakalah Done"
	VisaStatusVisaStamped        VisaStatus = "Visa Stamped"
	VisaStatusDeployed           VisaStatus = "Deployed"
)

// IqamaPending marks a candidate with no residency permit number yet.
const IqamaPending = "Pending"

// WorkflowStatuses lists the statuses accepted by mutations, in processing order.
// Stored rows may carry other labels.
var WorkflowStatuses = []VisaStatus{
	VisaStatusDocumentCollection,
	VisaStatusMedicalPending,
	VisaStatusMedicalFit,
	VisaStatusMofaReady,
	VisaStatusWakalahDone,
	VisaStatusVisaStamped,
	VisaStatusDeployed,
}

// InWorkflow reports whether the status belongs to the workflow vocabulary (exact match).
func (s VisaStatus) InWorkflow() bool {
	for _, candidate := range WorkflowStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Candidate is a person being processed for overseas placement.
type Candidate struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	PassportNumber  string     `json:"passport_number"`
	PassportExpiry  *time.Time `json:"passport_expiry,omitempty"`
	IqamaNumber     string     `json:"iqama_number"`
	IqamaExpiry     *time.Time `json:"iqama_expiry,omitempty"`
	VisaStatus      VisaStatus `json:"visa_status"`
	AgentName       string     `json:"agent_name"`
	AgentCommission int64      `json:"agent_commission"`
	Country         string     `json:"country"`
}

// Clone returns a deep copy so callers never alias store-owned dates.
func (c Candidate) Clone() Candidate {
	out := c
	out.PassportExpiry = cloneTime(c.PassportExpiry)
	out.IqamaExpiry = cloneTime(c.IqamaExpiry)
	return out
}

// CandidateFields carries the caller-supplied values for a new candidate.
// Zero-valued VisaStatus and nil PassportExpiry take store defaults.
type CandidateFields struct {
	Name            string
	PassportNumber  string
	PassportExpiry  *time.Time
	IqamaNumber     string
	IqamaExpiry     *time.Time
	VisaStatus      VisaStatus
	AgentName       string
	AgentCommission int64
	Country         string
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

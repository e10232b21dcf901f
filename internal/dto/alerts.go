package dto

// ExpiryAlertsResponse lists documents expiring inside the look-ahead window.
type ExpiryAlertsResponse struct {
	AsOf       string        `json:"asOf"`
	WindowDays int           `json:"windowDays"`
	Passports  []ExpiryAlert `json:"passports"`
	Iqamas     []ExpiryAlert `json:"iqamas"`
}

// ExpiryAlert describes one expiring document.
type ExpiryAlert struct {
	CandidateID    int    `json:"candidateId"`
	Name           string `json:"name"`
	DocumentNumber string `json:"documentNumber"`
	ExpiresOn      string `json:"expiresOn"`
	DaysRemaining  int    `json:"daysRemaining"`
	AgentName      string `json:"agentName"`
	Country        string `json:"country"`
}

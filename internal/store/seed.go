package store

import (
	"time"

	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// seedCandidates returns the sample rows every new store starts with.
// Expiry dates are relative to now so the alert view always has something to show.
func seedCandidates(now time.Time) []models.CandidateFields {
	day := models.DateOnly(now)
	at := func(years, days int) *time.Time {
		t := day.AddDate(years, 0, days)
		return &t
	}
	return []models.CandidateFields{
		{
			Name:            "Rahul Sharma",
			PassportNumber:  "P1234567",
			PassportExpiry:  at(0, 120),
			IqamaNumber:     "2345678901",
			IqamaExpiry:     at(0, 300),
			VisaStatus:      "Stamped",
			AgentName:       "Ali Travels",
			AgentCommission: 1500,
			Country:         "Saudi Arabia",
		},
		{
			Name:            "Amit Kumar",
			PassportNumber:  "P7654321",
			PassportExpiry:  at(3, 0),
			IqamaNumber:     models.IqamaPending,
			VisaStatus:      models.VisaStatusMedicalPending,
			AgentName:       "Global Manpower",
			AgentCommission: 2000,
			Country:         "UAE",
		},
		{
			Name:            "Suresh Raina",
			PassportNumber:  "P1122334",
			PassportExpiry:  at(2, 0),
			IqamaNumber:     "2987654321",
			IqamaExpiry:     at(0, 60),
			VisaStatus:      models.VisaStatusVisaStamped,
			AgentName:       "Ali Travels",
			AgentCommission: 1200,
			Country:         "Qatar",
		},
	}
}

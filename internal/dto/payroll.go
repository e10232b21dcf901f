package dto

// PayrollResponse is the salary computed from recorded attendance.
type PayrollResponse struct {
	CandidateID int     `json:"candidateId"`
	Name        string  `json:"name"`
	BasicSalary float64 `json:"basicSalary"`
	DivisorDays int     `json:"divisorDays"`
	PresentDays int     `json:"presentDays"`
	AbsentDays  int     `json:"absentDays"`
	DailyWage   float64 `json:"dailyWage"`
	NetSalary   float64 `json:"netSalary"`
}

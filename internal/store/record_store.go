package store

import (
	"sync"
	"time"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

const firstCandidateID = 101

// Listener receives an event after each committed mutation.
type Listener func(models.Event)

// Option customises a RecordStore at construction.
type Option func(*RecordStore)

// WithClock overrides the store clock used for creation defaults and seed dates.
func WithClock(now func() time.Time) Option {
	return func(s *RecordStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithoutSeed starts the candidate table empty.
func WithoutSeed() Option {
	return func(s *RecordStore) { s.seed = false }
}

// RecordStore holds one session's candidate and attendance tables.
type RecordStore struct {
	mu         sync.RWMutex
	candidates []models.Candidate
	index      map[int]int
	attendance []models.AttendanceRecord
	nextID     int
	listeners  []Listener
	now        func() time.Time
	seed       bool
}

// NewRecordStore builds a store; the candidate table is seeded unless WithoutSeed is given.
func NewRecordStore(opts ...Option) *RecordStore {
	s := &RecordStore{
		index:  make(map[int]int),
		nextID: firstCandidateID,
		now:    time.Now,
		seed:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		for _, fields := range seedCandidates(s.now()) {
			s.insert(fields)
		}
	}
	return s
}

// Subscribe registers a listener for committed mutations.
func (s *RecordStore) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// AddCandidate inserts a candidate with a fresh id. Fields are stored as given.
func (s *RecordStore) AddCandidate(fields models.CandidateFields) models.Candidate {
	s.mu.Lock()
	created := s.insert(fields)
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, models.Event{Kind: models.EventCandidateAdded, CandidateID: created.ID})
	return created.Clone()
}

// UpdateVisaStatus sets the status of an existing candidate in place.
func (s *RecordStore) UpdateVisaStatus(id int, status models.VisaStatus) (models.Candidate, error) {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return models.Candidate{}, candidateNotFound(id)
	}
	s.candidates[pos].VisaStatus = status
	updated := s.candidates[pos].Clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, models.Event{Kind: models.EventVisaStatusUpdated, CandidateID: id})
	return updated, nil
}

// MarkAttendance appends a record for the candidate. Repeated marks for one date are not merged.
func (s *RecordStore) MarkAttendance(date time.Time, candidateID int, present bool) (models.AttendanceRecord, error) {
	s.mu.Lock()
	pos, ok := s.index[candidateID]
	if !ok {
		s.mu.Unlock()
		return models.AttendanceRecord{}, candidateNotFound(candidateID)
	}
	record := models.AttendanceRecord{
		Date:        models.DateOnly(date),
		CandidateID: candidateID,
		Name:        s.candidates[pos].Name,
		Status:      models.AttendanceStatusFor(present),
	}
	s.attendance = append(s.attendance, record)
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, models.Event{Kind: models.EventAttendanceMarked, CandidateID: candidateID})
	return record, nil
}

// GetCandidate returns a copy of one candidate.
func (s *RecordStore) GetCandidate(id int) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return models.Candidate{}, candidateNotFound(id)
	}
	return s.candidates[pos].Clone(), nil
}

// ListCandidates returns a snapshot in insertion order.
func (s *RecordStore) ListCandidates() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Candidate, len(s.candidates))
	for i, c := range s.candidates {
		out[i] = c.Clone()
	}
	return out
}

// ListAttendance returns a snapshot in insertion order.
func (s *RecordStore) ListAttendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out
}

func (s *RecordStore) insert(fields models.CandidateFields) models.Candidate {
	status := fields.VisaStatus
	if status == "" {
		status = models.VisaStatusDocumentCollection
	}
	passportExpiry := fields.PassportExpiry
	if passportExpiry == nil {
		def := models.DateOnly(s.now().AddDate(5, 0, 0))
		passportExpiry = &def
	}
	c := models.Candidate{
		ID:              s.nextID,
		Name:            fields.Name,
		PassportNumber:  fields.PassportNumber,
		PassportExpiry:  passportExpiry,
		IqamaNumber:     fields.IqamaNumber,
		IqamaExpiry:     fields.IqamaExpiry,
		VisaStatus:      status,
		AgentName:       fields.AgentName,
		AgentCommission: fields.AgentCommission,
		Country:         fields.Country,
	}.Clone()
	s.nextID++
	s.index[c.ID] = len(s.candidates)
	s.candidates = append(s.candidates, c)
	return c
}

func (s *RecordStore) listenersLocked() []Listener {
	if len(s.listeners) == 0 {
		return nil
	}
	out := make([]Listener, len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []Listener, evt models.Event) {
	for _, l := range listeners {
		l(evt)
	}
}

func candidateNotFound(id int) error {
	return appErrors.NotFoundf("candidate %d not found", id)
}

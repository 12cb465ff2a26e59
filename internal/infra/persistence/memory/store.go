// Package memory is a process-local persistence backend. It keeps users and patients
// in maps and is selected with storage.driver=memory for development and tests.
package memory

import (
	"sync"

	"patientapp/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every record of the memory backend.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*entity.User
	patients map[uuid.UUID]*entity.Patient

	// txMu serializes TransactionManager.Execute calls.
	txMu sync.Mutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*entity.User),
		patients: make(map[uuid.UUID]*entity.Patient),
	}
}

// undoLog collects the inverse of every write made through a transaction so a
// failed transaction can be rolled back. A nil log records nothing.
type undoLog struct {
	steps []func(*Store)
}

func (l *undoLog) record(step func(*Store)) {
	if l == nil {
		return
	}
	l.steps = append(l.steps, step)
}

func (l *undoLog) rollback(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(l.steps) - 1; i >= 0; i-- {
		l.steps[i](s)
	}
	l.steps = nil
}

func copyUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func copyPatient(p *entity.Patient) *entity.Patient {
	c := *p
	if p.MedicalHistory != nil {
		history := *p.MedicalHistory
		c.MedicalHistory = &history
	}

	return &c
}

package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"portfolio-backend/internal/domain"
)

type State int

const (
	// Idle shows the list with an empty create form.
	Idle State = iota
	Editing
	Submitting
	ConfirmingDelete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case ConfirmingDelete:
		return "confirming-delete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrBusy     = errors.New("another operation is in progress")
	ErrNoRecord = errors.New("record is not in the list")
)

// Manager holds the list and form state of one entity kind in the dashboard.
// The list only changes after the server confirms a write.
type Manager[T domain.Record, P domain.Patch[T]] struct {
	mu      sync.Mutex
	backend Backend[T, P]
	toForm  func(T) P
	name    string

	items     []T
	form      P
	editingID int64
	pendingID int64
	state     State
	prev      State
	err       error
	notice    string
}

func NewManager[T domain.Record, P domain.Patch[T]](backend Backend[T, P], name string, toForm func(T) P) *Manager[T, P] {
	return &Manager[T, P]{backend: backend, name: name, toForm: toForm}
}

func (m *Manager[T, P]) Name() string { return m.name }

func (m *Manager[T, P]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Items returns a copy of the confirmed list.
func (m *Manager[T, P]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.items...)
}

func (m *Manager[T, P]) Form() P {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

func (m *Manager[T, P]) SetForm(form P) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = form
}

// EditingID is the id being edited, zero while creating.
func (m *Manager[T, P]) EditingID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editingID
}

func (m *Manager[T, P]) PendingDelete() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingID
}

// Err is the failure of the last operation, nil after a success.
func (m *Manager[T, P]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Manager[T, P]) Notice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notice
}

// ClearStatus drops the error and notice once they have been shown.
func (m *Manager[T, P]) ClearStatus() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = nil
	m.notice = ""
}

// Load replaces the list with the server's.
func (m *Manager[T, P]) Load(ctx context.Context) error {
	items, err := m.backend.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.err = err
		return err
	}
	m.items = items
	m.err = nil
	return nil
}

// Edit fills the form from the listed record with id.
func (m *Manager[T, P]) Edit(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle && m.state != Editing {
		return ErrBusy
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return ErrNoRecord
	}
	m.form = m.toForm(m.items[idx])
	m.editingID = id
	m.state = Editing
	return nil
}

// New abandons any edit and starts an empty create form.
func (m *Manager[T, P]) New() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle && m.state != Editing {
		return ErrBusy
	}
	m.resetForm()
	return nil
}

// Submit creates or updates from the form. On failure the form and list are kept.
func (m *Manager[T, P]) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Idle && m.state != Editing {
		m.mu.Unlock()
		return ErrBusy
	}
	m.prev = m.state
	m.state = Submitting
	form, id, editing := m.form, m.editingID, m.prev == Editing
	m.mu.Unlock()

	var rec *T
	var err error
	if editing {
		rec, err = m.backend.Update(ctx, id, form)
	} else {
		rec, err = m.backend.Create(ctx, form)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.state = m.prev
		m.err = err
		m.notice = ""
		return err
	}

	if editing {
		if idx := m.indexOf(id); idx >= 0 {
			m.items[idx] = *rec
		} else {
			m.items = append(m.items, *rec)
		}
		m.notice = m.name + " updated"
	} else {
		m.items = append(m.items, *rec)
		m.notice = m.name + " created"
	}
	m.err = nil
	m.resetForm()
	return nil
}

// RequestDelete asks for confirmation; nothing is sent yet.
func (m *Manager[T, P]) RequestDelete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle && m.state != Editing {
		return ErrBusy
	}
	if m.indexOf(id) < 0 {
		return ErrNoRecord
	}
	m.prev = m.state
	m.pendingID = id
	m.state = ConfirmingDelete
	return nil
}

func (m *Manager[T, P]) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != ConfirmingDelete {
		return
	}
	m.state = m.prev
	m.pendingID = 0
}

// ConfirmDelete sends the delete requested by RequestDelete.
func (m *Manager[T, P]) ConfirmDelete(ctx context.Context) error {
	m.mu.Lock()
	if m.state != ConfirmingDelete {
		m.mu.Unlock()
		return ErrBusy
	}
	id := m.pendingID
	m.state = Submitting
	m.mu.Unlock()

	err := m.backend.Delete(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pendingID = 0
	if err != nil {
		m.state = m.prev
		m.err = err
		m.notice = ""
		return err
	}

	if idx := m.indexOf(id); idx >= 0 {
		m.items = append(m.items[:idx], m.items[idx+1:]...)
	}
	m.err = nil
	m.notice = m.name + " deleted"
	if m.prev == Editing && m.editingID == id {
		m.resetForm()
	} else {
		m.state = m.prev
	}
	return nil
}

func (m *Manager[T, P]) resetForm() {
	var zero P
	m.form = zero
	m.editingID = 0
	m.state = Idle
}

func (m *Manager[T, P]) indexOf(id int64) int {
	for i, item := range m.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"portfolio-backend/internal/admin"
	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skillAPI serves /api/skills from memory and counts writes.
type skillAPI struct {
	mu     sync.Mutex
	next   int64
	rows   map[int64]domain.Skill
	writes int
}

func (a *skillAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	writeErr := func(code int, msg string) {
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "request_id": "req-1"})
	}

	if r.Method != http.MethodGet && r.Header.Get("Authorization") != "Bearer admin-token" {
		writeErr(http.StatusUnauthorized, "Authentication required")
		return
	}

	idPart := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/api/skills"), "/")
	switch {
	case r.Method == http.MethodGet && idPart == "":
		out := []domain.Skill{}
		for i := int64(1); i <= a.next; i++ {
			if s, ok := a.rows[i]; ok {
				out = append(out, s)
			}
		}
		_ = json.NewEncoder(w).Encode(out)

	case r.Method == http.MethodPost:
		a.writes++
		var patch domain.SkillPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		if patch.Image == nil {
			writeErr(http.StatusBadRequest, "Missing required field: image")
			return
		}
		var s domain.Skill
		patch.Apply(&s)
		a.next++
		s.ID = a.next
		a.rows[s.ID] = s
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(s)

	case r.Method == http.MethodPut:
		a.writes++
		id, _ := strconv.ParseInt(idPart, 10, 64)
		s, ok := a.rows[id]
		if !ok {
			writeErr(http.StatusNotFound, "Skill not found")
			return
		}
		var patch domain.SkillPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		patch.Apply(&s)
		a.rows[id] = s
		_ = json.NewEncoder(w).Encode(s)

	case r.Method == http.MethodDelete:
		a.writes++
		id, _ := strconv.ParseInt(idPart, 10, 64)
		if _, ok := a.rows[id]; !ok {
			writeErr(http.StatusNotFound, "Skill not found")
			return
		}
		delete(a.rows, id)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Skill deleted successfully"})

	default:
		writeErr(http.StatusMethodNotAllowed, "method not allowed")
	}
}

func str(s string) *string { return &s }
func num(i int) *int       { return &i }

func newSkillManager(t *testing.T, token string) (*admin.Manager[domain.Skill, domain.SkillPatch], *skillAPI) {
	t.Helper()
	api := &skillAPI{rows: map[int64]domain.Skill{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := admin.NewClient(srv.URL+"/", token)
	return admin.NewManager[domain.Skill, domain.SkillPatch](admin.Skills(client), "Skill", admin.SkillForm), api
}

func TestManager_CreateEditDelete(t *testing.T) {
	ctx := context.Background()
	m, api := newSkillManager(t, "admin-token")

	require.NoError(t, m.Load(ctx))
	assert.Empty(t, m.Items())
	assert.Equal(t, admin.Idle, m.State())

	m.SetForm(domain.SkillPatch{Name: str("Go"), Image: str("/go.png"), Proficiency: num(90)})
	require.NoError(t, m.Submit(ctx))
	require.Len(t, m.Items(), 1)
	assert.Equal(t, admin.Idle, m.State())
	assert.Nil(t, m.Form().Name)
	assert.Equal(t, "Skill created", m.Notice())

	id := m.Items()[0].ID
	require.NoError(t, m.Edit(id))
	assert.Equal(t, admin.Editing, m.State())
	assert.Equal(t, "Go", *m.Form().Name)

	form := m.Form()
	form.Proficiency = num(95)
	m.SetForm(form)
	require.NoError(t, m.Submit(ctx))
	assert.Equal(t, 95, *m.Items()[0].Proficiency)
	assert.Equal(t, admin.Idle, m.State())

	require.NoError(t, m.RequestDelete(id))
	assert.Equal(t, admin.ConfirmingDelete, m.State())
	writesBefore := api.writes

	m.CancelDelete()
	assert.Equal(t, admin.Idle, m.State())
	assert.Equal(t, writesBefore, api.writes, "cancel must not reach the server")
	assert.Len(t, m.Items(), 1)

	require.NoError(t, m.RequestDelete(id))
	require.NoError(t, m.ConfirmDelete(ctx))
	assert.Empty(t, m.Items())
	assert.Equal(t, admin.Idle, m.State())
	assert.Equal(t, writesBefore+1, api.writes)
}

func TestManager_FailedSubmitKeepsState(t *testing.T) {
	ctx := context.Background()
	m, _ := newSkillManager(t, "admin-token")

	m.SetForm(domain.SkillPatch{Name: str("Go"), Proficiency: num(50)})
	err := m.Submit(ctx)

	var apiErr *admin.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing required field: image", apiErr.Message)
	assert.Equal(t, "req-1", apiErr.RequestID)

	assert.Equal(t, admin.Idle, m.State())
	assert.Equal(t, err, m.Err())
	assert.Empty(t, m.Items())
	assert.Equal(t, "Go", *m.Form().Name, "form stays populated")
}

func TestManager_FailedEditReturnsToEditing(t *testing.T) {
	ctx := context.Background()
	m, api := newSkillManager(t, "admin-token")

	m.SetForm(domain.SkillPatch{Name: str("Go"), Image: str("/go.png"), Proficiency: num(90)})
	require.NoError(t, m.Submit(ctx))
	id := m.Items()[0].ID
	require.NoError(t, m.Edit(id))

	// Someone else deleted it meanwhile
	api.mu.Lock()
	delete(api.rows, id)
	api.mu.Unlock()

	err := m.Submit(ctx)
	assert.EqualError(t, err, "Skill not found")
	assert.Equal(t, admin.Editing, m.State())
	assert.Equal(t, id, m.EditingID())
	assert.Len(t, m.Items(), 1)

	require.NoError(t, m.RequestDelete(id))
	assert.Error(t, m.ConfirmDelete(ctx))
	assert.Equal(t, admin.Editing, m.State())
	assert.Len(t, m.Items(), 1)
}

func TestManager_Unauthorized(t *testing.T) {
	m, _ := newSkillManager(t, "")
	m.SetForm(domain.SkillPatch{Name: str("Go"), Image: str("/go.png"), Proficiency: num(10)})

	err := m.Submit(context.Background())
	var apiErr *admin.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestManager_Transitions(t *testing.T) {
	m, _ := newSkillManager(t, "admin-token")

	assert.ErrorIs(t, m.Edit(42), admin.ErrNoRecord)
	assert.ErrorIs(t, m.RequestDelete(42), admin.ErrNoRecord)
	assert.ErrorIs(t, m.ConfirmDelete(context.Background()), admin.ErrBusy)

	m.CancelDelete()
	assert.Equal(t, admin.Idle, m.State())
	assert.Equal(t, "confirming-delete", admin.ConfirmingDelete.String())
}

package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/admin"
	"portfolio-backend/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes cmd and any batched commands, collecting their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func opResult(t *testing.T, msgs []tea.Msg) opDoneMsg {
	t.Helper()
	for _, msg := range msgs {
		if done, ok := msg.(opDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no opDoneMsg produced")
	return opDoneMsg{}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *int) {
	t.Helper()
	posts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/api/projects" {
				_ = json.NewEncoder(w).Encode([]domain.Project{{ID: 1, Title: "Existing", Tags: []string{"go"}}})
				return
			}
			_, _ = w.Write([]byte("[]"))
		case http.MethodPost:
			posts++
			var patch domain.ProjectPatch
			_ = json.NewDecoder(r.Body).Decode(&patch)
			if patch.Description == nil || *patch.Description == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Missing required field: description"}`))
				return
			}
			var p domain.Project
			patch.Apply(&p)
			p.ID = 2
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(p)
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"Project deleted successfully"}`))
		}
	}))
	t.Cleanup(srv.Close)

	m := NewModel(context.Background(), admin.NewClient(srv.URL, "token"))
	for i := range m.sections {
		runCmd(m.load(i))
	}
	return m, &posts
}

func TestModel_CreateFlow(t *testing.T) {
	m, posts := newTestModel(t)
	require.Len(t, m.current().Rows(), 1)

	next, _ := m.Update(key("n"))
	m = next.(Model)
	require.Equal(t, modeForm, m.mode)
	require.Len(t, m.inputs, 7)

	m.inputs[0].SetValue("New project")
	m.inputs[2].SetValue("go, , tui")

	// Missing description: server rejects, form stays open and populated
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	assert.True(t, m.busy)
	next, _ = m.Update(opResult(t, runCmd(cmd)))
	m = next.(Model)
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "New project", m.inputs[0].Value())
	assert.EqualError(t, m.current().Err(), "Missing required field: description")
	assert.Len(t, m.current().Rows(), 1)

	m.inputs[1].SetValue("Built with bubbletea")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	next, _ = m.Update(opResult(t, runCmd(cmd)))
	m = next.(Model)
	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.current().Rows(), 2)
	assert.Equal(t, 2, *posts)
	assert.Contains(t, m.View(), "Project created")
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(key("d"))
	m = next.(Model)
	assert.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Delete #1?")

	next, _ = m.Update(key("n"))
	m = next.(Model)
	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.current().Rows(), 1)

	next, _ = m.Update(key("d"))
	m = next.(Model)
	next, cmd := m.Update(key("y"))
	m = next.(Model)
	next, _ = m.Update(opResult(t, runCmd(cmd)))
	m = next.(Model)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.current().Rows())
}

func TestSkillSection_ProficiencyInput(t *testing.T) {
	mgr := admin.NewManager[domain.Skill, domain.SkillPatch](admin.Skills(admin.NewClient("http://unused", "")), "Skill", admin.SkillForm)
	sec := skillSection(mgr)

	err := sec.ApplyInputs([]string{"Go", "/go.png", "abc", ""})
	assert.EqualError(t, err, "Proficiency (0-100): must be a number between 0 and 100")

	require.NoError(t, sec.ApplyInputs([]string{"Go", "/go.png", "0", ""}))
	form := mgr.Form()
	require.NotNil(t, form.Proficiency)
	assert.Equal(t, 0, *form.Proficiency)
	assert.Equal(t, []string{"Go", "/go.png", "0", ""}, sec.FormValues())
}

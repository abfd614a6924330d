package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devfolio/api/internal/skill"
)

func createSkill(t *testing.T, e *testEnv, body string) skill.Skill {
	t.Helper()
	w := e.do(t, jsonRequest(t, "POST", "/api/skills", body), true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s skill.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func TestSkills_CreateAndList(t *testing.T) {
	e := newTestEnv(t)

	createSkill(t, e, `{"name":"React","level":"Advanced","percentage":80,"category":"frontend"}`)
	createSkill(t, e, `{"name":"Go","level":"Expert","percentage":95,"category":"backend"}`)
	createSkill(t, e, `{"name":"CSS","level":"Advanced","percentage":85,"category":"frontend"}`)

	w := e.do(t, httptest.NewRequest("GET", "/api/skills", nil), false)
	require.Equal(t, http.StatusOK, w.Code)

	var list []skill.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	// backend before frontend, then descending percentage
	require.Equal(t, "Go", list[0].Name)
	require.Equal(t, "CSS", list[1].Name)
	require.Equal(t, "React", list[2].Name)
}

func TestSkills_CreateRequiresAuth(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, jsonRequest(t, "POST", "/api/skills",
		`{"name":"Go","level":"Expert","percentage":95,"category":"backend"}`), false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSkills_CreateValidation(t *testing.T) {
	e := newTestEnv(t)

	cases := []string{
		`{"level":"Expert","percentage":95,"category":"backend"}`,
		`{"name":"Go","percentage":95,"category":"backend"}`,
		`{"name":"Go","level":"Expert","category":"backend"}`,
		`{"name":"Go","level":"Expert","percentage":95}`,
		`{"name":"Go","level":"Expert","percentage":95,"category":"devops"}`,
	}
	for _, body := range cases {
		w := e.do(t, jsonRequest(t, "POST", "/api/skills", body), true)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestSkills_ZeroPercentageAccepted(t *testing.T) {
	e := newTestEnv(t)

	s := createSkill(t, e, `{"name":"Rust","level":"Learning","percentage":0,"category":"backend"}`)
	require.Equal(t, 0, s.Percentage)
}

func TestSkills_Delete(t *testing.T) {
	e := newTestEnv(t)

	s := createSkill(t, e, `{"name":"Go","level":"Expert","percentage":95,"category":"backend"}`)

	w := e.do(t, httptest.NewRequest("DELETE", fmt.Sprintf("/api/skills/%d", s.ID), nil), true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = e.do(t, httptest.NewRequest("DELETE", fmt.Sprintf("/api/skills/%d", s.ID), nil), true)
	require.Equal(t, http.StatusNotFound, w.Code)
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventware/survey-go/internal/api/handlers"
	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/internal/domain/tagsurvey"
	"github.com/eventware/survey-go/internal/domain/websurvey"
	"github.com/eventware/survey-go/internal/repository"
	"github.com/eventware/survey-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories backing the full handler stack. Insertion order is
// preserved so pagination is deterministic.

type memTemplateRepo struct {
	order []string
	docs  map[string]*survey.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{docs: map[string]*survey.Template{}}
}

func (m *memTemplateRepo) Create(_ context.Context, t *survey.Template) (string, error) {
	t.ID = primitive.NewObjectID()
	id := t.ID.Hex()
	m.docs[id] = t
	m.order = append(m.order, id)
	return id, nil
}

func (m *memTemplateRepo) FindByID(_ context.Context, id string) (*survey.Template, error) {
	t, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (m *memTemplateRepo) Find(_ context.Context, isActive *bool, skip, limit int64) ([]survey.Template, error) {
	matched := []survey.Template{}
	for _, id := range m.order {
		t, ok := m.docs[id]
		if !ok {
			continue
		}
		if isActive != nil && t.IsActive != *isActive {
			continue
		}
		matched = append(matched, *t)
	}
	return page(matched, skip, limit), nil
}

func (m *memTemplateRepo) Count(_ context.Context, isActive *bool) (int64, error) {
	var n int64
	for _, t := range m.docs {
		if isActive != nil && t.IsActive != *isActive {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memTemplateRepo) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	t, ok := m.docs[id]
	if !ok {
		return false, nil
	}
	if name, ok := fields["name"].(string); ok {
		t.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		t.Description = desc
	}
	if schema, ok := fields["schema"].([]survey.FieldSchema); ok {
		t.Schema = schema
	}
	if active, ok := fields["is_active"].(bool); ok {
		t.IsActive = active
	}
	return true, nil
}

func (m *memTemplateRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.docs[id]; !ok {
		return false, nil
	}
	delete(m.docs, id)
	return true, nil
}

func (m *memTemplateRepo) IncResponseCount(_ context.Context, id string, delta int) error {
	if t, ok := m.docs[id]; ok {
		t.ResponseCount += int64(delta)
	}
	return nil
}

type memResponseRepo struct {
	order []string
	docs  map[string]*survey.Response
}

func newMemResponseRepo() *memResponseRepo {
	return &memResponseRepo{docs: map[string]*survey.Response{}}
}

func (m *memResponseRepo) Insert(_ context.Context, r *survey.Response) (string, error) {
	r.ID = primitive.NewObjectID()
	id := r.ID.Hex()
	m.docs[id] = r
	m.order = append(m.order, id)
	return id, nil
}

func (m *memResponseRepo) FindByID(_ context.Context, id string) (*survey.Response, error) {
	r, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (m *memResponseRepo) Find(_ context.Context, templateID string, skip, limit int64) ([]survey.Response, error) {
	matched := []survey.Response{}
	for _, id := range m.order {
		r, ok := m.docs[id]
		if !ok {
			continue
		}
		if templateID != "" && r.TemplateID != templateID {
			continue
		}
		matched = append(matched, *r)
	}
	return page(matched, skip, limit), nil
}

func (m *memResponseRepo) Count(_ context.Context, templateID string) (int64, error) {
	var n int64
	for _, r := range m.docs {
		if templateID != "" && r.TemplateID != templateID {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memResponseRepo) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	r, ok := m.docs[id]
	if !ok {
		return false, nil
	}
	if responses, ok := fields["responses"].(map[string]any); ok {
		r.Responses = responses
	}
	if metadata, ok := fields["metadata"].(map[string]any); ok {
		r.Metadata = metadata
	}
	return true, nil
}

func (m *memResponseRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.docs[id]; !ok {
		return false, nil
	}
	delete(m.docs, id)
	return true, nil
}

type memWebSurveyRepo struct {
	order []string
	docs  map[string]*websurvey.Survey
}

func newMemWebSurveyRepo() *memWebSurveyRepo {
	return &memWebSurveyRepo{docs: map[string]*websurvey.Survey{}}
}

func (m *memWebSurveyRepo) Insert(_ context.Context, s *websurvey.Survey) (string, error) {
	s.ID = primitive.NewObjectID()
	id := s.ID.Hex()
	m.docs[id] = s
	m.order = append(m.order, id)
	return id, nil
}

func (m *memWebSurveyRepo) FindByID(_ context.Context, id string) (*websurvey.Survey, error) {
	s, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (m *memWebSurveyRepo) Find(_ context.Context, skip, limit int64) ([]websurvey.Survey, error) {
	all := []websurvey.Survey{}
	for _, id := range m.order {
		if s, ok := m.docs[id]; ok {
			all = append(all, *s)
		}
	}
	return page(all, skip, limit), nil
}

func (m *memWebSurveyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.docs)), nil
}

type memTagSurveyRepo struct {
	order []string
	docs  map[string]*tagsurvey.Survey
}

func newMemTagSurveyRepo() *memTagSurveyRepo {
	return &memTagSurveyRepo{docs: map[string]*tagsurvey.Survey{}}
}

func (m *memTagSurveyRepo) Insert(_ context.Context, s *tagsurvey.Survey) (string, error) {
	s.ID = primitive.NewObjectID()
	id := s.ID.Hex()
	m.docs[id] = s
	m.order = append(m.order, id)
	return id, nil
}

func (m *memTagSurveyRepo) FindByID(_ context.Context, id string) (*tagsurvey.Survey, error) {
	s, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (m *memTagSurveyRepo) Find(_ context.Context, filter bson.M, skip, limit int64) ([]tagsurvey.Survey, error) {
	matched := []tagsurvey.Survey{}
	for _, id := range m.order {
		s, ok := m.docs[id]
		if !ok {
			continue
		}
		if status, ok := filter["status"].(string); ok && s.Status != status {
			continue
		}
		if email, ok := filter["organizer_email"].(string); ok && s.OrganizerEmail != email {
			continue
		}
		matched = append(matched, *s)
	}
	return page(matched, skip, limit), nil
}

func (m *memTagSurveyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.docs)), nil
}

func (m *memTagSurveyRepo) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	s, ok := m.docs[id]
	if !ok {
		return false, nil
	}
	if status, ok := fields["status"].(string); ok {
		s.Status = status
	}
	if name, ok := fields["event_name"].(string); ok {
		s.EventName = name
	}
	if tags, ok := fields["requested_tags"].([]string); ok {
		s.RequestedTags = tags
	}
	return true, nil
}

func (m *memTagSurveyRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.docs[id]; !ok {
		return false, nil
	}
	delete(m.docs, id)
	return true, nil
}

func page[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type env struct {
	router    *gin.Engine
	templates *memTemplateRepo
	responses *memResponseRepo
	web       *memWebSurveyRepo
	tags      *memTagSurveyRepo
}

func setup(t *testing.T) *env {
	t.Helper()
	e := &env{
		templates: newMemTemplateRepo(),
		responses: newMemResponseRepo(),
		web:       newMemWebSurveyRepo(),
		tags:      newMemTagSurveyRepo(),
	}
	repos := &repository.Repos{
		Template: e.templates,
		Response: e.responses,
		Web:      e.web,
		Tag:      e.tags,
	}
	h := handlers.New(application.New(repos), stubPinger{})
	e.router = testutils.SetupRouter(h)
	return e
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedTemplate creates a template over HTTP and returns its id.
func (e *env) seedTemplate(t *testing.T, schema []map[string]any) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/custom-survey-template/", map[string]any{
		"name":   "Event Feedback",
		"schema": schema,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["template_id"].(string)
}

func textField(id, title string) map[string]any {
	return map[string]any{"field_id": id, "title": title, "type": "STRING"}
}

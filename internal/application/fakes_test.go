package application

import (
	"context"

	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeTemplateRepo is an in-memory TemplateRepo. Documents are keyed by hex
// id; IncCalls records counter deltas so tests can assert on them.
type fakeTemplateRepo struct {
	docs     map[string]*survey.Template
	IncCalls map[string]int
	IncErr   error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		docs:     map[string]*survey.Template{},
		IncCalls: map[string]int{},
	}
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *survey.Template) (string, error) {
	t.ID = primitive.NewObjectID()
	f.docs[t.ID.Hex()] = t
	return t.ID.Hex(), nil
}

func (f *fakeTemplateRepo) FindByID(_ context.Context, id string) (*survey.Template, error) {
	t, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTemplateRepo) Find(_ context.Context, isActive *bool, skip, limit int64) ([]survey.Template, error) {
	out := []survey.Template{}
	for _, t := range f.docs {
		if isActive != nil && t.IsActive != *isActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Count(_ context.Context, isActive *bool) (int64, error) {
	var n int64
	for _, t := range f.docs {
		if isActive != nil && t.IsActive != *isActive {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	t, ok := f.docs[id]
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

func (f *fakeTemplateRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeTemplateRepo) IncResponseCount(_ context.Context, id string, delta int) error {
	if f.IncErr != nil {
		return f.IncErr
	}
	f.IncCalls[id] += delta
	if t, ok := f.docs[id]; ok {
		t.ResponseCount += int64(delta)
	}
	return nil
}

type fakeResponseRepo struct {
	docs map[string]*survey.Response
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{docs: map[string]*survey.Response{}}
}

func (f *fakeResponseRepo) Insert(_ context.Context, resp *survey.Response) (string, error) {
	resp.ID = primitive.NewObjectID()
	f.docs[resp.ID.Hex()] = resp
	return resp.ID.Hex(), nil
}

func (f *fakeResponseRepo) FindByID(_ context.Context, id string) (*survey.Response, error) {
	r, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeResponseRepo) Find(_ context.Context, templateID string, skip, limit int64) ([]survey.Response, error) {
	out := []survey.Response{}
	for _, r := range f.docs {
		if templateID != "" && r.TemplateID != templateID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeResponseRepo) Count(_ context.Context, templateID string) (int64, error) {
	var n int64
	for _, r := range f.docs {
		if templateID != "" && r.TemplateID != templateID {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeResponseRepo) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	r, ok := f.docs[id]
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

func (f *fakeResponseRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func newFakeRepos() (*repository.Repos, *fakeTemplateRepo, *fakeResponseRepo) {
	templates := newFakeTemplateRepo()
	responses := newFakeResponseRepo()
	repos := &repository.Repos{Template: templates, Response: responses}
	return repos, templates, responses
}

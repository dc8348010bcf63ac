package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"projectcenter/internal/audit"
	"projectcenter/internal/interfaces"
	"projectcenter/internal/middleware"
	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
	"projectcenter/internal/tracker"
)

const testActor = "pm@macproducts.net"

type mockProjectRepo struct {
	rows      []models.Project
	updateErr error
}

var _ interfaces.ProjectRepository = (*mockProjectRepo)(nil)

func (m *mockProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), m.rows...), nil
}
func (m *mockProjectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return nil, interfaces.ErrNotFound
}
func (m *mockProjectRepo) Create(ctx context.Context, p *models.Project) error {
	p.ID = int64(len(m.rows) + 100)
	m.rows = append(m.rows, *p)
	return nil
}
func (m *mockProjectRepo) Update(ctx context.Context, p *models.Project) error { return m.updateErr }
func (m *mockProjectRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (m *mockProjectRepo) Count(ctx context.Context) (int, error)              { return len(m.rows), nil }

type mockChangeLogRepo struct{}

var _ interfaces.ChangeLogRepository = (*mockChangeLogRepo)(nil)

func (m *mockChangeLogRepo) List(ctx context.Context) ([]models.ChangeLogEntry, error) {
	return []models.ChangeLogEntry{}, nil
}
func (m *mockChangeLogRepo) Create(ctx context.Context, e *models.ChangeLogEntry) error { return nil }

type mockBlobStore struct{ uploads int }

var _ interfaces.BlobStore = (*mockBlobStore)(nil)

func (m *mockBlobStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (*interfaces.StoredObject, error) {
	m.uploads++
	return &interfaces.StoredObject{URL: "https://cdn.test/" + path, Path: path}, nil
}
func (m *mockBlobStore) Delete(ctx context.Context, path string) error { return nil }

func testProject(id int64) models.Project {
	return models.Project{
		ID: id, Category: models.CategoryEHV, Utility: "Duke", Substation: "North",
		DateCreated: "1/5/2025", Order: "A-1", FatDate: "Dec. 2025", Landing: "Mar-26",
		Status: models.StatusActive, Lead: "TBD", Milestones: milestone.NewSet(),
		PunchList: []models.PunchListItem{},
	}
}

func newTestTracker(t *testing.T, repo *mockProjectRepo) (*tracker.Tracker, *mockBlobStore) {
	t.Helper()
	blobs := &mockBlobStore{}
	tr := tracker.New(repo, audit.NewLog(&mockChangeLogRepo{}), blobs, 5)
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return tr, blobs
}

// testRouter mounts the handlers the way routes does, minus JWT, with a fixed
// signed-in user.
func testRouter(tr *tracker.Tracker) chi.Router {
	ph := NewProjectHandler(tr)
	dh := NewDraftHandler(tr)
	sh := NewDashboardHandler(tr)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.CtxEmail, testActor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	r.Get("/projects", ph.List)
	r.Post("/projects", ph.Create)
	r.Get("/projects/punch-list", ph.PunchList)
	r.Get("/projects/{id}", ph.Get)
	r.Put("/projects/{id}", ph.Replace)
	r.Patch("/projects/{id}", ph.Update)
	r.Delete("/projects/{id}", ph.Delete)
	r.Post("/projects/{id}/punch-list/{itemID}/toggle", ph.TogglePunchItem)
	r.Post("/projects/{id}/punch-list/{itemID}/attachments", ph.UploadAttachment)
	r.Post("/projects/{id}/drafts", dh.Open)
	r.Post("/drafts/{draftID}/milestones/{stage}/advance", dh.AdvanceMilestone)
	r.Post("/drafts/{draftID}/punch-list", dh.AddPunchItem)
	r.Post("/drafts/{draftID}/save", dh.Save)
	r.Get("/changelog", sh.ChangeLog)
	r.Get("/calendar/{year}", sh.Year)
	r.Get("/calendar/{year}/{month}", sh.Month)
	r.Get("/dashboard", sh.Stats)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("%s %s: expected application/json got %q", method, path, ct)
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, w.Body.String())
	}
	return v
}

func TestListProjectsReturnsJSONArray(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{rows: []models.Project{testProject(1)}})
	w := do(t, testRouter(tr), http.MethodGet, "/projects?search=duke", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	projects := decode[[]models.Project](t, w)
	if len(projects) != 1 || projects[0].Utility != "Duke" {
		t.Fatalf("unexpected projects %+v", projects)
	}
}

func TestGetProjectErrors(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{})
	r := testRouter(tr)

	if w := do(t, r, http.MethodGet, "/projects/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	w := do(t, r, http.MethodGet, "/projects/9", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	if resp := decode[map[string]any](t, w); resp["error"] != "not_found" {
		t.Fatalf("expected not_found got %v", resp)
	}
}

func TestCreateProjectValidates(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{})
	r := testRouter(tr)

	w := do(t, r, http.MethodPost, "/projects", map[string]any{"category": "Mining", "utility": "x", "substation": "y"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/projects", map[string]any{"category": "Field Service", "utility": "TVA", "substation": "East", "order": "9"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	p := decode[models.Project](t, w)
	if p.Lead != "TBD" || p.Milestones.FAT != milestone.NotStarted {
		t.Fatalf("expected defaults got %+v", p)
	}
	entries := decode[[]models.ChangeLogEntry](t, do(t, r, http.MethodGet, "/changelog", nil))
	if len(entries) != 1 || entries[0].UserEmail != testActor {
		t.Fatalf("expected creation entry by the signed-in user, got %+v", entries)
	}
}

func TestDraftFlowOverHTTP(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{rows: []models.Project{testProject(1)}})
	r := testRouter(tr)

	w := do(t, r, http.MethodPost, "/projects/1/drafts", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	draft := decode[tracker.Draft](t, w)

	w = do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/punch-list", map[string]any{"description": "Replace gasket"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while FAT is open got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/milestones/paint/advance", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown stage got %d", w.Code)
	}
	for i := 0; i < 3; i++ {
		if w := do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/milestones/fat/advance", nil); w.Code != http.StatusOK {
			t.Fatalf("advance: expected 200 got %d", w.Code)
		}
	}
	if w := do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/punch-list", map[string]any{"description": ""}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty description got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/punch-list", map[string]any{"description": "Replace gasket"}); w.Code != http.StatusOK {
		t.Fatalf("add item: expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/drafts/"+draft.ID+"/save", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("save: expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	entries := decode[[]models.ChangeLogEntry](t, do(t, r, http.MethodGet, "/changelog?projectId=1", nil))
	want := `FAT: Not Started -> Completed | Punch List: Added "Replace gasket"`
	if len(entries) != 1 || entries[0].Changes != want {
		t.Fatalf("expected %q got %+v", want, entries)
	}

	open := decode[[]models.Project](t, do(t, r, http.MethodGet, "/projects/punch-list", nil))
	if len(open) != 1 {
		t.Fatalf("expected one project with an open punch list got %d", len(open))
	}
}

func TestSaveBackendFailureReturns502(t *testing.T) {
	repo := &mockProjectRepo{rows: []models.Project{testProject(1)}}
	tr, _ := newTestTracker(t, repo)
	repo.updateErr = errors.New("connection refused")

	w := do(t, testRouter(tr), http.MethodPatch, "/projects/1", map[string]any{"lead": "Sam"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d (%s)", w.Code, w.Body.String())
	}
	if resp := decode[map[string]any](t, w); resp["error"] != "backend_unavailable" {
		t.Fatalf("unexpected body %v", resp)
	}
	p, _ := tr.Project(1)
	if p.Lead != "TBD" {
		t.Fatalf("expected lead unchanged after failed save, got %q", p.Lead)
	}
}

func TestReplaceRejectsNewPunchItemsBeforeFAT(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{rows: []models.Project{testProject(1)}})
	p := testProject(1)
	p.PunchList = []models.PunchListItem{{Description: "Sneaky"}}

	w := do(t, testRouter(tr), http.MethodPut, "/projects/1", p)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUploadAttachment(t *testing.T) {
	p := testProject(1)
	p.Milestones.FAT = milestone.Completed
	p.PunchList = []models.PunchListItem{{ID: "item", Description: "Door"}}
	tr, blobs := newTestTracker(t, &mockProjectRepo{rows: []models.Project{p}})
	r := testRouter(tr)

	upload := func(name, contentType, data string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		h.Set("Content-Type", contentType)
		part, _ := mw.CreatePart(h)
		_, _ = part.Write([]byte(data))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/projects/1/punch-list/item/attachments", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := upload("notes.txt", "text/plain", "hello")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for text file got %d (%s)", w.Code, w.Body.String())
	}
	if blobs.uploads != 0 {
		t.Fatalf("expected rejected file to never reach storage")
	}

	w = upload("door.png", "image/png", "png")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	att := decode[models.PunchListAttachment](t, w)
	if att.Type != models.AttachmentImage || att.UploadedBy != testActor || !strings.HasPrefix(att.Path, "1/item/") {
		t.Fatalf("unexpected attachment %+v", att)
	}
}

func TestCalendarAndDashboard(t *testing.T) {
	tr, _ := newTestTracker(t, &mockProjectRepo{rows: []models.Project{testProject(1)}})
	r := testRouter(tr)

	year := decode[map[string]any](t, do(t, r, http.MethodGet, "/calendar/2025", nil))
	months, _ := year["months"].([]any)
	if len(months) != 12 {
		t.Fatalf("expected 12 months got %d", len(months))
	}

	w := do(t, r, http.MethodGet, "/calendar/2026/3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	month := decode[map[string]any](t, w)
	if month["month"] != float64(2) {
		t.Fatalf("expected zero-based month 2 got %v", month["month"])
	}
	if evs, _ := month["events"].([]any); len(evs) != 1 {
		t.Fatalf("expected the Mar-26 landing, got %v", month["events"])
	}

	if w := do(t, r, http.MethodGet, "/calendar/2026/13", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for month 13 got %d", w.Code)
	}

	stats := decode[models.DashboardStats](t, do(t, r, http.MethodGet, "/dashboard", nil))
	if stats.Total != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

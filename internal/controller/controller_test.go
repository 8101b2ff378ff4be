package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/formsmith/formsmith/internal/controller"
	"github.com/formsmith/formsmith/internal/model"
	"github.com/formsmith/formsmith/internal/repository"
	"github.com/formsmith/formsmith/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Form{}, &model.Response{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	formRepo := repository.NewFormRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	ctrl := controller.NewController(
		service.NewFormService(formRepo),
		service.NewResponseService(formRepo, responseRepo),
	)

	r := gin.New()
	ctrl.RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestForm(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/forms", `{
		"title": "Contact",
		"description": "reach out",
		"fields": [
			{"id": "name", "type": "text", "label": "Name", "required": true},
			{"id": "topics", "type": "checkbox", "label": "Topics", "options": ["sales", "support"]}
		]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create form: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var form struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &form); err != nil {
		t.Fatalf("create form: bad body: %v", err)
	}
	return form.ID
}

func TestFormLifecycle(t *testing.T) {
	r := newTestRouter(t)
	id := createTestForm(t, r)

	w := do(t, r, http.MethodGet, "/forms", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var forms []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &forms); err != nil {
		t.Fatalf("list: bad body: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("list: expected 1 form, got %d", len(forms))
	}

	w = do(t, r, http.MethodGet, "/forms/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"title":"Contact"`) {
		t.Errorf("get: unexpected body %s", w.Body.String())
	}

	w = do(t, r, http.MethodPut, "/forms/"+id, `{"title": "Contact v2", "fields": []}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"title":"Contact v2"`) {
		t.Errorf("update: unexpected body %s", w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/forms/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message"`) {
		t.Errorf("delete: expected message body, got %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/forms/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestFormValidationStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty title", `{"title": "", "fields": []}`},
		{"missing fields", `{"title": "ok"}`},
		{"unknown field type", `{"title": "ok", "fields": [{"id": "x", "type": "slider"}]}`},
		{"fields not a list", `{"title": "ok", "fields": "nope"}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/forms", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	w := do(t, r, http.MethodPut, "/forms/missing", `{"title": "ok", "fields": []}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing: expected 404, got %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/forms/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing: expected 404, got %d", w.Code)
	}
}

func TestResponseSubmission(t *testing.T) {
	r := newTestRouter(t)
	id := createTestForm(t, r)

	w := do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{
		"answers": {"name": "Alice", "topics": ["sales", "support"]},
		"submitterName": "Alice",
		"submitterEmail": "alice@example.com"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"formId":"`+id+`"`) {
		t.Errorf("submit: unexpected body %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/forms/"+id+"/responses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list responses: expected 200, got %d", w.Code)
	}
	var responses []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &responses); err != nil {
		t.Fatalf("list responses: bad body: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("list responses: expected 1, got %d", len(responses))
	}

	w = do(t, r, http.MethodGet, "/responses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list all: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"formTitle":"Contact"`) {
		t.Errorf("list all: expected joined form title, got %s", w.Body.String())
	}
}

func TestResponseSubmissionStatusCodes(t *testing.T) {
	r := newTestRouter(t)
	id := createTestForm(t, r)

	w := do(t, r, http.MethodPost, "/forms/missing/responses", `{"answers": {}}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing form: expected 404, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing answers: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{"answers": {"name": 42}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("numeric answer: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{"answers": {"name": null}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("null answer: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{"answers": {"topics": ["a", null]}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("null in answer list: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{"answers": "nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("answers not an object: expected 400, got %d", w.Code)
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/dashboard/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"avgResponsesPerForm":"0"`) {
		t.Errorf("stats: expected zero average, got %s", w.Body.String())
	}

	id := createTestForm(t, r)
	for i := 0; i < 2; i++ {
		body := fmt.Sprintf(`{"answers": {"name": "p%d"}}`, i)
		if w := do(t, r, http.MethodPost, "/forms/"+id+"/responses", body); w.Code != http.StatusCreated {
			t.Fatalf("submit %d: got %d", i, w.Code)
		}
	}

	w = do(t, r, http.MethodGet, "/dashboard/stats", "")
	if !strings.Contains(w.Body.String(), `"totalResponses":2`) {
		t.Errorf("stats: expected 2 responses, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"avgResponsesPerForm":"2.0"`) {
		t.Errorf("stats: expected average 2.0, got %s", w.Body.String())
	}
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := createTestForm(t, r)

	if w := do(t, r, http.MethodPost, "/forms/"+id+"/responses", `{"answers": {"name": "Alice"}}`); w.Code != http.StatusCreated {
		t.Fatalf("submit: got %d", w.Code)
	}

	w := do(t, r, http.MethodGet, "/forms/"+id+"/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("export: expected csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("export: expected attachment disposition, got %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), `"Submitted At","Name","Email"`) {
		t.Errorf("export: unexpected header row: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/forms/missing/export", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("export missing: expected 404, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("health: unexpected body %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"timestamp"`) {
		t.Errorf("health: expected timestamp, got %s", w.Body.String())
	}
}

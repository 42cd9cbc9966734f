package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/config"
	"luxe-studio/internal/content"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	site, err := content.Load("")
	if err != nil {
		t.Fatalf("load site: %v", err)
	}
	cfg := &config.Config{
		SessionSecret: "0123456789abcdef0123456789abcdef",
		CatalogSource: config.CatalogFromFile,
	}
	return NewRouter(cfg, cat, site)
}

// visitor replays the session cookie between requests like a browser.
type visitor struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newVisitor(t *testing.T) *visitor {
	return &visitor{t: t, handler: newTestRouter(t)}
}

func (v *visitor) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	v.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range v.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	v.handler.ServeHTTP(w, req)

	if cs := w.Result().Cookies(); len(cs) > 0 {
		v.cookies = cs
	}
	return w
}

func (v *visitor) post(path string, form url.Values) *httptest.ResponseRecorder {
	v.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return v.do(http.MethodPost, path, form)
}

type showcaseJSON struct {
	Category     string   `json:"category"`
	ProjectID    string   `json:"projectId"`
	Image        int      `json:"image"`
	Phase        string   `json:"phase"`
	ScrollLocked bool     `json:"scrollLocked"`
	Visible      []string `json:"visible"`
}

func (v *visitor) state() showcaseJSON {
	v.t.Helper()
	w := v.do(http.MethodGet, "/api/showcase", nil)
	if w.Code != http.StatusOK {
		v.t.Fatalf("GET /api/showcase: %d", w.Code)
	}
	var s showcaseJSON
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		v.t.Fatalf("decode showcase: %v", err)
	}
	return s
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/#portfolio" {
		t.Errorf("Location = %q", loc)
	}
}

func TestShowcaseFlow(t *testing.T) {
	v := newVisitor(t)

	s := v.state()
	if s.Category != "all" || s.Phase != "closed" || len(s.Visible) != 6 {
		t.Fatalf("unexpected initial state %+v", s)
	}

	expectRedirect(t, v.post("/portfolio/category", url.Values{"category": {"residential"}}))
	s = v.state()
	if s.Category != "residential" || strings.Join(s.Visible, ",") != "1,4" {
		t.Fatalf("after filter: %+v", s)
	}

	// selection ignores the active filter
	expectRedirect(t, v.post("/portfolio/projects/2/open", nil))
	s = v.state()
	if s.Phase != "open" || s.ProjectID != "2" || s.Image != 0 || !s.ScrollLocked {
		t.Fatalf("after open: %+v", s)
	}
	if strings.Join(s.Visible, ",") != "1,4" {
		t.Errorf("opening a project changed the filter: %v", s.Visible)
	}

	for i := 0; i < 3; i++ {
		expectRedirect(t, v.post("/portfolio/gallery/next", nil))
	}
	if s = v.state(); s.Image != 0 {
		t.Errorf("3 x next on a 3 image gallery = %d", s.Image)
	}

	expectRedirect(t, v.post("/portfolio/gallery/previous", nil))
	if s = v.state(); s.Image != 2 {
		t.Errorf("previous from first = %d", s.Image)
	}

	expectRedirect(t, v.post("/portfolio/gallery/1", nil))
	if s = v.state(); s.Image != 1 {
		t.Errorf("jump to 1 = %d", s.Image)
	}

	// switching category keeps the modal open
	expectRedirect(t, v.post("/portfolio/category", url.Values{"category": {"retail"}}))
	if s = v.state(); s.ProjectID != "2" || s.Image != 1 {
		t.Errorf("category change touched the modal: %+v", s)
	}

	expectRedirect(t, v.post("/portfolio/projects/5/open", nil))
	if s = v.state(); s.ProjectID != "5" || s.Image != 0 {
		t.Errorf("replacing the open project: %+v", s)
	}

	expectRedirect(t, v.post("/portfolio/close", nil))
	if s = v.state(); s.Phase != "closed" || s.ScrollLocked || s.Category != "retail" {
		t.Errorf("after close: %+v", s)
	}

	expectRedirect(t, v.post("/portfolio/close", nil))
	if s = v.state(); s.Phase != "closed" {
		t.Errorf("second close: %+v", s)
	}
}

func TestShowcaseRejectsBadInput(t *testing.T) {
	v := newVisitor(t)
	expectRedirect(t, v.post("/portfolio/projects/1/open", nil))
	expectRedirect(t, v.post("/portfolio/gallery/next", nil))

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "unknown project", path: "/portfolio/projects/99/open", code: http.StatusNotFound},
		{name: "index past end", path: "/portfolio/gallery/3", code: http.StatusBadRequest},
		{name: "negative index", path: "/portfolio/gallery/-1", code: http.StatusBadRequest},
		{name: "non numeric index", path: "/portfolio/gallery/first", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := v.post(tt.path, nil); w.Code != tt.code {
				t.Errorf("POST %s = %d, want %d", tt.path, w.Code, tt.code)
			}
			if s := v.state(); s.ProjectID != "1" || s.Image != 1 {
				t.Errorf("rejected request changed state: %+v", s)
			}
		})
	}
}

func TestUnknownCategoryShowsEmptyGrid(t *testing.T) {
	v := newVisitor(t)
	expectRedirect(t, v.post("/portfolio/category", url.Values{"category": {"garden"}}))

	if s := v.state(); s.Category != "garden" || len(s.Visible) != 0 {
		t.Errorf("unexpected state %+v", s)
	}

	w := v.do(http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No projects in this category yet.") {
		t.Error("expected empty grid message")
	}
}

func TestHomeRendersModal(t *testing.T) {
	v := newVisitor(t)

	w := v.do(http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Zenith Penthouse", "Tech Innovation Center", "Our Process", "Client Stories", "Luxury Projects", "150&#43;"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page is missing %q", want)
		}
	}
	if strings.Contains(body, "modal-open") || strings.Contains(body, `id="project-modal"`) {
		t.Error("modal rendered while closed")
	}

	expectRedirect(t, v.post("/portfolio/projects/3/open", nil))
	body = v.do(http.MethodGet, "/", nil).Body.String()
	if !strings.Contains(body, `class="modal-open"`) {
		t.Error("page body does not lock scrolling while the modal is open")
	}
	if !strings.Contains(body, `id="project-modal"`) || !strings.Contains(body, "Artisan Co.") {
		t.Error("modal for project 3 not rendered")
	}
	if !strings.Contains(body, "photo-1441986300917-64674bd600d8") {
		t.Error("first gallery image not shown")
	}
}

func TestAPI(t *testing.T) {
	r := newTestRouter(t)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	tests := []struct {
		name    string
		path    string
		code    int
		wantIDs string
	}{
		{name: "all by default", path: "/api/projects", code: http.StatusOK, wantIDs: "1,2,3,4,5,6"},
		{name: "filtered", path: "/api/projects?category=residential", code: http.StatusOK, wantIDs: "1,4"},
		{name: "unknown category", path: "/api/projects?category=garden", code: http.StatusOK, wantIDs: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(tt.path)
			if w.Code != tt.code {
				t.Fatalf("GET %s = %d", tt.path, w.Code)
			}
			var projects []catalog.Project
			if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if projects == nil {
				t.Error("expected a JSON array, got null")
			}
			ids := make([]string, 0, len(projects))
			for _, p := range projects {
				ids = append(ids, p.ID)
			}
			if strings.Join(ids, ",") != tt.wantIDs {
				t.Errorf("ids = %v, want %s", ids, tt.wantIDs)
			}
		})
	}

	w := get("/api/projects/5")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"galleryImages"`) {
		t.Errorf("GET /api/projects/5 = %d %s", w.Code, w.Body.String())
	}
	if w := get("/api/projects/99"); w.Code != http.StatusNotFound {
		t.Errorf("GET /api/projects/99 = %d", w.Code)
	}

	w = get("/api/categories")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"hospitality"`) {
		t.Errorf("GET /api/categories = %d %s", w.Code, w.Body.String())
	}
}

func TestContactForm(t *testing.T) {
	v := newVisitor(t)

	w := v.post("/contact", url.Values{"name": {"A"}, "email": {"bad"}, "message": {"short"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid form = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please tell us your name") {
		t.Error("validation message not shown")
	}

	w = v.post("/contact", url.Values{
		"name":    {"Layla Haddad"},
		"email":   {"layla@example.com"},
		"message": {"We are planning a boutique hotel in Jumeirah."},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/contact?sent=1" {
		t.Fatalf("valid form = %d %q", w.Code, w.Header().Get("Location"))
	}

	if body := v.do(http.MethodGet, "/contact?sent=1", nil).Body.String(); !strings.Contains(body, "Thank you") {
		t.Error("confirmation not shown")
	}
}

func TestPagesAndStatic(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path string
		code int
		want string
	}{
		{path: "/about", code: http.StatusOK, want: "About Dubai Luxe"},
		{path: "/services", code: http.StatusOK, want: "Investment Advisory"},
		{path: "/contact", code: http.StatusOK, want: "hello@dubailuxe.ae"},
		{path: "/health", code: http.StatusOK, want: "ok"},
		{path: "/static/css/site.css", code: http.StatusOK, want: "modal-open"},
		// staff area needs a database
		{path: "/staff/login", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.code {
				t.Fatalf("GET %s = %d, want %d", tt.path, w.Code, tt.code)
			}
			if tt.want != "" && !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("GET %s body does not contain %q", tt.path, tt.want)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"layla@example.com": "la***@example.com",
		"al@example.com":    "al***@example.com",
		"@example.com":      "***",
		"no-at-sign":        "***",
	}
	for in, want := range tests {
		if got := maskEmail(in); got != want {
			t.Errorf("maskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

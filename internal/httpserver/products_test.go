package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garage-sale/internal/domain"
)

func TestListProducts(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: 1, Name: "Lamp", Price: 24.50, AvailableCount: 1},
		{ID: 2, Name: "Records", Price: 19.99, AvailableCount: 3},
	}}
	router := testRouter(t, repo, &stubSessions{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var products []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Lamp" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestListProductsEmptyIsArray(t *testing.T) {
	router := testRouter(t, &stubProductRepo{}, &stubSessions{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestCreateProduct(t *testing.T) {
	router := testRouter(t, &stubProductRepo{}, &stubSessions{})

	body := `{"name":"Lamp","description":"brass","price":24.5,"image_url":"https://example.com/l.jpg","available_count":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != 42 || created.Name != "Lamp" {
		t.Fatalf("unexpected product: %+v", created)
	}
}

func TestCreateProductInvalid(t *testing.T) {
	router := testRouter(t, &stubProductRepo{}, &stubSessions{})

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"","price":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRedirectPages(t *testing.T) {
	router := testRouter(t, &stubProductRepo{}, &stubSessions{})

	for _, path := range []string{"/success", "/cancel"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: expected html, got %q", path, ct)
		}
		if !strings.Contains(rec.Body.String(), `href="/"`) {
			t.Fatalf("%s: expected a return link", path)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(t, &stubProductRepo{}, &stubSessions{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected caller request id to be kept, got %q", got)
	}
}

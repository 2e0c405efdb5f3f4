package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/domain"
	"github.com/aerotools/catalogd/internal/storage"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	engine := catalog.NewEngine(storage.NewMemoryStore(nil), nil)
	if err := engine.Load(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(envContextKey, &Env{Engine: engine})
	return c, rec
}

type listEnvelope struct {
	Code           int              `json:"code"`
	Data           []domain.Product `json:"data"`
	PersistWarning string           `json:"persistWarning"`
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) listEnvelope {
	t.Helper()
	var env listEnvelope
	if err := testJSON.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	return env
}

func TestListProducts(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/products", "")
	if err := listProducts(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeList(t, rec)
	if env.Code != 0 || len(env.Data) != len(domain.DefaultCatalog()) {
		t.Errorf("code=%d len=%d", env.Code, len(env.Data))
	}
}

func TestListProductsCategoryFilter(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=handling", "")
	if err := listProducts(c); err != nil {
		t.Fatal(err)
	}
	env := decodeList(t, rec)
	if len(env.Data) == 0 {
		t.Fatal("filter returned nothing")
	}
	for _, p := range env.Data {
		if p.Category != domain.CategoryHandling {
			t.Errorf("leaked category %q", p.Category)
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/products/ZZ-404", "")
	c.SetParamNames("id")
	c.SetParamValues("ZZ-404")
	if err := getProduct(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateProduct(t *testing.T) {
	body := `{"name":"Barre Dauphin","category":"towing","description":"Barre pour Dauphin."}`
	c, rec := newTestContext(t, http.MethodPost, "/api/products", body)
	if err := createProduct(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decodeList(t, rec)
	added := env.Data[len(env.Data)-1]
	if added.Slug != "barre-dauphin" || added.ID == "" {
		t.Errorf("added = %+v", added)
	}
}

func TestCreateProductValidationError(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, "/api/products", `{"name":"Sans rien"}`)
	if err := createProduct(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var env struct {
		Code   int               `json:"code"`
		Error  string            `json:"error"`
		Detail map[string]string `json:"detail"`
	}
	if err := testJSON.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Error != "VALIDATION_ERROR" || env.Detail["description"] != "required" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestUpdateProductPatch(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPut, "/api/products/BR-H160", `{"inStock":false}`)
	c.SetParamNames("id")
	c.SetParamValues("BR-H160")
	if err := updateProduct(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decodeList(t, rec)
	for _, p := range env.Data {
		if p.ID == "BR-H160" && p.InStock {
			t.Error("patch not applied")
		}
	}
}

func TestDuplicateProductEndpoint(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, "/api/products/BR-B332/duplicate", "")
	c.SetParamNames("id")
	c.SetParamValues("BR-B332")
	if err := duplicateProduct(c); err != nil {
		t.Fatal(err)
	}
	env := decodeList(t, rec)
	found := false
	for _, p := range env.Data {
		if p.ID == "BR-B332-2" {
			found = true
		}
	}
	if !found {
		t.Error("duplicate BR-B332-2 missing from the response")
	}
}

func TestReorderProductBadDirection(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, "/api/products/BR-H160/reorder", `{"direction":"sideways"}`)
	c.SetParamNames("id")
	c.SetParamValues("BR-H160")
	if err := reorderProduct(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestExportThenImportEndpoints(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/products/export", "")
	if err := exportProducts(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "aerotools-products-") {
		t.Errorf("content disposition = %q", cd)
	}

	c, rec = newTestContext(t, http.MethodPost, "/api/products/import", rec.Body.String())
	if err := importProducts(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decodeList(t, rec)
	if len(env.Data) != len(domain.DefaultCatalog()) {
		t.Errorf("imported %d records", len(env.Data))
	}
}

func TestImportRejectsBadShape(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, "/api/products/import", `{"not":"an array"}`)
	if err := importProducts(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestResetEndpoint(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, "/api/products/reset", "")
	if err := resetProducts(c); err != nil {
		t.Fatal(err)
	}
	env := decodeList(t, rec)
	if len(env.Data) != len(domain.DefaultCatalog()) {
		t.Errorf("reset returned %d records", len(env.Data))
	}
}

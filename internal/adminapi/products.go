package adminapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aerotools/catalogd/internal/domain"
	"github.com/aerotools/catalogd/internal/webserver"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiPOST("/products/import", importProducts)
	webserver.ApiPOST("/products/reset", resetProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
	webserver.ApiPOST("/products/:id/duplicate", duplicateProduct)
	webserver.ApiPOST("/products/:id/reorder", reorderProduct)
}

// listProducts returns the ordered catalog, optionally narrowed by a
// free-text query and a category, and paged when a page param is given.
func listProducts(c echo.Context) error {
	items := GetEngine(c).List()

	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
	category := strings.TrimSpace(c.QueryParam("category"))
	if q != "" || category != "" {
		filtered := make([]domain.Product, 0, len(items))
		for _, p := range items {
			if category != "" && p.Category != category {
				continue
			}
			if q != "" && !matchQuery(p, q) {
				continue
			}
			filtered = append(filtered, p)
		}
		items = filtered
	}

	if c.QueryParam("page") == "" {
		return ok(c, items)
	}
	page, pageSize := parsePagination(c)
	total := int64(len(items))
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return paged(c, items[start:end], total, page, pageSize)
}

func matchQuery(p domain.Product, q string) bool {
	for _, s := range []string{p.Name, p.ID, p.Slug, p.Description, p.Material} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func getProduct(c echo.Context) error {
	p, err := GetEngine(c).Get(c.Param("id"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var draft domain.Product
	if err := c.Bind(&draft); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed product payload", err.Error())
	}
	list, err := GetEngine(c).Add(draft)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, list, nil)
}

// updateProduct applies a partial patch. The body is a plain json
// object; only the keys it carries are merged onto the stored record.
func updateProduct(c echo.Context) error {
	patch := map[string]interface{}{}
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed patch payload", err.Error())
	}
	list, err := GetEngine(c).Update(c.Param("id"), patch)
	return mutationResult(c, list, err)
}

func deleteProduct(c echo.Context) error {
	list, err := GetEngine(c).Delete(c.Param("id"))
	return mutationResult(c, list, err)
}

func duplicateProduct(c echo.Context) error {
	list, err := GetEngine(c).Duplicate(c.Param("id"))
	return mutationResult(c, list, err)
}

func reorderProduct(c echo.Context) error {
	var body struct {
		Direction string `json:"direction"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed reorder payload", err.Error())
	}
	list, err := GetEngine(c).Reorder(c.Param("id"), body.Direction)
	return mutationResult(c, list, err)
}

// exportProducts streams the portable catalog document as a download.
func exportProducts(c echo.Context) error {
	data, err := GetEngine(c).Export()
	if err != nil {
		return failFromError(c, err)
	}
	name := fmt.Sprintf("aerotools-products-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// importProducts replaces the whole catalog from an uploaded document.
// The document is rejected outright on any parse, shape or record
// failure and the catalog is left untouched.
func importProducts(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read import body", err.Error())
	}
	list, err := GetEngine(c).Import(data)
	return mutationResult(c, list, err)
}

func resetProducts(c echo.Context) error {
	list, err := GetEngine(c).ResetToDefaults()
	return mutationResult(c, list, err)
}

// mutationResult folds the engine's dual return into the envelope: a
// degraded write-through still answers 200 with the updated list, any
// other error maps through the taxonomy.
func mutationResult(c echo.Context, list []domain.Product, err error) error {
	if err != nil {
		if isPersistenceError(err) {
			return okList(c, list, err)
		}
		return failFromError(c, err)
	}
	return okList(c, list, nil)
}

package chi

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, ok := bindLimit(w, r)
	if !ok {
		return
	}

	ps, err := s.catalog.List(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]productResponse, len(ps))
	for i, p := range ps {
		items[i] = productToResponse(p)
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		writeError(w, http.StatusBadRequest, msgNameAndPrice)
		return
	}
	if *req.Price < 0 || math.IsNaN(*req.Price) {
		writeError(w, http.StatusBadRequest, msgNegativePrice)
		return
	}

	p, err := s.catalog.Create(r.Context(), req.Name, *req.Price, req.Category, req.Specs, req.ImageURL)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createProductResponse{ID: p.ID(), Message: msgProductAdded})
}

// DeleteProduct handles DELETE /api/products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgProductIDRequired)
		return
	}

	changes, err := s.catalog.Delete(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteProductResponse{Message: msgProductDeleted, Changes: changes})
}

// bindLimit reads the optional positive ?limit= parameter. 0 means "not set".
func bindLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidLimit)
		return 0, false
	}
	if limit == nil {
		return 0, true
	}
	if *limit <= 0 {
		writeError(w, http.StatusBadRequest, msgInvalidLimit)
		return 0, false
	}
	return *limit, true
}

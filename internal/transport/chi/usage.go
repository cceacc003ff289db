package chi

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/usage"
)

// Usage handles GET /api/usage.
func (s *Server) Usage(w http.ResponseWriter, r *http.Request) {
	var period *string
	if err := runtime.BindQueryParameter("form", true, false, "period", r.URL.Query(), &period); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPeriod)
		return
	}

	p := usage.PeriodMonth
	if period != nil {
		p = usage.Period(*period)
		if !p.IsValid() {
			writeError(w, http.StatusBadRequest, msgInvalidPeriod)
			return
		}
	}

	writeJSON(w, http.StatusOK, usageToResponse(s.usage.GetReport(r.Context(), p)))
}

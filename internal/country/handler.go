package country

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
)

type Handler struct {
	lookup Lookup
}

func NewHandler(lookup Lookup) *Handler {
	return &Handler{lookup: lookup}
}

func (h *Handler) FindCountry(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		web.RespondBadRequest(w, errors.New("missing name query param"), "name required", nil)
		return
	}

	info, err := h.lookup.FindByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, "Country not found.", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, info)
}

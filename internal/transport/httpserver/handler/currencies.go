package handler

import (
	"net/http"

	"studio-backoffice-go/pkg/currency"
)

func (h *Handlers) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currency.Supported())
}

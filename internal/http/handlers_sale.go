package http

import (
	"errors"
	"log/slog"
	"net/http"

	"vendas/internal/core"
	"vendas/internal/ledger"
)

type createSaleRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type saleGroupResponse struct {
	Label         string      `json:"label"`
	Sales         []core.Sale `json:"sales"`
	Subtotal      core.Money  `json:"subtotal"`
	SubtotalLabel string      `json:"subtotalLabel"`
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := s.ledger.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list sales", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load sales")
		return
	}

	windowed, err := core.FilterByWindow(sales, filter, s.clock())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, core.SortNewestFirst(windowed))
}

// handleGroupedSales returns sales bucketed by calendar day, newest sale
// first inside each group, with a per-group revenue subtotal.
func (s *Server) handleGroupedSales(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := s.ledger.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list sales", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load sales")
		return
	}

	windowed, err := core.FilterByWindow(sales, filter, s.clock())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups := core.GroupByDate(core.SortNewestFirst(windowed))
	resp := make([]saleGroupResponse, len(groups))
	for i, g := range groups {
		subtotal := g.Subtotal()
		resp[i] = saleGroupResponse{
			Label:         g.Label,
			Sales:         g.Sales,
			Subtotal:      subtotal,
			SubtotalLabel: formatReais(subtotal.Cents),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, found, err := s.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load product for sale", "product_id", req.ProductID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	sale, err := s.ledger.Add(r.Context(), ledger.FieldsFromProduct(product, req.Quantity))
	if err != nil {
		if errors.Is(err, ledger.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to record sale", "product_id", req.ProductID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record sale")
		return
	}

	// Stock adjustment is best-effort and never blocks the sale: the sale
	// is already durable at this point.
	if err := s.catalog.DecrementStock(r.Context(), product.ID, req.Quantity); err != nil {
		slog.WarnContext(r.Context(), "Stock decrement failed after sale",
			"sale_id", sale.ID, "product_id", product.ID, "error", err)
	}

	s.invalidateDerivedViews()
	writeJSON(w, http.StatusCreated, sale)
}

func (s *Server) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.ledger.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete sale", "sale_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete sale")
		return
	}

	s.invalidateDerivedViews()
	w.WriteHeader(http.StatusNoContent)
}

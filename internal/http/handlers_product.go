package http

import (
	"errors"
	"log/slog"
	"net/http"

	"vendas/internal/catalog"
	"vendas/internal/core"
)

type createProductRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	SellPrice string `json:"sellPrice"`
	CostPrice string `json:"costPrice"`
	Stock     *int   `json:"stock,omitempty"`
}

type updateProductRequest struct {
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	SellPrice    *string `json:"sellPrice,omitempty"`
	CostPrice    *string `json:"costPrice,omitempty"`
	Stock        *int    `json:"stock,omitempty"`
	UntrackStock bool    `json:"untrackStock,omitempty"`
}

type productResponse struct {
	Product core.Product `json:"product"`
	Warning string       `json:"warning,omitempty"`
}

type productListItem struct {
	core.Product
	LowStock bool `json:"lowStock"`
}

// lowStockThreshold flags products the vendor should restock soon.
const lowStockThreshold = 5

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list products", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	items := make([]productListItem, len(products))
	for i, p := range products {
		items[i] = productListItem{
			Product:  p,
			LowStock: p.Stock != nil && *p.Stock <= lowStockThreshold,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := productFieldsFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.catalog.Add(r.Context(), fields)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to create product", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}

	resp := productResponse{Product: product}
	if product.SellsBelowCost() {
		resp.Warning = "sell price is below cost price"
		slog.WarnContext(r.Context(), "Product priced below cost",
			"product_id", product.ID,
			"sell_price_cents", product.SellPrice.Cents,
			"cost_price_cents", product.CostPrice.Cents)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := catalog.ProductPatch{
		Stock:   req.Stock,
		Untrack: req.UntrackStock,
	}
	if req.Name != nil {
		name := sanitizeInput(*req.Name)
		patch.Name = &name
	}
	if req.Category != nil {
		category := sanitizeInput(*req.Category)
		patch.Category = &category
	}
	if req.SellPrice != nil {
		price, err := parsePrice(*req.SellPrice, "sellPrice")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.SellPrice = &price
	}
	if req.CostPrice != nil {
		price, err := parsePrice(*req.CostPrice, "costPrice")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.CostPrice = &price
	}

	if err := s.catalog.Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, catalog.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to update product", "product_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}

	// Unknown ids fall through here too: the update is a tolerated no-op.
	s.invalidateDerivedViews()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete product", "product_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	s.invalidateDerivedViews()
	w.WriteHeader(http.StatusNoContent)
}

func productFieldsFromRequest(req createProductRequest) (catalog.ProductFields, error) {
	sellPrice, err := parsePrice(req.SellPrice, "sellPrice")
	if err != nil {
		return catalog.ProductFields{}, err
	}
	costPrice, err := parsePrice(req.CostPrice, "costPrice")
	if err != nil {
		return catalog.ProductFields{}, err
	}
	return catalog.ProductFields{
		Name:      sanitizeInput(req.Name),
		Category:  sanitizeInput(req.Category),
		SellPrice: sellPrice,
		CostPrice: costPrice,
		Stock:     req.Stock,
	}, nil
}

func parsePrice(raw, field string) (core.Money, error) {
	cents, err := core.ParseDecimalToCents(raw)
	if err != nil {
		return core.Money{}, errors.New("invalid " + field + ": must be a positive decimal amount")
	}
	return core.Money{Cents: cents}, nil
}

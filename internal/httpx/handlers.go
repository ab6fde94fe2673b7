package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/safar/go-pos-register/internal/models"
	"github.com/safar/go-pos-register/internal/register"
)

// RegisterHandler exposes the register over HTTP: catalog maintenance, the
// open cart, checkout, and the notification feed. It holds no state of its
// own; every request goes straight to the coordinator.
type RegisterHandler struct {
	Coord *register.Coordinator
	Feed  *Feed
}

// ProductRow is a catalog record annotated with the open cart's view of it,
// the shape an inventory screen renders one row from.
type ProductRow struct {
	models.Product
	InCart       bool            `json:"in_cart"`
	CartQuantity int             `json:"cart_quantity"`
	CartSubtotal decimal.Decimal `json:"cart_subtotal"`
}

type CartResp struct {
	Open  bool          `json:"open"`
	Order *models.Order `json:"order,omitempty"`
}

type AddCartItemReq struct {
	ProductID int64 `json:"product_id"`
}

type SetQuantityReq struct {
	Quantity int `json:"quantity"`
}

// PaymentInfo is collected from the checkout form and deliberately never
// verified or charged.
type PaymentInfo struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
}

type CheckoutReq struct {
	Customer    models.Customer `json:"customer"`
	Payment     PaymentInfo     `json:"payment"`
	Fulfillment string          `json:"fulfillment"`
}

func (h *RegisterHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Put("/products/{productID}", h.updateProduct)
	r.Delete("/products/{productID}", h.deleteProduct)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Put("/cart/items/{productID}", h.setCartItemQuantity)
	r.Delete("/cart/items/{productID}", h.removeCartItem)

	r.Post("/checkout", h.checkout)
	r.Get("/events", h.listEvents)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrNotInOrder):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidQuantity):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrNoOpenOrder):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *RegisterHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.Coord.Products()
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			Product:      p,
			InCart:       h.Coord.ProductExistsInOrder(p.ID),
			CartQuantity: h.Coord.OrderItemQuantity(p.ID),
			CartSubtotal: h.Coord.Subtotal(p.ID),
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *RegisterHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	writeJSON(w, http.StatusCreated, h.Coord.AddProduct(p))
}

func (h *RegisterHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "productID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p.ID = id
	if err := h.Coord.UpdateProduct(p); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *RegisterHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "productID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	h.Coord.RemoveProduct(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegisterHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart())
}

func (h *RegisterHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := h.Coord.AddItemToOrder(req.ProductID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart())
}

func (h *RegisterHandler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "productID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	var req SetQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := h.Coord.ModifyItemQuantity(id, req.Quantity); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart())
}

func (h *RegisterHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "productID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	h.Coord.RemoveItemFromOrder(id)
	writeJSON(w, http.StatusOK, h.cart())
}

func (h *RegisterHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	fulfillment := models.Fulfillment(req.Fulfillment)
	if !fulfillment.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fulfillment must be \"ship\" or \"in-store\""})
		return
	}
	receipt, err := h.Coord.SubmitOrder(req.Customer, fulfillment)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *RegisterHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Feed.Recent())
}

func (h *RegisterHandler) cart() CartResp {
	order, open := h.Coord.OpenOrder()
	if !open {
		return CartResp{Open: false}
	}
	return CartResp{Open: true, Order: &order}
}

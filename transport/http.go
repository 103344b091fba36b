package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	cartapp "github.com/heolazz/aerotech/application/cart"
	catalogapp "github.com/heolazz/aerotech/application/catalog"
	configuratorapp "github.com/heolazz/aerotech/application/configurator"
	orderapp "github.com/heolazz/aerotech/application/order"
	"github.com/heolazz/aerotech/application/orderfeed"
	userapp "github.com/heolazz/aerotech/application/user"
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	utilsContext "github.com/heolazz/aerotech/utils/context"
	"github.com/heolazz/aerotech/utils/errors"
	validatorx "github.com/heolazz/aerotech/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CatalogApp      catalogapp.CatalogApp
	CartApp         cartapp.CartApp
	OrderApp        orderapp.OrderApp
	ConfiguratorApp configuratorapp.ConfiguratorApp
	UserApp         userapp.UserApp
	Feed            orderfeed.Feed
}

func NewTransport(catalogApp catalogapp.CatalogApp, cartApp cartapp.CartApp, orderApp orderapp.OrderApp, configuratorApp configuratorapp.ConfiguratorApp, userApp userapp.UserApp, feed orderfeed.Feed) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		CatalogApp:      catalogApp,
		CartApp:         cartApp,
		OrderApp:        orderApp,
		ConfiguratorApp: configuratorApp,
		UserApp:         userApp,
		Feed:            feed,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Catalog
	mux.HandleFunc("/drones", rh.ListDrones).Methods(http.MethodGet)
	mux.HandleFunc("/drones/{id}", rh.GetDrone).Methods(http.MethodGet)

	// Cart (per browsing session)
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{id}", rh.UpdateCartItem).Methods(http.MethodPatch)
	mux.HandleFunc("/cart/items/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)

	// Orders
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	mux.HandleFunc("/custom-orders", rh.SubmitCustomOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderId}", rh.TrackOrder).Methods(http.MethodGet)

	// Configurator
	mux.HandleFunc("/configurator/archetypes/{archetype}", rh.PreviewConfig).Methods(http.MethodGet)
	mux.HandleFunc("/configurator/components", rh.ListComponents).Methods(http.MethodGet)
	mux.HandleFunc("/configurator/quote", rh.Quote).Methods(http.MethodPost)

	// Admin
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/admin/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/admin/orders", rh.ListOrders).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/stream", rh.StreamOrders).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/{orderId}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/admin/orders/{orderId}", rh.DeleteOrder).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware())
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// ListDrones handler
// @Summary List catalog drones
// @Description List drones with optional category filter and pagination
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.DroneListResponse
// @Failure 400 {object} errors.CustomError
// @Router /drones [get]
func (s *RestHandler) ListDrones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	category := r.URL.Query().Get("category")

	res, err := s.CatalogApp.ListDrones(ctx, category, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetDrone handler
// @Summary Get drone detail
// @Tags Catalog
// @Produce json
// @Param id path string true "Drone ID"
// @Success 200 {object} model.DroneDetail
// @Failure 404 {object} errors.CustomError
// @Router /drones/{id} [get]
func (s *RestHandler) GetDrone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.CatalogApp.GetDrone(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCart handler
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CartApp.GetCart(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add a drone to the cart
// @Description Adds a catalog drone; an existing entry has its quantity increased
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddItemRequest true "Add Item Request"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} errors.CustomError
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddItem(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Shift a cart item's quantity
// @Description Applies a signed delta; quantity never drops below 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Drone ID"
// @Param request body model.UpdateQuantityRequest true "Update Quantity Request"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} errors.CustomError
// @Router /cart/items/{id} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	var req model.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateQuantity(ctx, sessionID, id, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove an item from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Drone ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{id} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CartApp.RemoveItem(ctx, sessionID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Empty the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} apiResponse
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.CartApp.ClearCart(ctx, sessionID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Checkout handler
// @Summary Submit the session cart as an order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Failure 502 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.Checkout(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitCustomOrder handler
// @Summary Submit a configurator build as a custom order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CustomOrderRequest true "Custom Order Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Router /custom-orders [post]
func (s *RestHandler) SubmitCustomOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CustomOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.SubmitCustomOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// TrackOrder handler
// @Summary Track an order by its public id
// @Tags Order
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.TrackingResponse
// @Failure 404 {object} errors.CustomError
// @Router /orders/{orderId} [get]
func (s *RestHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["orderId"]

	res, err := s.OrderApp.TrackOrder(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PreviewConfig handler
// @Summary Get the 3D preview parameters for an archetype
// @Tags Configurator
// @Produce json
// @Param archetype path string true "Drone archetype"
// @Success 200 {object} model.DronePreviewConfig
// @Failure 400 {object} errors.CustomError
// @Router /configurator/archetypes/{archetype} [get]
func (s *RestHandler) PreviewConfig(w http.ResponseWriter, r *http.Request) {
	archetype := constant.DroneArchetype(mux.Vars(r)["archetype"])

	res, err := s.ConfiguratorApp.PreviewConfig(archetype)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListComponents handler
// @Summary List configurator add-on components
// @Tags Configurator
// @Produce json
// @Success 200 {array} model.ComponentOption
// @Router /configurator/components [get]
func (s *RestHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.ConfiguratorApp.Components())
}

// Quote handler
// @Summary Price a custom build
// @Tags Configurator
// @Accept json
// @Produce json
// @Param request body model.QuoteRequest true "Quote Request"
// @Success 200 {object} model.QuoteResponse
// @Failure 400 {object} errors.CustomError
// @Router /configurator/quote [post]
func (s *RestHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ConfiguratorApp.Quote(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Admin login
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Description Revokes the server-side session behind the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apiResponse
// @Failure 401 {object} errors.CustomError
// @Router /admin/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := s.UserApp.Logout(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListOrders handler
// @Summary List all orders, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderEntity
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.OrderApp.ListOrders(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Set an order's fulfillment status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body model.StatusUpdateRequest true "Status Update Request"
// @Success 200 {object} apiResponse
// @Failure 404 {object} errors.CustomError
// @Router /admin/orders/{orderId}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["orderId"]

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.UpdateOrderStatus(ctx, orderID, constant.OrderStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// DeleteOrder handler
// @Summary Permanently delete an order
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} apiResponse
// @Failure 404 {object} errors.CustomError
// @Router /admin/orders/{orderId} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["orderId"]

	if err := s.OrderApp.DeleteOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// StreamOrders handler
// @Summary Live order list over server-sent events
// @Description Each event carries the full order list; clients replace their copy wholesale
// @Tags Admin
// @Produce text/event-stream
// @Security BearerAuth
// @Router /admin/orders/stream [get]
func (s *RestHandler) StreamOrders(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Feed.Subscribe(r.Context())
	defer cancel()

	for snapshot := range ch {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

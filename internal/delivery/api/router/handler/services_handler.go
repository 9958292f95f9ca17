package handler

import (
	"net/http"

	"television/internal/delivery/api/response"
	deliverycontext "television/internal/delivery/context"
	"television/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServicesHandlerParams holds dependencies for ServicesHandler, injected by Fx.
type ServicesHandlerParams struct {
	fx.In

	SelectionUC usecase.ServiceSelectionUsecase
	LibraryUC   usecase.LibraryUsecase
}

// ServicesHandler serves the provider catalog, the selection toggles and provider libraries
type ServicesHandler struct {
	selectionUC usecase.ServiceSelectionUsecase
	libraryUC   usecase.LibraryUsecase
}

// NewServicesHandler is the constructor for ServicesHandler
func NewServicesHandler(params ServicesHandlerParams) *ServicesHandler {
	return &ServicesHandler{
		selectionUC: params.SelectionUC,
		libraryUC:   params.LibraryUC,
	}
}

// SetConnectedRequest is the body of PUT /services/:provider
type SetConnectedRequest struct {
	Provider  string `param:"provider" validate:"required,provider"`
	Connected *bool  `json:"connected" validate:"required"`
}

// ListServices returns the catalog with the caller's connected flags
func (h *ServicesHandler) ListServices(c echo.Context) error {
	statuses, err := h.selectionUC.ListServices(c.Request().Context(), deliverycontext.AuthFrom(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, statuses)
}

// SetConnected toggles a provider linked without OAuth
func (h *ServicesHandler) SetConnected(c echo.Context) error {
	var req SetConnectedRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status, err := h.selectionUC.SetConnected(c.Request().Context(), deliverycontext.AuthFrom(c), req.Provider, *req.Connected)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status)
}

// GetLibrary returns the caller's content on the provider
func (h *ServicesHandler) GetLibrary(c echo.Context) error {
	items, err := h.libraryUC.GetLibrary(c.Request().Context(), deliverycontext.AuthFrom(c), c.Param("provider"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"television/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SportsHandlerParams holds dependencies for SportsHandler, injected by Fx.
type SportsHandlerParams struct {
	fx.In

	SportsUC usecase.SportsUsecase
}

// SportsHandler serves the aggregated live games
type SportsHandler struct {
	sportsUC usecase.SportsUsecase
}

// NewSportsHandler is the constructor for SportsHandler
func NewSportsHandler(params SportsHandlerParams) *SportsHandler {
	return &SportsHandler{sportsUC: params.SportsUC}
}

// LiveGamesResponse is the body of GET /sports/live
type LiveGamesResponse struct {
	Games       any       `json:"games"`
	Services    []string  `json:"services"`
	LastUpdated time.Time `json:"lastUpdated"`
	Source      string    `json:"source"`
}

// SyncRequest is the body of POST /sports/live
type SyncRequest struct {
	SelectedServices []string `json:"selectedServices" validate:"omitempty,max=32,dive,max=64"`
}

// SyncResponse is the result of POST /sports/live
type SyncResponse struct {
	Success     bool      `json:"success"`
	GamesCount  int       `json:"gamesCount"`
	Services    []string  `json:"services"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// GetLiveGames returns the cached games, or fetches them when refresh=true
func (h *SportsHandler) GetLiveGames(c echo.Context) error {
	query := &usecase.LiveGamesQuery{
		Services: splitServices(c.QueryParam("services")),
		Refresh:  c.QueryParam("refresh") == "true",
	}

	result, err := h.sportsUC.GetLiveGames(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LiveGamesResponse{
		Games:       result.Games,
		Services:    result.Services,
		LastUpdated: result.LastUpdated,
		Source:      result.Source,
	})
}

// SyncLiveGames fetches the selected services and replaces the cache
func (h *SportsHandler) SyncLiveGames(c echo.Context) error {
	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.sportsUC.SyncLiveGames(c.Request().Context(), req.SelectedServices)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SyncResponse{
		Success:     true,
		GamesCount:  result.GamesCount,
		Services:    result.Services,
		LastUpdated: result.LastUpdated,
	})
}

// splitServices parses the services csv. An absent or empty value selects every service.
func splitServices(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var services []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}

	return services
}

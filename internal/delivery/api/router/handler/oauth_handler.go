// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	stateCookiePrefix = "oauth_state_"
	userCookiePrefix  = "oauth_user_"

	paramProviderConnected = "provider_connected"
	paramProviderError     = "provider_error"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// OAuthHandler serves the provider connect, callback and disconnect endpoints
type OAuthHandler struct {
	connectionUC  usecase.ConnectionUsecase
	settingsURL   string
	secureCookies bool
	cookieMaxAge  int
	logger        *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		connectionUC:  params.ConnectionUC,
		settingsURL:   params.Config.App.SettingsURL,
		secureCookies: params.Config.OAuth.SecureCookies,
		cookieMaxAge:  int(params.Config.OAuth.StateTTL / time.Second),
		logger:        params.Logger,
	}
}

// Connect starts the authorization-code flow and redirects to the provider consent page
func (h *OAuthHandler) Connect(c echo.Context) error {
	provider := c.Param("provider")

	initiation, err := h.connectionUC.Initiate(c.Request().Context(), deliverycontext.AuthFrom(c), provider)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookie(stateCookiePrefix+provider, initiation.State, h.cookieMaxAge))
	c.SetCookie(h.cookie(userCookiePrefix+provider, initiation.UserID.String(), h.cookieMaxAge))

	return c.Redirect(http.StatusFound, initiation.AuthorizationURL)
}

// Callback finishes the flow. It always clears the flow cookies and redirects to the settings page.
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider := c.Param("provider")

	input := &usecase.CallbackInput{
		Provider:    provider,
		Code:        c.QueryParam("code"),
		State:       c.QueryParam("state"),
		Error:       c.QueryParam("error"),
		CookieState: cookieValue(c, stateCookiePrefix+provider),
		CookieUser:  cookieValue(c, userCookiePrefix+provider),
	}

	result := h.connectionUC.HandleCallback(c.Request().Context(), input)

	c.SetCookie(h.cookie(stateCookiePrefix+provider, "", -1))
	c.SetCookie(h.cookie(userCookiePrefix+provider, "", -1))

	if result.Connected() {
		return c.Redirect(http.StatusFound, h.settingsRedirect(paramProviderConnected, provider))
	}

	return c.Redirect(http.StatusFound, h.settingsRedirect(paramProviderError, result.ErrorCode()))
}

// Disconnect deletes the stored token of the provider
func (h *OAuthHandler) Disconnect(c echo.Context) error {
	provider := c.Param("provider")

	if err := h.connectionUC.Disconnect(c.Request().Context(), deliverycontext.AuthFrom(c), provider); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *OAuthHandler) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *OAuthHandler) settingsRedirect(key, value string) string {
	target, err := url.Parse(h.settingsURL)
	if err != nil {
		h.logger.Error("invalid settings url", slog.String("url", h.settingsURL), slog.Any("error", err))

		return "/?" + url.Values{key: {value}}.Encode()
	}

	query := target.Query()
	query.Set(key, value)
	target.RawQuery = query.Encode()

	return target.String()
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

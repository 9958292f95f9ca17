package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"television/internal/domain/entity"
	mockUsecase "television/internal/mocks/usecase"
	"television/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSportsHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockSportsUsecase) {
	uc := mockUsecase.NewMockSportsUsecase(t)
	h := NewSportsHandler(SportsHandlerParams{SportsUC: uc})

	e := newTestEcho(t)
	e.GET("/sports/live", h.GetLiveGames)
	e.POST("/sports/live", h.SyncLiveGames)

	return e, uc
}

func TestSportsHandler_GetLiveGames(t *testing.T) {
	e, uc := createTestSportsHandler(t)
	updated := time.Date(2024, 11, 21, 18, 0, 0, 0, time.UTC)

	uc.EXPECT().GetLiveGames(mock.Anything, &usecase.LiveGamesQuery{
		Services: []string{entity.ProviderPrimeVideo, entity.ProviderESPNPlus},
		Refresh:  true,
	}).Return(&usecase.LiveGamesResult{
		Games: []*entity.SportsEvent{{
			ID:               "prime-tnf",
			Title:            "Thursday Night Football: Steelers vs Browns",
			StreamingService: entity.ProviderPrimeVideo,
			IsLive:           true,
		}},
		Services:    []string{entity.ProviderPrimeVideo, entity.ProviderESPNPlus},
		LastUpdated: updated,
		Source:      usecase.SourceLiveFetch,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sports/live?services=prime-video,%20espn-plus,&refresh=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "live_fetch", body["source"])
	assert.Equal(t, "2024-11-21T18:00:00Z", body["lastUpdated"])
	assert.Equal(t, []any{"prime-video", "espn-plus"}, body["services"])

	games, ok := body["games"].([]any)
	require.True(t, ok)
	require.Len(t, games, 1)
	game, ok := games[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "prime-video", game["streamingService"])
	assert.Equal(t, true, game["isLive"])
}

func TestSportsHandler_GetLiveGames_DefaultsToEveryService(t *testing.T) {
	e, uc := createTestSportsHandler(t)

	uc.EXPECT().GetLiveGames(mock.Anything, &usecase.LiveGamesQuery{}).Return(&usecase.LiveGamesResult{
		Games:  []*entity.SportsEvent{},
		Source: usecase.SourceDatabaseCache,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sports/live?refresh=yes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"database_cache"`)
}

func TestSportsHandler_SyncLiveGames(t *testing.T) {
	e, uc := createTestSportsHandler(t)
	updated := time.Date(2024, 11, 21, 18, 0, 0, 0, time.UTC)

	uc.EXPECT().SyncLiveGames(mock.Anything, []string{entity.ProviderPeacock}).Return(&usecase.SyncResult{
		GamesCount:  4,
		Services:    []string{entity.ProviderPeacock},
		LastUpdated: updated,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/sports/live", strings.NewReader(`{"selectedServices":["peacock"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"gamesCount":4,"services":["peacock"],"lastUpdated":"2024-11-21T18:00:00Z"}`, rec.Body.String())
}

func TestSportsHandler_SyncLiveGames_EmptyBody(t *testing.T) {
	e, uc := createTestSportsHandler(t)

	uc.EXPECT().SyncLiveGames(mock.Anything, []string(nil)).Return(&usecase.SyncResult{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/sports/live", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSportsHandler_SyncLiveGames_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		e, _ := createTestSportsHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/sports/live", strings.NewReader(`{"selectedServices":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sync fails", func(t *testing.T) {
		e, uc := createTestSportsHandler(t)

		uc.EXPECT().SyncLiveGames(mock.Anything, []string{"hulu"}).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/sports/live", strings.NewReader(`{"selectedServices":["hulu"]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "db down")
	})
}

func TestSplitServices(t *testing.T) {
	assert.Nil(t, splitServices(""))
	assert.Nil(t, splitServices("  "))
	assert.Equal(t, []string{"a", "b"}, splitServices("a, b,,"))
}

package content

import (
	"context"
	"testing"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Next(t *testing.T) {
	s := NewSchedule("America/New_York")
	loc := s.Location()

	// Tuesday
	now := time.Date(2026, 10, 13, 10, 0, 0, 0, loc)

	thursday := s.Next(now, time.Thursday, 20, 0)
	assert.Equal(t, time.Date(2026, 10, 15, 20, 0, 0, 0, loc), thursday)

	sunday := s.Next(now, time.Sunday, 9, 30)
	assert.Equal(t, time.Date(2026, 10, 18, 9, 30, 0, 0, loc), sunday)

	sameDay := s.Next(now, time.Tuesday, 8, 0)
	assert.Equal(t, time.Date(2026, 10, 13, 8, 0, 0, 0, loc), sameDay, "today counts even after the hour")

	tomorrow := s.Tomorrow(now, 15, 0)
	assert.Equal(t, time.Date(2026, 10, 14, 15, 0, 0, 0, loc), tomorrow)
}

func TestSchedule_UnknownZoneFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSchedule("Mars/Olympus").Location())
}

func TestDeepLink(t *testing.T) {
	assert.Equal(t, "aiv://aiv/play?gti=abc", DeepLink(entity.ProviderPrimeVideo, "abc"))
	assert.Equal(t, "espn://live/ufc", DeepLink(entity.ProviderESPNPlus, "ufc"))
	assert.Equal(t, "#", DeepLink("netflix", "x"))
	assert.ElementsMatch(t, []string{"aiv", "espn", "youtubetv", "peacocktv", "paramountplus"}, DeepLinkSchemes())
	assert.Len(t, KnownServiceIDs(), 5)
}

func TestScheduledProvider_FetchEvents(t *testing.T) {
	s := NewSchedule("America/New_York")
	loc := s.Location()

	t.Run("upcoming broadcast", func(t *testing.T) {
		now := time.Date(2026, 10, 13, 10, 0, 0, 0, loc)
		events, err := NewPrimeVideoProvider(s).FetchEvents(context.Background(), now)
		require.NoError(t, err)
		require.Len(t, events, 1)

		e := events[0]
		assert.Equal(t, entity.ProviderPrimeVideo, e.StreamingService)
		assert.Equal(t, "aiv://aiv/play?gti=tnf-steelers-browns-2024", e.DeepLink)
		assert.True(t, e.IsUpcoming)
		assert.False(t, e.IsLive)
		require.NotNil(t, e.EndTime)
		assert.Equal(t, 3*time.Hour, e.EndTime.Sub(e.StartTime))
	})

	t.Run("live within three hours of start", func(t *testing.T) {
		now := time.Date(2026, 10, 15, 21, 0, 0, 0, loc)
		events, err := NewPrimeVideoProvider(s).FetchEvents(context.Background(), now)
		require.NoError(t, err)
		assert.True(t, events[0].IsLive)
		assert.False(t, events[0].IsUpcoming)
	})

	t.Run("every service tags its own events", func(t *testing.T) {
		now := time.Date(2026, 10, 13, 10, 0, 0, 0, loc)
		for _, p := range []interface {
			ID() string
			FetchEvents(context.Context, time.Time) ([]*entity.SportsEvent, error)
		}{NewPrimeVideoProvider(s), NewESPNPlusProvider(s), NewYouTubeTVProvider(s), NewPeacockProvider(s), NewParamountPlusProvider(s)} {
			events, err := p.FetchEvents(context.Background(), now)
			require.NoError(t, err)
			require.NotEmpty(t, events)
			for _, e := range events {
				assert.Equal(t, p.ID(), e.StreamingService)
			}
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewESPNPlusProvider(s).FetchEvents(ctx, time.Now())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPrimeVideoLibrary(t *testing.T) {
	lib := NewPrimeVideoLibrary()
	now := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)

	items, err := lib.FetchLibrary(context.Background(), "access-token", now)
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, entity.ContentLive, items[0].Type)
	assert.True(t, items[0].IsLive)
	assert.Equal(t, "aiv://aiv/play?gti=amzn1.dv.gti.prime-tnf-dolphins-jets", items[0].DeepLink)
	assert.Equal(t, entity.ContentReplay, items[3].Type)
	assert.Nil(t, items[3].EndTime)

	_, err = lib.FetchLibrary(context.Background(), "", now)
	assert.True(t, domainerrors.IsUpstreamKind(err, domainerrors.UpstreamContentFetch))
}

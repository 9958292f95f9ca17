package content

import (
	"context"
	"net/http"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/service"

	"github.com/pkg/errors"
)

const primeGTIPrefix = "amzn1.dv.gti."

// primeVideoLibrary returns a user's Prime Video sports library
type primeVideoLibrary struct{}

// NewPrimeVideoLibrary creates the Prime Video library client
func NewPrimeVideoLibrary() service.LibraryClient {
	return &primeVideoLibrary{}
}

func (l *primeVideoLibrary) Provider() string {
	return entity.ProviderPrimeVideo
}

// FetchLibrary returns live and upcoming games followed by replays
func (l *primeVideoLibrary) FetchLibrary(ctx context.Context, accessToken string, now time.Time) ([]*entity.LibraryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, domainerrors.NewContentFetchError(l.Provider(), http.StatusUnauthorized, errors.New("missing access token"))
	}

	return append(primeLiveGames(now), primeReplays(now)...), nil
}

func primeLiveGames(now time.Time) []*entity.LibraryItem {
	return []*entity.LibraryItem{
		primeItem("prime-tnf-dolphins-jets", "Thursday Night Football: Dolphins vs Jets", entity.ContentLive,
			"NFL", []string{"Miami Dolphins", "New York Jets"},
			now.Add(-30*time.Minute), now.Add(150*time.Minute),
			"Live NFL Thursday Night Football exclusive on Prime Video", true),
		primeItem("prime-uefa-arsenal-psg", "UEFA Champions League: Arsenal vs PSG", entity.ContentUpcoming,
			"Soccer", []string{"Arsenal", "Paris Saint-Germain"},
			now.Add(2*time.Hour), now.Add(4*time.Hour),
			"Champions League match streaming live on Prime Video", false),
		primeItem("prime-college-oregon-washington", "College Football: Oregon vs Washington", entity.ContentUpcoming,
			"College Football", []string{"Oregon Ducks", "Washington Huskies"},
			now.Add(24*time.Hour), now.Add(27*time.Hour),
			"Pac-12 Championship Game streaming on Prime Video", false),
	}
}

func primeReplays(now time.Time) []*entity.LibraryItem {
	replay := primeItem("prime-replay-chiefs-bengals", "NFL Replay: Chiefs vs Bengals", entity.ContentReplay,
		"NFL", []string{"Kansas City Chiefs", "Cincinnati Bengals"},
		now.Add(-72*time.Hour), time.Time{},
		"Full game replay from last Thursday Night Football", false)

	return []*entity.LibraryItem{replay}
}

func primeItem(id, title string, typ entity.ContentType, league string, teams []string, start, end time.Time, description string, live bool) *entity.LibraryItem {
	item := &entity.LibraryItem{
		ID:           id,
		Title:        title,
		Type:         typ,
		League:       league,
		Teams:        teams,
		StartTime:    start,
		DeepLink:     DeepLink(entity.ProviderPrimeVideo, primeGTIPrefix+id),
		ThumbnailURL: "/api/placeholder/400/225",
		Description:  description,
		IsLive:       live,
	}
	if !end.IsZero() {
		item.EndTime = &end
	}

	return item
}

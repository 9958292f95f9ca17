// Package content supplies per-service sports schedules and provider libraries.
package content

import (
	"strings"

	"television/internal/domain/entity"
)

const contentIDPlaceholder = "{contentId}"

// StreamingService describes a service the aggregator can pull events from
type StreamingService struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Icon             string   `json:"icon"`
	Description      string   `json:"description"`
	DeepLinkTemplate string   `json:"deepLinkTemplate"`
	ContentTypes     []string `json:"contentTypes"`
}

var streamingServices = []StreamingService{
	{
		ID:               entity.ProviderPrimeVideo,
		Name:             "Prime Video",
		Icon:             "📦",
		Description:      "Thursday Night Football & exclusive sports",
		DeepLinkTemplate: "aiv://aiv/play?gti=" + contentIDPlaceholder,
		ContentTypes:     []string{"NFL", "Soccer", "Tennis"},
	},
	{
		ID:               entity.ProviderESPNPlus,
		Name:             "ESPN+",
		Icon:             "🏈",
		Description:      "Live sports, originals & exclusives",
		DeepLinkTemplate: "espn://live/" + contentIDPlaceholder,
		ContentTypes:     []string{"UFC", "Soccer", "College Sports", "Baseball"},
	},
	{
		ID:               entity.ProviderYouTubeTV,
		Name:             "YouTubeTV",
		Icon:             "📺",
		Description:      "Live TV with 100+ channels",
		DeepLinkTemplate: "youtubetv://live/" + contentIDPlaceholder,
		ContentTypes:     []string{"NFL", "NBA", "MLB", "NHL", "College Sports"},
	},
	{
		ID:               entity.ProviderPeacock,
		Name:             "Peacock",
		Icon:             "🦚",
		Description:      "NBCUniversal sports & Olympics",
		DeepLinkTemplate: "peacocktv://live/" + contentIDPlaceholder,
		ContentTypes:     []string{"Premier League", "Olympics", "NFL"},
	},
	{
		ID:               entity.ProviderParamountPlus,
		Name:             "Paramount+",
		Icon:             "⭐",
		Description:      "CBS Sports & Champions League",
		DeepLinkTemplate: "paramountplus://live/" + contentIDPlaceholder,
		ContentTypes:     []string{"Champions League", "College Sports", "Golf"},
	},
}

// StreamingServices returns the aggregatable services in display order
func StreamingServices() []StreamingService {
	out := make([]StreamingService, len(streamingServices))
	copy(out, streamingServices)

	return out
}

// KnownServiceIDs returns the ids of every aggregatable service
func KnownServiceIDs() []string {
	ids := make([]string, 0, len(streamingServices))
	for _, s := range streamingServices {
		ids = append(ids, s.ID)
	}

	return ids
}

// LookupService finds an aggregatable service by id
func LookupService(id string) (StreamingService, bool) {
	for _, s := range streamingServices {
		if s.ID == id {
			return s, true
		}
	}

	return StreamingService{}, false
}

// DeepLink fills the service's template with contentID. Unknown services yield "#".
func DeepLink(serviceID, contentID string) string {
	s, ok := LookupService(serviceID)
	if !ok {
		return "#"
	}

	return strings.Replace(s.DeepLinkTemplate, contentIDPlaceholder, contentID, 1)
}

// DeepLinkSchemes returns the URI schemes of every known deep link template
func DeepLinkSchemes() []string {
	schemes := make([]string, 0, len(streamingServices))
	for _, s := range streamingServices {
		if idx := strings.Index(s.DeepLinkTemplate, "://"); idx > 0 {
			schemes = append(schemes, s.DeepLinkTemplate[:idx])
		}
	}

	return schemes
}

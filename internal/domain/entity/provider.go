// Package entity contains the core business objects of the project.
package entity

// AuthType describes how a streaming provider account is linked.
type AuthType string

const (
	AuthTypeOAuth       AuthType = "oauth"
	AuthTypeCredentials AuthType = "credentials"
	AuthTypeMock        AuthType = "mock"
)

// Provider ids
const (
	ProviderPrimeVideo    = "prime-video"
	ProviderESPNPlus      = "espn-plus"
	ProviderYouTubeTV     = "youtube-tv"
	ProviderHulu          = "hulu"
	ProviderDisneyPlus    = "disney-plus"
	ProviderPeacock       = "peacock"
	ProviderDirecTVStream = "directv-stream"
	ProviderSling         = "sling"
	ProviderParamountPlus = "paramount-plus"
)

// ProviderFeatures lists what a provider offers.
type ProviderFeatures struct {
	LiveGames       bool `json:"liveGames"`
	OnDemand        bool `json:"onDemand"`
	DVR             bool `json:"dvr"`
	MultipleStreams bool `json:"multipleStreams"`
}

// StreamingProvider is a catalog entry for a service a user can link.
type StreamingProvider struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Icon                 string           `json:"icon"`
	Description          string           `json:"description"`
	AuthType             AuthType         `json:"authType"`
	DeepLinkPrefix       string           `json:"deepLinkPrefix,omitempty"`
	IsImplemented        bool             `json:"isImplemented"`
	RequiresSubscription bool             `json:"requiresSubscription"`
	Features             ProviderFeatures `json:"features"`
}

// IsOAuth reports whether the provider is linked through the authorization-code flow.
func (p StreamingProvider) IsOAuth() bool {
	return p.AuthType == AuthTypeOAuth
}

var providerCatalog = []StreamingProvider{
	{
		ID:                   ProviderPrimeVideo,
		Name:                 "Prime Video",
		Icon:                 "📦",
		Description:          "Thursday Night Football & exclusive games",
		AuthType:             AuthTypeOAuth,
		DeepLinkPrefix:       "aiv://aiv/play",
		IsImplemented:        true,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true, MultipleStreams: true},
	},
	{
		ID:                   ProviderESPNPlus,
		Name:                 "ESPN+",
		Icon:                 "🏈",
		Description:          "Live sports, originals & exclusives",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true},
	},
	{
		ID:                   ProviderYouTubeTV,
		Name:                 "YouTubeTV",
		Icon:                 "📺",
		Description:          "Live TV with 100+ channels",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true, DVR: true, MultipleStreams: true},
	},
	{
		ID:                   ProviderHulu,
		Name:                 "Hulu",
		Icon:                 "🟢",
		Description:          "Shows, movies & live TV",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true, DVR: true},
	},
	{
		ID:                   ProviderDisneyPlus,
		Name:                 "Disney+",
		Icon:                 "🏰",
		Description:          "Disney, Marvel, Star Wars",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{OnDemand: true, MultipleStreams: true},
	},
	{
		ID:                   ProviderPeacock,
		Name:                 "Peacock",
		Icon:                 "🦚",
		Description:          "NBCUniversal content & sports",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true, MultipleStreams: true},
	},
	{
		ID:                   ProviderDirecTVStream,
		Name:                 "DirecTV Stream",
		Icon:                 "📡",
		Description:          "Live & on-demand streaming",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, OnDemand: true, DVR: true, MultipleStreams: true},
	},
	{
		ID:                   ProviderSling,
		Name:                 "Sling",
		Icon:                 "📻",
		Description:          "Customizable live TV packages",
		AuthType:             AuthTypeMock,
		RequiresSubscription: true,
		Features:             ProviderFeatures{LiveGames: true, DVR: true},
	},
}

// ProviderCatalog returns the linkable providers in display order.
func ProviderCatalog() []StreamingProvider {
	out := make([]StreamingProvider, len(providerCatalog))
	copy(out, providerCatalog)

	return out
}

// LookupProvider finds a catalog entry by id.
func LookupProvider(id string) (StreamingProvider, bool) {
	for _, p := range providerCatalog {
		if p.ID == id {
			return p, true
		}
	}

	return StreamingProvider{}, false
}

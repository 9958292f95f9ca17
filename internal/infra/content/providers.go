package content

import (
	"context"
	"time"

	"television/config"
	"television/internal/domain/entity"
	"television/internal/domain/service"
)

// broadcast is one scheduled event a service carries
type broadcast struct {
	id          string
	contentID   string
	title       string
	league      string
	teams       []string
	network     string
	description string
	thumbnail   string
	duration    time.Duration
	start       func(s *Schedule, now time.Time) time.Time
}

// scheduledProvider serves a fixed broadcast list positioned relative to the current time
type scheduledProvider struct {
	serviceID  string
	schedule   *Schedule
	broadcasts []broadcast
}

var _ service.ContentProvider = (*scheduledProvider)(nil)

func (p *scheduledProvider) ID() string {
	return p.serviceID
}

func (p *scheduledProvider) FetchEvents(ctx context.Context, now time.Time) ([]*entity.SportsEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	events := make([]*entity.SportsEvent, 0, len(p.broadcasts))
	for _, b := range p.broadcasts {
		start := b.start(p.schedule, now)
		end := start.Add(b.duration)

		events = append(events, &entity.SportsEvent{
			ID:               b.id,
			Title:            b.title,
			League:           b.league,
			Teams:            b.teams,
			StartTime:        start,
			EndTime:          &end,
			IsLive:           entity.IsAiring(start, now, entity.LiveWindow),
			IsUpcoming:       start.After(now),
			Network:          b.network,
			StreamingService: p.serviceID,
			DeepLink:         DeepLink(p.serviceID, b.contentID),
			Description:      b.description,
			ThumbnailURL:     b.thumbnail,
		})
	}

	return events, nil
}

func nextThursday8PM(s *Schedule, now time.Time) time.Time {
	return s.Next(now, time.Thursday, 20, 0)
}

func nextSaturday8PM(s *Schedule, now time.Time) time.Time {
	return s.Next(now, time.Saturday, 20, 0)
}

func nextSunday1PM(s *Schedule, now time.Time) time.Time {
	return s.Next(now, time.Sunday, 13, 0)
}

func nextSunday930AM(s *Schedule, now time.Time) time.Time {
	return s.Next(now, time.Sunday, 9, 30)
}

func tomorrowAt(hour, minute int) func(*Schedule, time.Time) time.Time {
	return func(s *Schedule, now time.Time) time.Time {
		return s.Tomorrow(now, hour, minute)
	}
}

// NewPrimeVideoProvider serves Thursday Night Football
func NewPrimeVideoProvider(schedule *Schedule) service.ContentProvider {
	return &scheduledProvider{
		serviceID: entity.ProviderPrimeVideo,
		schedule:  schedule,
		broadcasts: []broadcast{
			{
				id:          "prime-tnf-2024-wk12",
				contentID:   "tnf-steelers-browns-2024",
				title:       "Thursday Night Football: Steelers vs Browns",
				league:      "NFL",
				teams:       []string{"Pittsburgh Steelers", "Cleveland Browns"},
				network:     "Prime Video",
				description: "AFC North rivalry on Thursday Night Football",
				thumbnail:   "https://m.media-amazon.com/images/I/91gKzMHYURL._SL1500_.jpg",
				duration:    3 * time.Hour,
				start:       nextThursday8PM,
			},
		},
	}
}

// NewESPNPlusProvider serves UFC and college basketball
func NewESPNPlusProvider(schedule *Schedule) service.ContentProvider {
	return &scheduledProvider{
		serviceID: entity.ProviderESPNPlus,
		schedule:  schedule,
		broadcasts: []broadcast{
			{
				id:          "espn-ufc-fight-night",
				contentID:   "ufc-fight-night-main",
				title:       "UFC Fight Night: Main Event",
				league:      "UFC",
				teams:       []string{"Fighter A", "Fighter B"},
				network:     "ESPN+",
				description: "Exclusive UFC coverage on ESPN+",
				duration:    4 * time.Hour,
				start:       nextSaturday8PM,
			},
			{
				id:          "espn-college-basketball",
				contentID:   "duke-unc-basketball",
				title:       "College Basketball: Duke vs UNC",
				league:      "College Basketball",
				teams:       []string{"Duke Blue Devils", "UNC Tar Heels"},
				network:     "ESPN+",
				description: "Classic rivalry game",
				duration:    2 * time.Hour,
				start:       tomorrowAt(19, 0),
			},
		},
	}
}

// NewYouTubeTVProvider serves NFL RedZone and NBA
func NewYouTubeTVProvider(schedule *Schedule) service.ContentProvider {
	return &scheduledProvider{
		serviceID: entity.ProviderYouTubeTV,
		schedule:  schedule,
		broadcasts: []broadcast{
			{
				id:          "ytv-nfl-sunday",
				contentID:   "nfl-redzone-sunday",
				title:       "NFL RedZone: Sunday Action",
				league:      "NFL",
				teams:       []string{"Multiple Games"},
				network:     "NFL RedZone",
				description: "Every touchdown from every game",
				duration:    7 * time.Hour,
				start:       nextSunday1PM,
			},
			{
				id:          "ytv-nba-lakers-warriors",
				contentID:   "nba-lakers-warriors",
				title:       "NBA: Lakers vs Warriors",
				league:      "NBA",
				teams:       []string{"Los Angeles Lakers", "Golden State Warriors"},
				network:     "TNT",
				description: "Pacific Division showdown",
				duration:    150 * time.Minute,
				start:       tomorrowAt(20, 30),
			},
		},
	}
}

// NewPeacockProvider serves the Premier League
func NewPeacockProvider(schedule *Schedule) service.ContentProvider {
	return &scheduledProvider{
		serviceID: entity.ProviderPeacock,
		schedule:  schedule,
		broadcasts: []broadcast{
			{
				id:          "peacock-epl-arsenal-chelsea",
				contentID:   "epl-arsenal-chelsea",
				title:       "Premier League: Arsenal vs Chelsea",
				league:      "Premier League",
				teams:       []string{"Arsenal", "Chelsea"},
				network:     "Peacock",
				description: "London Derby on Peacock exclusive",
				duration:    2 * time.Hour,
				start:       nextSunday930AM,
			},
		},
	}
}

// NewParamountPlusProvider serves the Champions League
func NewParamountPlusProvider(schedule *Schedule) service.ContentProvider {
	return &scheduledProvider{
		serviceID: entity.ProviderParamountPlus,
		schedule:  schedule,
		broadcasts: []broadcast{
			{
				id:          "paramount-champions-league",
				contentID:   "ucl-real-madrid-city",
				title:       "Champions League: Real Madrid vs Manchester City",
				league:      "Champions League",
				teams:       []string{"Real Madrid", "Manchester City"},
				network:     "Paramount+",
				description: "Champions League knockout stage",
				duration:    2 * time.Hour,
				start:       tomorrowAt(15, 0),
			},
		},
	}
}

// NewScheduleFromConfig creates the schedule in aggregator.timeZone
func NewScheduleFromConfig(cfg *config.Config) *Schedule {
	return NewSchedule(cfg.Aggregator.TimeZone)
}

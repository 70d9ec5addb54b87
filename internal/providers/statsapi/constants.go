package statsapi

import "time"

const (
	providerName = "statsapi"

	defaultBaseURL     = "https://statsapi.web.nhl.com"
	defaultHTTPTimeout = 10 * time.Second

	teamsPath    = "/api/v1/teams"
	schedulePath = "/api/v1/schedule"
)

// Resource names carried on upstream errors and metrics.
const (
	ResourceTeams    = "teams"
	ResourceRoster   = "roster"
	ResourcePlayer   = "player"
	ResourceSchedule = "schedule"
	ResourceGameFeed = "game_feed"
)

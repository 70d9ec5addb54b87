package providers

import (
	"context"

	"nhl-nationality-service/internal/domain"
)

// StatsProvider defines how upstream league data is fetched and
// normalized. The date parameter is a YYYY-MM-DD string.
//
// Calls are sequential and blocking; a failed fetch is surfaced as an
// *UpstreamError and is fatal to the operation in progress. There is
// deliberately no retry layer.
type StatsProvider interface {
	// ListTeams fetches the league's teams.
	ListTeams(ctx context.Context) ([]domain.Team, error)
	// FetchRoster fetches the roster stubs for one team.
	FetchRoster(ctx context.Context, team domain.Team) ([]domain.RosterEntry, error)
	// FetchPlayer fetches the full profile behind a roster stub.
	FetchPlayer(ctx context.Context, entry domain.RosterEntry) (domain.PlayerProfile, error)
	// FetchSchedule fetches the games scheduled for a date.
	FetchSchedule(ctx context.Context, date string) ([]domain.ScheduledGame, error)
	// FetchGameFeed fetches the full feed (teams, status, boxscore) for
	// a scheduled game.
	FetchGameFeed(ctx context.Context, game domain.ScheduledGame) (domain.GameFeed, error)
}

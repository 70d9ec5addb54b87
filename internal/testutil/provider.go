package testutil

import (
	"context"
	"fmt"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/providers"
)

// StubProvider serves canned league data keyed the way the real client
// does: rosters by team id, profiles by person id, feeds by gamePk.
type StubProvider struct {
	Teams    []domain.Team
	Rosters  map[int][]domain.RosterEntry
	Profiles map[int]domain.PlayerProfile
	Schedule []domain.ScheduledGame
	Feeds    map[int]domain.GameFeed

	// Errs, when set for an operation name, is returned instead of data.
	Errs map[string]error
}

func (p *StubProvider) ListTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	if err := p.Errs["teams"]; err != nil {
		return nil, err
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchRoster(ctx context.Context, team domain.Team) ([]domain.RosterEntry, error) {
	_ = ctx
	if err := p.Errs["roster"]; err != nil {
		return nil, err
	}
	return p.Rosters[team.ID], nil
}

func (p *StubProvider) FetchPlayer(ctx context.Context, entry domain.RosterEntry) (domain.PlayerProfile, error) {
	_ = ctx
	if err := p.Errs["player"]; err != nil {
		return domain.PlayerProfile{}, err
	}
	profile, ok := p.Profiles[entry.PersonID]
	if !ok {
		return domain.PlayerProfile{}, fmt.Errorf("player %d: %w", entry.PersonID, providers.ErrEmptyProfile)
	}
	return profile, nil
}

func (p *StubProvider) FetchSchedule(ctx context.Context, date string) ([]domain.ScheduledGame, error) {
	_ = ctx
	_ = date
	if err := p.Errs["schedule"]; err != nil {
		return nil, err
	}
	return p.Schedule, nil
}

func (p *StubProvider) FetchGameFeed(ctx context.Context, game domain.ScheduledGame) (domain.GameFeed, error) {
	_ = ctx
	if err := p.Errs["game_feed"]; err != nil {
		return domain.GameFeed{}, err
	}
	return p.Feeds[game.GamePk], nil
}

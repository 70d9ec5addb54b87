package roster

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/logging"
	"nhl-nationality-service/internal/providers"
)

// Builder crawls teams, rosters, and player profiles into a normalized
// RosterIndex. One builder serves both the full-league and the
// nationality-filtered snapshot; the filter is the only difference.
type Builder struct {
	provider providers.StatsProvider
	logger   *slog.Logger
}

// NewBuilder constructs a Builder over the given provider.
func NewBuilder(provider providers.StatsProvider, logger *slog.Logger) *Builder {
	return &Builder{provider: provider, logger: logger}
}

// Build walks every team, every rostered player, and every player
// profile. An empty filter indexes the whole league; otherwise only
// players of that nationality are kept, and only teams with at least
// one match appear in the team list.
//
// The first upstream failure aborts the whole build — one flaky request
// invalidates the ~30 nested requests of work, and no partial index is
// returned.
func (b *Builder) Build(ctx context.Context, filter string) (domain.RosterIndex, error) {
	teams, err := b.provider.ListTeams(ctx)
	if err != nil {
		return domain.RosterIndex{}, err
	}

	index := domain.RosterIndex{
		Nationalities: []string{},
		Players:       []domain.Player{},
		Teams:         []domain.Team{},
	}
	seenNationalities := make(map[string]struct{})
	seenPlayers := make(map[int]struct{})

	for _, team := range teams {
		logging.Info(b.logger, "reading players", logging.FieldTeam, team.Name)

		entries, err := b.provider.FetchRoster(ctx, team)
		if err != nil {
			return domain.RosterIndex{}, err
		}

		teamHasMatch := false
		for _, entry := range entries {
			profile, err := b.provider.FetchPlayer(ctx, entry)
			if err != nil {
				if errors.Is(err, providers.ErrEmptyProfile) {
					logging.Warn(b.logger, "skipping roster entry with no profile",
						logging.FieldPlayerID, entry.PersonID,
						logging.FieldPlayer, entry.FullName)
					continue
				}
				return domain.RosterIndex{}, err
			}

			nationality, ok := profile.ResolveNationality()
			if !ok {
				logging.Warn(b.logger, "player has neither nationality nor birth country",
					logging.FieldPlayerID, profile.ID,
					logging.FieldPlayer, profile.FullName)
				continue
			}
			if filter != "" && nationality != filter {
				continue
			}
			if _, dup := seenPlayers[profile.ID]; dup {
				continue
			}
			seenPlayers[profile.ID] = struct{}{}

			index.Players = append(index.Players, domain.Player{
				ID:          profile.ID,
				FullName:    profile.FullName,
				Link:        profile.Link,
				Team:        domain.TeamRef{ID: team.ID, Name: team.Name},
				Nationality: nationality,
			})
			teamHasMatch = true

			if _, dup := seenNationalities[nationality]; !dup {
				seenNationalities[nationality] = struct{}{}
				index.Nationalities = append(index.Nationalities, nationality)
			}
		}

		if filter == "" || teamHasMatch {
			index.Teams = append(index.Teams, team)
		}
	}

	sort.Strings(index.Nationalities)

	logging.Info(b.logger, "player index built",
		logging.FieldCount, len(index.Players),
		logging.FieldNationality, filterLabel(filter))
	return index, nil
}

func filterLabel(filter string) string {
	if filter == "" {
		return "all"
	}
	return filter
}

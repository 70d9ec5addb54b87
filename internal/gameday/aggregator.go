package gameday

import (
	"context"
	"fmt"
	"log/slog"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/logging"
	"nhl-nationality-service/internal/providers"
)

// Outcome classifies one candidate player's appearance in a game.
type Outcome string

const (
	// OutcomePlayed means the player has a skater line in the boxscore.
	OutcomePlayed Outcome = "played"
	// OutcomeNotStarted means the game is still in preview.
	OutcomeNotStarted Outcome = "not_started"
	// OutcomeDidNotPlay means the team played but the player has no
	// boxscore entry (scratch).
	OutcomeDidNotPlay Outcome = "did_not_play"
	// OutcomeNoSkaterStats means the boxscore entry carries no skater
	// statistics (goalie). Not rendered and never folded into totals.
	OutcomeNoSkaterStats Outcome = "no_skater_stats"
)

// PlayerLine is one candidate player's result within a game.
type PlayerLine struct {
	Player           domain.Player
	TeamAbbreviation string
	Outcome          Outcome
	Stats            *domain.SkaterStatLine
}

// GameReport covers one scheduled game: the matchup header plus the
// candidate players' lines, away side first then home, in index order.
type GameReport struct {
	AwayAbbreviation string
	HomeAbbreviation string
	Status           domain.GameStatus
	Lines            []PlayerLine
}

// DayReport is the aggregated result for one nationality on one date.
type DayReport struct {
	Date        string
	Nationality string
	Games       []GameReport
	Totals      domain.AggregateTotals
	// NoGame lists indexed players whose team had no game that day.
	// Scratches on teams that did play are not in this list.
	NoGame []domain.Player
}

// Aggregator matches indexed players against a day's game feeds and
// accumulates skater statistics.
type Aggregator struct {
	provider providers.StatsProvider
	logger   *slog.Logger
}

// NewAggregator constructs an Aggregator over the given provider.
func NewAggregator(provider providers.StatsProvider, logger *slog.Logger) *Aggregator {
	return &Aggregator{provider: provider, logger: logger}
}

// Report fetches the schedule and every game feed for the date, then
// folds each matched skater line into the running totals. The first
// upstream failure aborts the whole query. An empty schedule is not an
// error; it yields a report with zero games and every indexed player of
// the nationality in the no-game list.
func (a *Aggregator) Report(ctx context.Context, index domain.RosterIndex, nationality, date string) (DayReport, error) {
	players := index.PlayersByNationality(nationality)

	scheduled, err := a.provider.FetchSchedule(ctx, date)
	if err != nil {
		return DayReport{}, err
	}

	report := DayReport{
		Date:        date,
		Nationality: nationality,
		Games:       []GameReport{},
	}
	hadGame := make(map[int]struct{})

	for _, game := range scheduled {
		feed, err := a.provider.FetchGameFeed(ctx, game)
		if err != nil {
			return DayReport{}, err
		}

		gameReport := GameReport{
			AwayAbbreviation: feed.Away.Team.Abbreviation,
			HomeAbbreviation: feed.Home.Team.Abbreviation,
			Status:           feed.Status,
		}

		for _, side := range []domain.GameTeam{feed.Away, feed.Home} {
			for _, player := range candidates(players, side.Team.ID) {
				hadGame[player.ID] = struct{}{}

				line, err := a.playerLine(feed.Status, side, player, &report.Totals)
				if err != nil {
					return DayReport{}, err
				}
				gameReport.Lines = append(gameReport.Lines, line)
			}
		}

		report.Games = append(report.Games, gameReport)
	}

	for _, player := range players {
		if _, ok := hadGame[player.ID]; !ok {
			report.NoGame = append(report.NoGame, player)
		}
	}

	logging.Info(a.logger, "game day report built",
		logging.FieldNationality, nationality,
		logging.FieldDate, date,
		logging.FieldCount, len(report.Games))
	return report, nil
}

// candidates returns the indexed players belonging to the team, in
// index order.
func candidates(players []domain.Player, teamID int) []domain.Player {
	var matched []domain.Player
	for _, p := range players {
		if p.Team.ID == teamID {
			matched = append(matched, p)
		}
	}
	return matched
}

func (a *Aggregator) playerLine(status domain.GameStatus, side domain.GameTeam, player domain.Player, totals *domain.AggregateTotals) (PlayerLine, error) {
	line := PlayerLine{
		Player:           player,
		TeamAbbreviation: side.Team.Abbreviation,
	}

	if status == domain.StatusPreview {
		line.Outcome = OutcomeNotStarted
		return line, nil
	}

	entry, ok := side.Boxscore[player.ID]
	if !ok {
		line.Outcome = OutcomeDidNotPlay
		return line, nil
	}
	if entry.Skater == nil {
		line.Outcome = OutcomeNoSkaterStats
		return line, nil
	}

	if err := totals.Fold(*entry.Skater); err != nil {
		return PlayerLine{}, fmt.Errorf("player %d (%s): %w", player.ID, player.FullName, err)
	}
	line.Outcome = OutcomePlayed
	line.Stats = entry.Skater
	return line, nil
}

package gameday

import (
	"context"
	"errors"
	"testing"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/testutil"
)

var (
	devils = domain.Team{ID: 1, Name: "New Jersey Devils", Abbreviation: "NJD"}
	bruins = domain.Team{ID: 6, Name: "Boston Bruins", Abbreviation: "BOS"}
)

func swissIndex() domain.RosterIndex {
	return domain.RosterIndex{
		Nationalities: []string{"CAN", "CHE"},
		Players: []domain.Player{
			{ID: 10, FullName: "Swiss Forward", Team: domain.TeamRef{ID: 1, Name: devils.Name}, Nationality: "CHE"},
			{ID: 11, FullName: "Swiss Scratch", Team: domain.TeamRef{ID: 1, Name: devils.Name}, Nationality: "CHE"},
			{ID: 12, FullName: "Swiss Goalie", Team: domain.TeamRef{ID: 6, Name: bruins.Name}, Nationality: "CHE"},
			{ID: 13, FullName: "Swiss Bye", Team: domain.TeamRef{ID: 99, Name: "Idle Team"}, Nationality: "CHE"},
			{ID: 20, FullName: "Canadian Center", Team: domain.TeamRef{ID: 6, Name: bruins.Name}, Nationality: "CAN"},
		},
		Teams: []domain.Team{devils, bruins, {ID: 99, Name: "Idle Team", Abbreviation: "IDL"}},
	}
}

func TestReportEmptySchedule(t *testing.T) {
	provider := &testutil.StubProvider{}
	aggregator := NewAggregator(provider, nil)

	report, err := aggregator.Report(context.Background(), swissIndex(), "CHE", "2018-07-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(report.Games) != 0 {
		t.Fatalf("expected no games, got %+v", report.Games)
	}
	if report.Totals != (domain.AggregateTotals{}) {
		t.Fatalf("expected zero totals, got %+v", report.Totals)
	}
	if len(report.NoGame) != 4 {
		t.Fatalf("expected every indexed CHE player in no-game list, got %+v", report.NoGame)
	}
}

func TestReportPreviewGameDoesNotTouchTotals(t *testing.T) {
	provider := &testutil.StubProvider{
		Schedule: []domain.ScheduledGame{{GamePk: 1, Link: "/api/v1/game/1/feed/live"}},
		Feeds: map[int]domain.GameFeed{
			1: {
				Away:   domain.GameTeam{Team: devils, Boxscore: map[int]domain.BoxscoreEntry{}},
				Home:   domain.GameTeam{Team: bruins, Boxscore: map[int]domain.BoxscoreEntry{}},
				Status: domain.StatusPreview,
			},
		},
	}
	aggregator := NewAggregator(provider, nil)

	report, err := aggregator.Report(context.Background(), swissIndex(), "CHE", "2018-10-18")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(report.Games) != 1 {
		t.Fatalf("expected one game, got %d", len(report.Games))
	}
	lines := report.Games[0].Lines
	if len(lines) != 3 {
		t.Fatalf("expected three candidate lines, got %+v", lines)
	}
	for _, line := range lines {
		if line.Outcome != OutcomeNotStarted {
			t.Fatalf("expected not-started outcome, got %+v", line)
		}
	}
	if report.Totals != (domain.AggregateTotals{}) {
		t.Fatalf("preview game must not touch totals, got %+v", report.Totals)
	}

	// Players on participating teams had a game even though it hasn't
	// started; only the bye-team player is left.
	if len(report.NoGame) != 1 || report.NoGame[0].ID != 13 {
		t.Fatalf("unexpected no-game list %+v", report.NoGame)
	}
}

func TestReportFoldsSkaterLinesAndClassifiesOutcomes(t *testing.T) {
	skater := domain.SkaterStatLine{
		Goals:          2,
		Assists:        1,
		TimeOnIce:      "18:45",
		Hits:           3,
		Blocked:        1,
		PlusMinus:      1,
		PenaltyMinutes: 2,
		FaceOffWins:    5,
		FaceoffTaken:   9,
	}
	provider := &testutil.StubProvider{
		Schedule: []domain.ScheduledGame{{GamePk: 1, Link: "/api/v1/game/1/feed/live"}},
		Feeds: map[int]domain.GameFeed{
			1: {
				Away: domain.GameTeam{Team: devils, Boxscore: map[int]domain.BoxscoreEntry{
					10: {Skater: &skater},
					// Player 11 is a healthy scratch: no boxscore entry.
				}},
				Home: domain.GameTeam{Team: bruins, Boxscore: map[int]domain.BoxscoreEntry{
					12: {Skater: nil},
				}},
				Status: domain.StatusFinal,
			},
		},
	}
	aggregator := NewAggregator(provider, nil)

	report, err := aggregator.Report(context.Background(), swissIndex(), "CHE", "2018-10-18")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := report.Games[0].Lines
	if len(lines) != 3 {
		t.Fatalf("expected three candidate lines, got %+v", lines)
	}

	// Away side first, then home, in index order.
	if lines[0].Player.ID != 10 || lines[0].Outcome != OutcomePlayed || lines[0].Stats == nil {
		t.Fatalf("unexpected first line %+v", lines[0])
	}
	if lines[0].TeamAbbreviation != "NJD" {
		t.Fatalf("expected away abbreviation, got %q", lines[0].TeamAbbreviation)
	}
	if lines[1].Player.ID != 11 || lines[1].Outcome != OutcomeDidNotPlay {
		t.Fatalf("unexpected second line %+v", lines[1])
	}
	if lines[2].Player.ID != 12 || lines[2].Outcome != OutcomeNoSkaterStats {
		t.Fatalf("unexpected third line %+v", lines[2])
	}

	totals := report.Totals
	if totals.Count != 1 || totals.Goals != 2 || totals.Assists != 1 || totals.Points != 3 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.TimeOnIce != 18.75 {
		t.Fatalf("expected 18.75 minutes total, got %v", totals.TimeOnIce)
	}
	if totals.Hits != 3 || totals.Blocks != 1 || totals.PlusMinus != 1 || totals.PIM != 2 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.FaceOffWins != 5 || totals.FaceoffTaken != 9 {
		t.Fatalf("unexpected faceoff totals %+v", totals)
	}

	// The scratch and the goalie had a game; only the bye player didn't.
	if len(report.NoGame) != 1 || report.NoGame[0].ID != 13 {
		t.Fatalf("unexpected no-game list %+v", report.NoGame)
	}
}

func TestReportSkipsGamesWithoutCandidates(t *testing.T) {
	other := domain.GameTeam{Team: domain.Team{ID: 50, Abbreviation: "AAA"}, Boxscore: map[int]domain.BoxscoreEntry{}}
	another := domain.GameTeam{Team: domain.Team{ID: 51, Abbreviation: "BBB"}, Boxscore: map[int]domain.BoxscoreEntry{}}

	provider := &testutil.StubProvider{
		Schedule: []domain.ScheduledGame{{GamePk: 1}},
		Feeds:    map[int]domain.GameFeed{1: {Away: other, Home: another, Status: domain.StatusFinal}},
	}
	aggregator := NewAggregator(provider, nil)

	report, err := aggregator.Report(context.Background(), swissIndex(), "CHE", "2018-10-18")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Games) != 1 || len(report.Games[0].Lines) != 0 {
		t.Fatalf("expected a game header with no player lines, got %+v", report.Games)
	}
	if len(report.NoGame) != 4 {
		t.Fatalf("expected all CHE players in no-game list, got %+v", report.NoGame)
	}
}

func TestReportAbortsOnUpstreamFailure(t *testing.T) {
	for _, op := range []string{"schedule", "game_feed"} {
		provider := &testutil.StubProvider{
			Schedule: []domain.ScheduledGame{{GamePk: 1}},
			Errs:     map[string]error{op: errors.New("upstream down")},
		}
		aggregator := NewAggregator(provider, nil)
		if _, err := aggregator.Report(context.Background(), swissIndex(), "CHE", "2018-10-18"); err == nil {
			t.Fatalf("expected %s failure to abort the report", op)
		}
	}
}

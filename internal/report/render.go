package report

import (
	"fmt"
	"io"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/gameday"
)

// The line formats below are the system's observable product and are
// kept byte-for-byte stable: field order, unit suffixes, zero-padded
// seconds, and the explicit plus sign on non-negative plus/minus.

// RenderDay writes the per-game report, the totals line, and the
// no-game list for one day.
func RenderDay(w io.Writer, r gameday.DayReport) {
	fmt.Fprintf(w, "There are %d games on %s:\n", len(r.Games), r.Date)

	for _, game := range r.Games {
		fmt.Fprintf(w, "  %s @ %s - %s\n", game.AwayAbbreviation, game.HomeAbbreviation, game.Status)
		for _, line := range game.Lines {
			renderPlayerLine(w, line)
		}
	}

	renderTotals(w, r.Totals)

	fmt.Fprintln(w)
	if len(r.NoGame) == 0 {
		fmt.Fprintf(w, "All %s players had a game on %s\n", r.Nationality, r.Date)
		return
	}
	fmt.Fprintf(w, "%s players without a game on %s (%d): \n", r.Nationality, r.Date, len(r.NoGame))
	for _, player := range r.NoGame {
		fmt.Fprintf(w, "  %s\n", player.FullName)
	}
}

func renderPlayerLine(w io.Writer, line gameday.PlayerLine) {
	switch line.Outcome {
	case gameday.OutcomeNotStarted:
		fmt.Fprintf(w, "      %s - %-20s - game has not started\n", line.TeamAbbreviation, line.Player.FullName)
	case gameday.OutcomeDidNotPlay:
		fmt.Fprintf(w, "      %s - %-20s - did not play\n", line.TeamAbbreviation, line.Player.FullName)
	case gameday.OutcomePlayed:
		s := line.Stats
		fmt.Fprintf(w, "      %s - %-20s - %dG %dA %dP %s %dH %dB %s %dpim %d/%d FO\n",
			line.TeamAbbreviation, line.Player.FullName,
			s.Goals, s.Assists, s.Points(), s.TimeOnIce, s.Hits, s.Blocked,
			domain.FormatPlusMinus(s.PlusMinus), s.PenaltyMinutes,
			s.FaceOffWins, s.FaceoffTaken)
	case gameday.OutcomeNoSkaterStats:
		// Goalie entries produce no line.
	}
}

func renderTotals(w io.Writer, totals domain.AggregateTotals) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Totals: %d games - %dG %dA %dP %s %dH %dB %s %dpim %d/%d FO\n",
		totals.Count, totals.Goals, totals.Assists, totals.Points,
		domain.FormatTimeOnIce(totals.TimeOnIce), totals.Hits, totals.Blocks,
		domain.FormatPlusMinus(totals.PlusMinus), totals.PIM,
		totals.FaceOffWins, totals.FaceoffTaken)
}

// RenderPlayers writes the teams-with-players list and the player list
// for one nationality.
func RenderPlayers(w io.Writer, index domain.RosterIndex, nationality string) {
	players := index.PlayersByNationality(nationality)

	var teamNames []string
	seen := make(map[int]struct{})
	for _, p := range players {
		if _, ok := seen[p.Team.ID]; ok {
			continue
		}
		seen[p.Team.ID] = struct{}{}
		teamNames = append(teamNames, p.Team.Name)
	}

	fmt.Fprintf(w, "There are %d NHL teams with %s players:\n", len(teamNames), nationality)
	for _, name := range teamNames {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintf(w, "There are %d %s players in the NHL:\n", len(players), nationality)
	for _, p := range players {
		fmt.Fprintf(w, "  %d - %-20s - %s\n", p.ID, p.FullName, p.Team.Name)
	}
}

// RenderNationalities writes the sorted nationality list.
func RenderNationalities(w io.Writer, index domain.RosterIndex) {
	for _, nationality := range index.Nationalities {
		fmt.Fprintf(w, "    %s\n", nationality)
	}
}

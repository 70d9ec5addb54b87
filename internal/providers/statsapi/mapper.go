package statsapi

import (
	"strconv"
	"strings"

	"nhl-nationality-service/internal/domain"
)

func mapTeams(teams []teamResponse) []domain.Team {
	mapped := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		mapped = append(mapped, mapTeam(t))
	}
	return mapped
}

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Link:         t.Link,
	}
}

func mapRoster(entries []rosterEntryResponse) []domain.RosterEntry {
	mapped := make([]domain.RosterEntry, 0, len(entries))
	for _, e := range entries {
		mapped = append(mapped, domain.RosterEntry{
			PersonID: e.Person.ID,
			FullName: e.Person.FullName,
			Link:     e.Person.Link,
		})
	}
	return mapped
}

func mapProfile(p personResponse) domain.PlayerProfile {
	return domain.PlayerProfile{
		ID:           p.ID,
		FullName:     p.FullName,
		Link:         p.Link,
		Nationality:  p.Nationality,
		BirthCountry: p.BirthCountry,
	}
}

func mapScheduledGames(games []scheduledGameResponse) []domain.ScheduledGame {
	mapped := make([]domain.ScheduledGame, 0, len(games))
	for _, g := range games {
		mapped = append(mapped, domain.ScheduledGame{
			GamePk: g.GamePk,
			Link:   g.Link,
		})
	}
	return mapped
}

func mapGameFeed(feed gameFeedResponse) domain.GameFeed {
	return domain.GameFeed{
		Away:   mapGameTeam(feed.GameData.Teams.Away, feed.LiveData.Boxscore.Teams.Away),
		Home:   mapGameTeam(feed.GameData.Teams.Home, feed.LiveData.Boxscore.Teams.Home),
		Status: domain.GameStatus(strings.TrimSpace(feed.GameData.Status.AbstractGameState)),
	}
}

func mapGameTeam(team teamResponse, side boxscoreSideResponse) domain.GameTeam {
	return domain.GameTeam{
		Team:     mapTeam(team),
		Boxscore: mapBoxscore(side),
	}
}

// mapBoxscore converts the upstream team-scoped "ID{playerID}" keys to
// plain player ids. Keys that do not follow the convention are dropped.
func mapBoxscore(side boxscoreSideResponse) map[int]domain.BoxscoreEntry {
	entries := make(map[int]domain.BoxscoreEntry, len(side.Players))
	for key, player := range side.Players {
		id, err := strconv.Atoi(strings.TrimPrefix(key, "ID"))
		if err != nil {
			continue
		}
		entries[id] = domain.BoxscoreEntry{Skater: mapSkaterStats(player.Stats.SkaterStats)}
	}
	return entries
}

func mapSkaterStats(stats *skaterStatsResponse) *domain.SkaterStatLine {
	if stats == nil {
		return nil
	}
	return &domain.SkaterStatLine{
		Goals:          stats.Goals,
		Assists:        stats.Assists,
		TimeOnIce:      stats.TimeOnIce,
		Hits:           stats.Hits,
		Blocked:        stats.Blocked,
		PlusMinus:      stats.PlusMinus,
		PenaltyMinutes: stats.PenaltyMinutes,
		FaceOffWins:    stats.FaceOffWins,
		FaceoffTaken:   stats.FaceoffTaken,
	}
}

package domain

// GameStatus mirrors the upstream abstract game state.
type GameStatus string

const (
	StatusPreview GameStatus = "Preview"
	StatusLive    GameStatus = "Live"
	StatusFinal   GameStatus = "Final"
)

// Team is the normalized team shape kept in the roster index.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Link         string `json:"link"`
}

// TeamRef is the point-in-time team snapshot embedded in a player.
// It is not re-resolved after the index is built, so a mid-season trade
// leaves the reference stale until the next index refresh.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Player is an indexed player with a resolved nationality.
type Player struct {
	ID          int     `json:"id"`
	FullName    string  `json:"fullName"`
	Link        string  `json:"link"`
	Team        TeamRef `json:"team"`
	Nationality string  `json:"nationality"`
}

// RosterIndex is the persisted players/teams/nationalities snapshot.
// Nationalities is sorted; every player's nationality appears in it and
// every player's team id appears in Teams.
type RosterIndex struct {
	Nationalities []string `json:"nationalities"`
	Players       []Player `json:"players"`
	Teams         []Team   `json:"teams"`
}

// PlayersByNationality returns the indexed players matching the given
// nationality, in index order.
func (idx RosterIndex) PlayersByNationality(nationality string) []Player {
	var players []Player
	for _, p := range idx.Players {
		if p.Nationality == nationality {
			players = append(players, p)
		}
	}
	return players
}

// HasNationality reports whether the nationality appears in the index.
func (idx RosterIndex) HasNationality(nationality string) bool {
	for _, n := range idx.Nationalities {
		if n == nationality {
			return true
		}
	}
	return false
}

// RosterEntry is a stub from a team roster pointing at a full profile.
type RosterEntry struct {
	PersonID int
	FullName string
	Link     string
}

// PlayerProfile is the full upstream person record. Nationality and
// BirthCountry are empty when the upstream field is absent.
type PlayerProfile struct {
	ID           int
	FullName     string
	Link         string
	Nationality  string
	BirthCountry string
}

// ResolveNationality applies the fallback order: the nationality field
// wins, then birth country. ok is false when neither is present.
func (p PlayerProfile) ResolveNationality() (nationality string, ok bool) {
	if p.Nationality != "" {
		return p.Nationality, true
	}
	if p.BirthCountry != "" {
		return p.BirthCountry, true
	}
	return "", false
}

// ScheduledGame identifies one game on a day's schedule.
type ScheduledGame struct {
	GamePk int
	Link   string
}

// BoxscoreEntry is one player's boxscore record. Skater is nil for
// entries without skater statistics (goalies).
type BoxscoreEntry struct {
	Skater *SkaterStatLine
}

// GameTeam is one side of a fetched game feed: the team plus its
// boxscore keyed by player id.
type GameTeam struct {
	Team     Team
	Boxscore map[int]BoxscoreEntry
}

// GameFeed is the transient per-game document used by the aggregator.
type GameFeed struct {
	Away   GameTeam
	Home   GameTeam
	Status GameStatus
}

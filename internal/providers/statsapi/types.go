package statsapi

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Link         string `json:"link"`
	Abbreviation string `json:"abbreviation"`
}

type rosterResponse struct {
	Roster []rosterEntryResponse `json:"roster"`
}

type rosterEntryResponse struct {
	Person personStubResponse `json:"person"`
}

type personStubResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Link     string `json:"link"`
}

type peopleResponse struct {
	People []personResponse `json:"people"`
}

type personResponse struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Link         string `json:"link"`
	Nationality  string `json:"nationality"`
	BirthCountry string `json:"birthCountry"`
}

type scheduleResponse struct {
	TotalGames int                    `json:"totalGames"`
	Dates      []scheduleDateResponse `json:"dates"`
}

type scheduleDateResponse struct {
	Date  string                  `json:"date"`
	Games []scheduledGameResponse `json:"games"`
}

type scheduledGameResponse struct {
	GamePk int    `json:"gamePk"`
	Link   string `json:"link"`
}

type gameFeedResponse struct {
	GameData gameDataResponse `json:"gameData"`
	LiveData liveDataResponse `json:"liveData"`
}

type gameDataResponse struct {
	Teams  gameTeamsResponse  `json:"teams"`
	Status gameStatusResponse `json:"status"`
}

type gameTeamsResponse struct {
	Away teamResponse `json:"away"`
	Home teamResponse `json:"home"`
}

type gameStatusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
}

type liveDataResponse struct {
	Boxscore boxscoreResponse `json:"boxscore"`
}

type boxscoreResponse struct {
	Teams boxscoreTeamsResponse `json:"teams"`
}

type boxscoreTeamsResponse struct {
	Away boxscoreSideResponse `json:"away"`
	Home boxscoreSideResponse `json:"home"`
}

type boxscoreSideResponse struct {
	// Keyed by "ID{playerID}" upstream.
	Players map[string]boxscorePlayerResponse `json:"players"`
}

type boxscorePlayerResponse struct {
	Stats boxscoreStatsResponse `json:"stats"`
}

type boxscoreStatsResponse struct {
	// Absent for goalies; the mapper treats a nil value as a non-skater
	// entry.
	SkaterStats *skaterStatsResponse `json:"skaterStats"`
}

type skaterStatsResponse struct {
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	TimeOnIce      string `json:"timeOnIce"`
	Hits           int    `json:"hits"`
	Blocked        int    `json:"blocked"`
	PlusMinus      int    `json:"plusMinus"`
	PenaltyMinutes int    `json:"penaltyMinutes"`
	FaceOffWins    int    `json:"faceOffWins"`
	FaceoffTaken   int    `json:"faceoffTaken"`
}

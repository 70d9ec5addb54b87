package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/metrics"
	"nhl-nationality-service/internal/providers"
)

// Config controls how the stats API client reaches the upstream service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Client fetches league resources from the NHL stats API and maps them
// to domain models. It implements providers.StatsProvider.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

// ListTeams fetches the league's teams.
func (c *Client) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, ResourceTeams, teamsPath, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload.Teams), nil
}

// FetchRoster fetches the roster stubs for one team.
func (c *Client) FetchRoster(ctx context.Context, team domain.Team) ([]domain.RosterEntry, error) {
	var payload rosterResponse
	if err := c.getJSON(ctx, ResourceRoster, team.Link+"/roster", &payload); err != nil {
		return nil, err
	}
	return mapRoster(payload.Roster), nil
}

// FetchPlayer fetches the full profile behind a roster stub. An upstream
// document with no people yields providers.ErrEmptyProfile.
func (c *Client) FetchPlayer(ctx context.Context, entry domain.RosterEntry) (domain.PlayerProfile, error) {
	var payload peopleResponse
	if err := c.getJSON(ctx, ResourcePlayer, entry.Link, &payload); err != nil {
		return domain.PlayerProfile{}, err
	}
	if len(payload.People) == 0 {
		return domain.PlayerProfile{}, fmt.Errorf("player %d: %w", entry.PersonID, providers.ErrEmptyProfile)
	}
	return mapProfile(payload.People[0]), nil
}

// FetchSchedule fetches the games scheduled for a YYYY-MM-DD date. A day
// with no games returns an empty slice, not an error.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]domain.ScheduledGame, error) {
	q := url.Values{}
	q.Set("date", date)

	var payload scheduleResponse
	if err := c.getJSON(ctx, ResourceSchedule, schedulePath+"?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	if payload.TotalGames == 0 || len(payload.Dates) == 0 {
		return nil, nil
	}
	return mapScheduledGames(payload.Dates[0].Games), nil
}

// FetchGameFeed fetches the full live feed for a scheduled game.
func (c *Client) FetchGameFeed(ctx context.Context, game domain.ScheduledGame) (domain.GameFeed, error) {
	var payload gameFeedResponse
	if err := c.getJSON(ctx, ResourceGameFeed, game.Link, &payload); err != nil {
		return domain.GameFeed{}, err
	}
	return mapGameFeed(payload), nil
}

// getJSON performs one GET against the stats API and decodes the body.
// The response body is closed on every path.
func (c *Client) getJSON(ctx context.Context, resource, path string, out any) error {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(resource, start, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		upErr := &providers.UpstreamError{
			Resource:   resource,
			URL:        target,
			StatusCode: resp.StatusCode,
		}
		c.record(resource, start, upErr)
		return upErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		decodeErr := fmt.Errorf("%s: decoding %s: %w", providerName, target, err)
		c.record(resource, start, decodeErr)
		return decodeErr
	}

	c.record(resource, start, nil)
	return nil
}

func (c *Client) record(resource string, start time.Time, err error) {
	c.recorder.RecordFetch(resource, time.Since(start), err)
	if err != nil && c.logger != nil {
		c.logger.Debug("stats api fetch failed", "resource", resource, "err", err)
	}
}

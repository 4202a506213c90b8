package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/suzi-bot/suzi/internal/apierr"
)

const defaultBaseURL = "https://api.steampowered.com"

// requestTimeout bounds every outbound Steam call; hitting it surfaces as
// the TIMEOUT reason, distinct from other network failures.
const requestTimeout = 10 * time.Second

// Profile is the subset of a Steam player summary shown on the embed.
type Profile struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	ProfileURL   string `json:"profileurl"`
	Avatar       string `json:"avatarfull"`
	PersonaState int    `json:"personastate"`
	TimeCreated  int64  `json:"timecreated"`
	CountryCode  string `json:"loccountrycode"`
}

// Client calls the Steam Web API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Steam client. An empty key is allowed; calls will then
// fail with the AUTH reason.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// GetProfile fetches a player summary by 64-bit id or vanity URL name.
func (c *Client) GetProfile(ctx context.Context, vanityOrID string) (*Profile, error) {
	steamID := vanityOrID
	if !isSteamID64(vanityOrID) {
		resolved, err := c.resolveVanity(ctx, vanityOrID)
		if err != nil {
			return nil, err
		}
		steamID = resolved
	}

	var result struct {
		Response struct {
			Players []Profile `json:"players"`
		} `json:"response"`
	}
	params := url.Values{"key": {c.apiKey}, "steamids": {steamID}}
	if err := c.get(ctx, "/ISteamUser/GetPlayerSummaries/v2/", params, &result); err != nil {
		return nil, err
	}
	if len(result.Response.Players) == 0 {
		return nil, apierr.New(apierr.ReasonNotFound, fmt.Errorf("no player for id %s", steamID))
	}
	return &result.Response.Players[0], nil
}

// resolveVanity turns a vanity URL name into a 64-bit steam id.
func (c *Client) resolveVanity(ctx context.Context, vanity string) (string, error) {
	var result struct {
		Response struct {
			Success int    `json:"success"`
			SteamID string `json:"steamid"`
		} `json:"response"`
	}
	params := url.Values{"key": {c.apiKey}, "vanityurl": {vanity}}
	if err := c.get(ctx, "/ISteamUser/ResolveVanityURL/v1/", params, &result); err != nil {
		return "", err
	}
	if result.Response.Success != 1 || result.Response.SteamID == "" {
		return "", apierr.New(apierr.ReasonNotFound, fmt.Errorf("vanity %q not found", vanity))
	}
	return result.Response.SteamID, nil
}

// get handles the HTTP boilerplate for Steam API requests and converts
// failures to the closed reason set.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apierr.New(apierr.ReasonUnknown, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierr.New(apierr.FromTransport(err), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return apierr.New(apierr.FromStatus(resp.StatusCode),
			fmt.Errorf("steam API returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.New(apierr.ReasonNetwork, err)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return apierr.New(apierr.ReasonUnknown, err)
	}
	return nil
}

// isSteamID64 reports whether s looks like a 17-digit steam id.
func isSteamID64(s string) bool {
	if len(s) != 17 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suzi-bot/suzi/internal/apierr"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key")
	client.baseURL = server.URL
	return client, server
}

func TestGetProfileBySteamID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ISteamUser/GetPlayerSummaries/v2/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"response":{"players":[{"steamid":"76561198000000000","personaname":"gamer","profileurl":"https://steamcommunity.com/id/gamer/"}]}}`))
	})
	defer server.Close()

	profile, err := client.GetProfile(context.Background(), "76561198000000000")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.PersonaName != "gamer" {
		t.Errorf("persona = %s, expected gamer", profile.PersonaName)
	}
}

func TestGetProfileResolvesVanity(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ISteamUser/ResolveVanityURL/v1/":
			if got := r.URL.Query().Get("vanityurl"); got != "gamer" {
				t.Errorf("vanityurl = %s, expected gamer", got)
			}
			w.Write([]byte(`{"response":{"success":1,"steamid":"76561198000000000"}}`))
		case "/ISteamUser/GetPlayerSummaries/v2/":
			w.Write([]byte(`{"response":{"players":[{"steamid":"76561198000000000","personaname":"gamer"}]}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	defer server.Close()

	profile, err := client.GetProfile(context.Background(), "gamer")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.SteamID != "76561198000000000" {
		t.Errorf("steamid = %s", profile.SteamID)
	}
}

func TestGetProfileVanityNotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"success":42,"message":"No match"}}`))
	})
	defer server.Close()

	_, err := client.GetProfile(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error for unresolved vanity")
	}
	if got := apierr.ReasonOf(err); got != apierr.ReasonNotFound {
		t.Errorf("reason = %s, expected NOT_FOUND", got)
	}
}

func TestGetProfileStatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		expected apierr.Reason
	}{
		{http.StatusUnauthorized, apierr.ReasonAuth},
		{http.StatusTooManyRequests, apierr.ReasonRateLimit},
		{http.StatusInternalServerError, apierr.ReasonServer},
	}

	for _, test := range tests {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(test.status)
		})

		_, err := client.GetProfile(context.Background(), "76561198000000000")
		server.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", test.status)
		}
		if got := apierr.ReasonOf(err); got != test.expected {
			t.Errorf("status %d: reason = %s, expected %s", test.status, got, test.expected)
		}
	}
}

func TestIsSteamID64(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
	}{
		{"76561198000000000", true},
		{"gamer", false},
		{"7656119800000000", false},
		{"7656119800000000x", false},
	}

	for _, test := range tests {
		if got := isSteamID64(test.in); got != test.expected {
			t.Errorf("isSteamID64(%q) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestRefreshCache(t *testing.T) {
	cache := NewRefreshCache(0)

	if _, ok := cache.Get("u"); ok {
		t.Error("empty cache returned a profile")
	}

	cache.Set("u", &Profile{SteamID: "1"})
	profile, ok := cache.Get("u")
	if !ok || profile.SteamID != "1" {
		t.Errorf("cached profile = %+v ok=%v", profile, ok)
	}

	// Nil-safety mirrors the rest of the cache API.
	var nilCache *RefreshCache
	nilCache.Set("u", &Profile{})
	if _, ok := nilCache.Get("u"); ok {
		t.Error("nil cache returned a profile")
	}
}

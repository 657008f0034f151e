// Package backend is a client of the optional REST API that stores seller profiles and indexes
// marketplace listings. Its data only enriches what the contract reports.
package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hourvault/hourvault/sdk"
)

const defaultTimeout = 10 * time.Second

type SocialLinks struct {
	Twitter string `json:"twitter,omitempty"`
	GitHub  string `json:"github,omitempty"`
}

type UserProfile struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Bio         string      `json:"bio"`
	AvatarURL   string      `json:"avatar_url"`
	SocialLinks SocialLinks `json:"social_links"`
}

// MarketplaceToken is the API's view of a token. HourlyRate is in stroops.
type MarketplaceToken struct {
	TokenID        uint64   `json:"token_id"`
	SellerAddress  string   `json:"seller_address"`
	HourlyRate     int64    `json:"hourly_rate"`
	HoursAvailable uint32   `json:"hours_available"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	ViewCount      int      `json:"view_count,omitempty"`
}

// TokenFilter narrows ListTokens. Zero values are omitted from the query.
type TokenFilter struct {
	Search   string
	Category string
	Sort     string
	MinPrice float64
	MaxPrice float64
}

func (f TokenFilter) query() map[string]string {
	q := map[string]string{}
	if f.Search != "" {
		q["search"] = f.Search
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Sort != "" {
		q["sort"] = f.Sort
	}
	if f.MinPrice != 0 {
		q["min_price"] = strconv.FormatFloat(f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != 0 {
		q["max_price"] = strconv.FormatFloat(f.MaxPrice, 'f', -1, 64)
	}

	return q
}

type Client struct {
	http *resty.Client
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://localhost:3001/api.
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
	}
}

// GetProfile returns nil when the profile does not exist or the API is unreachable.
func (c *Client) GetProfile(ctx context.Context, address string) *UserProfile {
	var profile UserProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/profiles/" + url.PathEscape(address))
	if err != nil {
		sdk.LoggerFrom(ctx).Warnf("failed to fetch profile of %s: %v", address, err)

		return nil
	}
	if resp.IsError() {
		return nil
	}

	return &profile
}

func (c *Client) SaveProfile(ctx context.Context, address string, profile UserProfile) (*UserProfile, error) {
	var saved UserProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(profile).
		SetResult(&saved).
		Put("/profiles/" + url.PathEscape(address))
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to save profile: HTTP %d", resp.StatusCode())
	}

	return &saved, nil
}

type tokensEnvelope struct {
	Data []MarketplaceToken `json:"data"`
}

// ListTokens returns an empty list on any failure.
func (c *Client) ListTokens(ctx context.Context, filter TokenFilter) []MarketplaceToken {
	var envelope tokensEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(filter.query()).
		SetResult(&envelope).
		Get("/tokens")
	if err != nil {
		sdk.LoggerFrom(ctx).Warnf("failed to list marketplace tokens: %v", err)

		return []MarketplaceToken{}
	}
	if resp.IsError() || envelope.Data == nil {
		return []MarketplaceToken{}
	}

	return envelope.Data
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const glassdoorAPI = "http://api.glassdoor.com/api/api.htm"

// Employer is one record from the review aggregator.
type Employer struct {
	Name           string `json:"name"`
	SquareLogo     string `json:"squareLogo"`
	FeaturedReview struct {
		AttributionURL string `json:"attributionURL"`
	} `json:"featuredReview"`
}

// Glassdoor looks up employer records by free-text keyword.
type Glassdoor struct {
	endpoint   string
	partnerID  string
	partnerKey string
	http       *http.Client
}

// NewGlassdoor creates a lookup client with the given partner credentials.
func NewGlassdoor(partnerID, partnerKey string) *Glassdoor {
	return NewGlassdoorWithEndpoint(glassdoorAPI, partnerID, partnerKey)
}

// NewGlassdoorWithEndpoint creates a lookup client against a custom endpoint.
func NewGlassdoorWithEndpoint(endpoint, partnerID, partnerKey string) *Glassdoor {
	return &Glassdoor{
		endpoint:   endpoint,
		partnerID:  partnerID,
		partnerKey: partnerKey,
		http:       &http.Client{},
	}
}

// SearchEmployers queries the employers action for the keyword and returns
// the matching records in ranked order.
func (g *Glassdoor) SearchEmployers(ctx context.Context, keyword string) ([]Employer, error) {
	params := url.Values{}
	params.Set("t.p", g.partnerID)
	params.Set("t.k", g.partnerKey)
	params.Set("userip", "0.0.0.0")
	params.Set("useragent", "")
	params.Set("format", "json")
	params.Set("v", "1")
	params.Set("action", "employers")
	params.Set("q", keyword)

	req, err := http.NewRequestWithContext(ctx, "GET", g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("employer lookup failed: %s", resp.Status)
	}

	var result struct {
		Response struct {
			Employers []Employer `json:"employers"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Response.Employers, nil
}

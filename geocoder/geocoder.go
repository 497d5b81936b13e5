// Package geocoder resolves free-text postal addresses into structured
// location data via an external provider speaking the Nominatim search API.
package geocoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"restaurant-directory-api/models"

	"github.com/tidwall/gjson"
)

// ErrNoResults is returned when the provider answers with an empty candidate set.
var ErrNoResults = errors.New("geocoder: no results for address")

// Geocoder turns an address string into a structured Location.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*models.Location, error)
}

// HTTPGeocoder calls a Nominatim-compatible search endpoint.
type HTTPGeocoder struct {
	BaseURL string
	Client  *http.Client
}

func New(baseURL string) *HTTPGeocoder {
	return &HTTPGeocoder{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Resolve returns the first candidate for the address. The caller decides
// whether a failure aborts its operation; restaurant creation does not.
func (g *HTTPGeocoder) Resolve(ctx context.Context, address string) (*models.Location, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder: provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return nil, ErrNoResults
	}

	// The provider reports city under different keys depending on place type.
	city := first.Get("address.city").String()
	if city == "" {
		city = first.Get("address.town").String()
	}
	if city == "" {
		city = first.Get("address.village").String()
	}

	return &models.Location{
		Type: "Point",
		Coordinates: []float64{
			first.Get("lon").Float(),
			first.Get("lat").Float(),
		},
		FormattedAddress: first.Get("display_name").String(),
		City:             city,
		CountryCode:      first.Get("address.country_code").String(),
		Zipcode:          first.Get("address.postcode").String(),
		Country:          first.Get("address.country").String(),
	}, nil
}

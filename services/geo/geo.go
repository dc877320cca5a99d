// File: services/geo/geo.go
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"haulify/config"
	"haulify/models"
)

// DistanceService measures driving distance between two addresses. The
// pricing engine treats the result as an opaque measured value.
type DistanceService interface {
	DistanceKm(ctx context.Context, origin, dest models.Address) (float64, error)
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// GoogleDistanceService resolves distances through the Google Distance
// Matrix and Geocoding APIs.
type GoogleDistanceService struct {
	Client *http.Client
	APIKey string
}

// NewGoogleDistanceService builds a service using the configured API key.
func NewGoogleDistanceService() *GoogleDistanceService {
	return &GoogleDistanceService{
		Client: http.DefaultClient,
		APIKey: config.AppConfig.GoogleAPIKey,
	}
}

// distanceMatrixResponse mirrors the fields we read from the Distance
// Matrix API response.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (s *GoogleDistanceService) DistanceKm(ctx context.Context, origin, dest models.Address) (float64, error) {
	if s.APIKey == "" {
		return 0, fmt.Errorf("missing Google API key")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/distancematrix/json?origins=%s&destinations=%s&key=%s",
		url.QueryEscape(addressString(origin)),
		url.QueryEscape(addressString(dest)),
		s.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var matrix distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return 0, fmt.Errorf("failed to decode distance matrix response: %w", err)
	}
	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix returned status %q", matrix.Status)
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("no route between addresses: %s", element.Status)
	}

	return float64(element.Distance.Value) / 1000.0, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (s *GoogleDistanceService) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if s.APIKey == "" {
		return 0, 0, fmt.Errorf("missing Google API key")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), s.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	var geo geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if geo.Status != "OK" || len(geo.Results) == 0 {
		return 0, 0, fmt.Errorf("geocoding returned status %q", geo.Status)
	}

	loc := geo.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

func addressString(a models.Address) string {
	out := a.Line
	if a.City != "" {
		out += ", " + a.City
	}
	if a.PostalCode != "" {
		out += ", " + a.PostalCode
	}
	return out
}

// Package nominatim implementa el puerto de reverse geocoding contra la API
// pública de Nominatim (OpenStreetMap).
package nominatim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lost-pet-alerts/internal/platform/httpclient"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	hc, err := httpclient.New(baseURL, 5*time.Second)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Reverse resuelve (lat, lon) a una dirección legible. Error si el servicio
// falla o no conoce el punto; el consumidor cae a coordenadas formateadas.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	var out struct {
		DisplayName string `json:"display_name"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/reverse?"+q.Encode(), nil, nil, &out); err != nil {
		return "", err
	}

	if strings.TrimSpace(out.DisplayName) == "" {
		return "", errors.New("nominatim: no address for point")
	}
	return out.DisplayName, nil
}

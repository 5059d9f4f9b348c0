package geocoding

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/nf/geocode"

	"yelpcamp/internal/adapters/observability"
	"yelpcamp/internal/domain"
)

// Client forward-geocodes free-text locations through the Google geocoding
// endpoint. The first candidate wins; zero candidates is a *domain.GeocodeError.
// No retries: any failure propagates immediately to the caller.
type Client struct {
	region string
	rt     http.RoundTripper
}

// New returns a geocoding client. region biases results ("us", "fr", ...) and
// may be empty. rt overrides the HTTP transport; nil uses a 10s-timeout default.
func New(region string, rt http.RoundTripper) *Client {
	if rt == nil {
		rt = &timeoutTransport{d: 10 * time.Second}
	}
	return &Client{region: region, rt: rt}
}

func (c *Client) Forward(ctx context.Context, location string) (domain.GeoPoint, error) {
	start := time.Now()
	req := &geocode.Request{
		Provider: geocode.GOOGLE,
		Region:   c.region,
		Address:  location,
	}
	resp, err := req.Lookup(c.rt)
	if err != nil {
		if ctx.Err() != nil {
			return domain.GeoPoint{}, ctx.Err()
		}
		observability.ObserveExternal("geocode", "forward", 0, time.Since(start))
		return domain.GeoPoint{}, &domain.ExternalServiceError{Service: "geocode", Err: err}
	}
	observability.ObserveExternal("geocode", "forward", http.StatusOK, time.Since(start))

	if resp.Status == "ZERO_RESULTS" || resp.GoogleResponse == nil || len(resp.GoogleResponse.Results) == 0 {
		return domain.GeoPoint{}, &domain.GeocodeError{Location: location}
	}
	if resp.Status != "OK" {
		return domain.GeoPoint{}, &domain.ExternalServiceError{Service: "geocode", Err: statusError(resp.Status)}
	}

	loc := resp.GoogleResponse.Results[0].Geometry.Location
	return domain.GeoPoint{
		Type:        "Point",
		Coordinates: []float64{loc.Lng, loc.Lat},
	}, nil
}

type statusError string

func (s statusError) Error() string { return "geocoder status " + string(s) }

// timeoutTransport bounds each lookup; the geocode package takes a bare
// RoundTripper and has no context plumbing of its own.
type timeoutTransport struct {
	d time.Duration
}

func (t *timeoutTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(req.Context(), t.d)
	resp, err := http.DefaultTransport.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	b.cancel()
	return b.ReadCloser.Close()
}

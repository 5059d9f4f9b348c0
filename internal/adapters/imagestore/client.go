package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"yelpcamp/internal/adapters/observability"
	"yelpcamp/internal/domain"
)

// Client talks to the external image host: POST /upload with a multipart file,
// POST /destroy with the stored filename. Calls are rate-limited client-side
// and never retried; failures propagate to the caller untouched.
type Client struct {
	base   string
	hc     *http.Client
	key    string
	rl     *rate.Limiter
	folder string
}

var (
	ErrNotFound     = errors.New("imagestore: not found")
	ErrUnauthorized = errors.New("imagestore: unauthorized")
)

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		hc:     &http.Client{Timeout: 30 * time.Second},
		key:    key,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
		folder: "YelpCamp",
	}, nil
}

type uploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload streams one file to the host and returns its hosted record. The
// stored filename is folder-qualified and uuid-suffixed so concurrent uploads
// of the same original name never collide.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (domain.Image, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Image{}, err
	}

	stored := c.storedName(filename)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	// The folder-qualified name travels as its own field: multipart filename
	// directives lose directory components on the receiving side.
	if err := mw.WriteField("filename", stored); err != nil {
		return domain.Image{}, err
	}
	fw, err := mw.CreateFormFile("file", path.Base(stored))
	if err != nil {
		return domain.Image{}, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return domain.Image{}, err
	}
	if err := mw.Close(); err != nil {
		return domain.Image{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload", &body)
	if err != nil {
		return domain.Image{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Image{}, ctx.Err()
		}
		observability.ObserveExternal("imagestore", "upload", 0, time.Since(start))
		return domain.Image{}, &domain.ExternalServiceError{Service: "imagestore", Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("imagestore", "upload", resp.StatusCode, time.Since(start))

	if err := statusErr(resp); err != nil {
		return domain.Image{}, err
	}
	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Image{}, &domain.ExternalServiceError{Service: "imagestore", Err: err}
	}
	if out.Filename == "" {
		out.Filename = stored
	}
	return domain.Image{URL: out.URL, Filename: out.Filename}, nil
}

// Destroy removes a stored file by filename. A 404 maps to ErrNotFound so
// callers can treat an already-gone file as best-effort success.
func (c *Client) Destroy(ctx context.Context, filename string) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	b, _ := json.Marshal(map[string]string{"filename": filename})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/destroy", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		observability.ObserveExternal("imagestore", "destroy", 0, time.Since(start))
		return &domain.ExternalServiceError{Service: "imagestore", Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("imagestore", "destroy", resp.StatusCode, time.Since(start))

	return statusErr(resp)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "yelpcamp/1.0")
}

func (c *Client) storedName(original string) string {
	ext := path.Ext(original)
	return c.folder + "/" + uuid.NewString() + ext
}

func statusErr(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.ExternalServiceError{
			Service: "imagestore",
			Err:     fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))),
		}
	}
}

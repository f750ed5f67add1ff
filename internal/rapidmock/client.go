package rapidmock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://api.rapidmock.com/api/vikuman/v1"

	maxBodyBytes  = 1 << 20
	maxErrorBytes = 4096
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.With().Str("component", "rapidmock").Logger(),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListMovies fetches the full catalog.
func (c *Client) ListMovies(ctx context.Context) ([]Movie, error) {
	body, err := c.do(ctx, "list movies", http.MethodGet, "/movies/all", nil)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("decode movies response: %w", err)
	}
	return movies, nil
}

// GetMovie fetches one movie. A successful response with an empty body,
// null, or an empty object yields ErrNotFound.
func (c *Client) GetMovie(ctx context.Context, id int64) (MovieDetails, error) {
	q := make(url.Values)
	q.Set("id", strconv.FormatInt(id, 10))

	body, err := c.do(ctx, "get movie", http.MethodGet, "/movies?"+q.Encode(), nil)
	if err != nil {
		return MovieDetails{}, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return MovieDetails{}, ErrNotFound
	}

	var details *MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return MovieDetails{}, fmt.Errorf("decode movie response: %w", err)
	}
	if details == nil || (details.ID == 0 && details.Title == "") {
		return MovieDetails{}, ErrNotFound
	}
	return *details, nil
}

// GetMyList fetches the user's list. Missing buckets come back as empty slices.
func (c *Client) GetMyList(ctx context.Context) (MyList, error) {
	body, err := c.do(ctx, "get my list", http.MethodGet, "/mylist", nil)
	if err != nil {
		return MyList{}, err
	}

	var list *MyList
	if err := json.Unmarshal(body, &list); err != nil {
		return MyList{}, fmt.Errorf("decode my list response: %w", err)
	}
	if list == nil {
		list = &MyList{}
	}
	if list.Watched == nil {
		list.Watched = []ListEntry{}
	}
	if list.ToWatch == nil {
		list.ToWatch = []ListEntry{}
	}
	return *list, nil
}

type addToListRequest struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

// AddToList tags a movie with status. Only the HTTP status of the response
// is inspected.
func (c *Client) AddToList(ctx context.Context, id int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	payload, err := json.Marshal(addToListRequest{ID: id, Status: status})
	if err != nil {
		return fmt.Errorf("encode add to list request: %w", err)
	}
	_, err = c.do(ctx, "add to list", http.MethodPost, "/mylist/add", bytes.NewReader(payload))
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(errBody))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", op, ErrResponseTooLarge, maxBodyBytes)
	}
	return data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

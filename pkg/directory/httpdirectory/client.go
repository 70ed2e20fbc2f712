// Package httpdirectory provides a directory.Directory implementation backed by
// a remote subscriber service speaking JSON over HTTP.
package httpdirectory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"topics/pkg/directory"
	"topics/pkg/domain"
	"topics/pkg/serrors"

	"github.com/google/uuid"
)

// DefaultBatchSize is the number of identities sent per search request when
// Options.BatchSize is not set.
const DefaultBatchSize = 100

const searchPath = "/v1/subscribers/search"

// Options configures a Client.
type Options struct {
	BaseURL   string
	Token     string
	BatchSize int
}

// Client searches a remote subscriber directory. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	batchSize  int
}

// Ensure Client conforms to the directory.Directory interface at compile time.
var _ directory.Directory = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to reach the
// directory at options.BaseURL.
func New(httpClient *http.Client, options Options) *Client {
	batchSize := options.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
		token:      options.Token,
		batchSize:  batchSize,
	}
}

type searchReq struct {
	OrganizationID string   `json:"organizationId"`
	EnvironmentID  string   `json:"environmentId"`
	SubscriberIDs  []string `json:"subscriberIds"`
}

type subscriberRes struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	EnvironmentID  uuid.UUID `json:"environmentId"`
	SubscriberID   string    `json:"subscriberId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (s subscriberRes) toDomain() domain.Subscriber {
	return domain.Subscriber{
		ID:             domain.SubscriberID(s.ID),
		OrganizationID: domain.OrganizationID(s.OrganizationID),
		EnvironmentID:  domain.EnvironmentID(s.EnvironmentID),
		ExternalID:     domain.ExternalSubscriberID(s.SubscriberID),
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		CreatedAt:      s.CreatedAt,
	}
}

// SubscribersByExternalIDs searches the remote directory in batches of at most
// BatchSize identities and concatenates the matches.
func (c *Client) SubscribersByExternalIDs(
	ctx context.Context,
	scope domain.Scope,
	ids []domain.ExternalSubscriberID,
) ([]domain.Subscriber, error) {
	var out []domain.Subscriber
	for start := 0; start < len(ids); start += c.batchSize {
		end := min(start+c.batchSize, len(ids))
		found, err := c.search(ctx, scope, ids[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}

	return out, nil
}

func (c *Client) search(
	ctx context.Context,
	scope domain.Scope,
	ids []domain.ExternalSubscriberID,
) ([]domain.Subscriber, error) {
	body := searchReq{
		OrganizationID: scope.OrganizationID.String(),
		EnvironmentID:  scope.EnvironmentID.String(),
		SubscriberIDs:  make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		body.SubscriberIDs = append(body.SubscriberIDs, string(id))
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var rs struct {
		Data []subscriberRes `json:"data"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	out := make([]domain.Subscriber, 0, len(rs.Data))
	for _, s := range rs.Data {
		out = append(out, s.toDomain())
	}

	return out, nil
}

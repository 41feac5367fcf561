// Package googletasks reads task lists from the Google Tasks API so they can
// be imported into a session.
package googletasks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todos/internal/config"
	"todos/internal/service"
)

const (
	// Scope is the OAuth scope requested at login. Import never writes.
	Scope = tasks.TasksReadonlyScope

	// PageSize is the number of items requested per page.
	PageSize = 100

	// FetchTimeout bounds a full import.
	FetchTimeout = 30 * time.Second

	// StatusCompleted is the API status of a finished task.
	StatusCompleted = "completed"
)

// Client fetches task lists from Google Tasks.
type Client struct {
	svc *tasks.Service
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	// Token source refreshes the access token as needed
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client and endpoint
// (for testing). An empty endpoint uses the public API.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// FetchAll returns every task list with all of its tasks, completed ones
// included, in API order.
func (c *Client) FetchAll(ctx context.Context) ([]service.ImportList, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	var remote []*tasks.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		remote = append(remote, resp.Items...)
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	result := make([]service.ImportList, 0, len(remote))
	for _, list := range remote {
		items, err := c.fetchTasks(ctx, list.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, service.ImportList{Title: list.Title, Tasks: items})
	}
	return result, nil
}

func (c *Client) fetchTasks(ctx context.Context, listID string) ([]service.ImportTask, error) {
	var result []service.ImportTask
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, task := range resp.Items {
				result = append(result, service.ImportTask{
					Title: task.Title,
					Done:  task.Status == StatusCompleted,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: todos login)")
	}

	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}

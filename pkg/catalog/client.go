package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/samvad-hq/article-catalog-client/internal/domain"
	"github.com/samvad-hq/article-catalog-client/pkg/httpclient"
)

const (
	articlePath = "article"
	maxTopics   = 2
	mediaJSON   = "application/json"
)

// Client calls the article catalog REST API.
type Client struct {
	http      httpclient.Client
	endpoint  string
	log       Logger
	closeOnce sync.Once
}

var _ Service = (*Client)(nil)

// NewClient binds a client to the catalog API rooted at baseURL.
func NewClient(baseURL string, client httpclient.Client, log Logger) (*Client, error) {
	if client == nil {
		return nil, errors.New("http client must not be nil")
	}
	endpoint, err := articleEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:     client,
		endpoint: endpoint,
		log:      ensureLogger(log),
	}, nil
}

func articleEndpoint(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", errors.New("base url is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("base url %q must be an absolute http(s) url", baseURL)
	}
	return u.JoinPath(articlePath).String(), nil
}

// FindArticles lists articles, optionally filtered by up to two topics and an author.
// It returns nil when the filter is invalid or the request fails.
func (c *Client) FindArticles(ctx context.Context, topics []string, author string) []domain.ArticleSimpleDTO {
	if len(topics) > maxTopics {
		c.log.WarnObj("too many topics; at most two are allowed", "topics", topics)
		return nil
	}

	query := url.Values{}
	for _, topic := range topics {
		query.Add("topic", topic)
	}
	if author != "" {
		query.Set("author", author)
	}

	status, body, err := c.get(ctx, c.endpoint, query, nil)
	if err != nil {
		c.log.ErrorObj("article search request failed", "error", err.Error())
		return nil
	}
	if status != http.StatusOK {
		c.log.ErrorObj("article search failed", "status_code", status)
		return nil
	}

	articles := []domain.ArticleSimpleDTO{}
	if err := json.Unmarshal(body, &articles); err != nil {
		c.log.ErrorObj("decode article list", "error", err.Error())
		return nil
	}
	c.log.DebugObj("articles found", "search", map[string]any{
		"topics": topics,
		"author": author,
		"count":  len(articles),
	})
	return articles
}

// FindArticleByID authenticates the caller and then fetches one article.
// It returns nil when authentication fails, the article does not exist, or the request fails.
func (c *Client) FindArticleByID(ctx context.Context, id int64, username, password string) *domain.ArticleDetailedDTO {
	if c.authenticate(ctx, username, password) == nil {
		c.log.WarnObj("could not authenticate user", "username", username)
		return nil
	}

	target := c.endpoint + "/" + strconv.FormatInt(id, 10)
	status, body, err := c.get(ctx, target, nil, &httpclient.BasicAuth{Username: username, Password: password})
	if err != nil {
		c.log.ErrorObj("article lookup request failed", "error", err.Error())
		return nil
	}

	switch status {
	case http.StatusOK:
		var article domain.ArticleDetailedDTO
		if err := json.Unmarshal(body, &article); err != nil {
			c.log.ErrorObj("decode article", "error", err.Error())
			return nil
		}
		return &article
	case http.StatusNotFound:
		c.log.WarnObj("article not found", "article_id", id)
	default:
		c.log.ErrorObj("article lookup failed", "lookup", map[string]any{
			"article_id":  id,
			"status_code": status,
		})
	}
	return nil
}

// authenticate checks credentials against the article collection endpoint,
// which answers with the matching customer record when they are valid.
func (c *Client) authenticate(ctx context.Context, username, password string) *domain.Customer {
	status, body, err := c.get(ctx, c.endpoint, nil, &httpclient.BasicAuth{Username: username, Password: password})
	if err != nil {
		c.log.ErrorObj("authentication request failed", "auth", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil
	}

	switch status {
	case http.StatusOK:
		var customer domain.Customer
		if err := json.Unmarshal(body, &customer); err != nil {
			c.log.ErrorObj("decode customer", "auth", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
			return nil
		}
		return &customer
	case http.StatusNotFound, http.StatusForbidden:
		c.log.WarnObj("authentication failed", "auth", map[string]any{
			"username":    username,
			"status_code": status,
		})
	default:
		c.log.ErrorObj("authentication error", "auth", map[string]any{
			"username":    username,
			"status_code": status,
		})
	}
	return nil
}

// get issues a JSON GET and returns the status code and the fully read body.
func (c *Client) get(ctx context.Context, target string, query url.Values, auth *httpclient.BasicAuth) (int, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := c.http.Get(ctx, target, httpclient.Request{
		Query:   query,
		Headers: map[string]string{"Accept": mediaJSON},
		Auth:    auth,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("GET %s: %w", target, err)
	}
	return resp.StatusCode(), resp.Body(), nil
}

// Close releases the underlying HTTP client. Calls after the first are no-ops.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.http.Close()
	})
	return err
}

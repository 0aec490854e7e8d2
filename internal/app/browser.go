package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/article-catalog-client/internal/config"
	"github.com/samvad-hq/article-catalog-client/internal/logger"
	"github.com/samvad-hq/article-catalog-client/pkg/catalog"
	"github.com/samvad-hq/article-catalog-client/pkg/httpclient"
)

var (
	errNoSearchResult = errors.New("article search returned no result")
	errNoArticle      = errors.New("article lookup returned no result")
)

// Browser wires the catalog client from config and performs one browse pass:
// a filtered search, then an authenticated detail lookup when an article id is configured.
type Browser struct {
	cfg     *config.Config
	catalog catalog.Service
	log     logger.Logger
}

// NewBrowser builds a browser runtime from config.
func NewBrowser(cfg *config.Config, log logger.Logger) (*Browser, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	client, err := catalog.NewClient(cfg.BaseURL, httpclient.NewRestyClient(cfg.HTTPTimeout), log)
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}
	log.InfoObj("catalog client initialized", "catalog_config", map[string]any{
		"base_url": cfg.BaseURL,
		"timeout":  cfg.HTTPTimeout.String(),
	})

	return newBrowser(cfg, client, log), nil
}

func newBrowser(cfg *config.Config, svc catalog.Service, log logger.Logger) *Browser {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Browser{cfg: cfg, catalog: svc, log: log}
}

// Run performs a single browse pass against the catalog.
func (b *Browser) Run(ctx context.Context) error {
	if b == nil || b.catalog == nil {
		return fmt.Errorf("browser is not initialized")
	}

	articles := b.catalog.FindArticles(ctx, b.cfg.Topics, b.cfg.Author)
	if articles == nil {
		return errNoSearchResult
	}
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	b.log.InfoObj("articles listed", "search_meta", map[string]any{
		"topics": b.cfg.Topics,
		"author": b.cfg.Author,
		"count":  len(articles),
		"ids":    ids,
	})

	if b.cfg.ArticleID <= 0 {
		return nil
	}

	article := b.catalog.FindArticleByID(ctx, b.cfg.ArticleID, b.cfg.Username, b.cfg.Password)
	if article == nil {
		return fmt.Errorf("article %d: %w", b.cfg.ArticleID, errNoArticle)
	}
	b.log.InfoObj("article fetched", "article_meta", map[string]any{
		"id":     article.ID,
		"title":  article.Title,
		"author": article.AuthorName,
	})
	return nil
}

// Close releases the catalog client, logging any errors encountered.
func (b *Browser) Close() error {
	if b == nil || b.catalog == nil {
		return nil
	}
	if err := b.catalog.Close(); err != nil {
		b.log.ErrorObj("catalog client close failed", "error", err)
		return err
	}
	return nil
}

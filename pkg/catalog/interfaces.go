package catalog

import (
	"context"

	"github.com/samvad-hq/article-catalog-client/internal/domain"
)

// Service is the article catalog surface consumed by callers.
// A nil result means "no result"; the cause is only reported through the logger.
type Service interface {
	FindArticles(ctx context.Context, topics []string, author string) []domain.ArticleSimpleDTO
	FindArticleByID(ctx context.Context, id int64, username, password string) *domain.ArticleDetailedDTO
	Close() error
}

// Logger defines the logging surface the catalog client relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}

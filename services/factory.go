package services

import (
	"iot-site-backend/config"
	"iot-site-backend/content"
	"iot-site-backend/errors"

	log "github.com/sirupsen/logrus"
)

// Version is reported by the health endpoint
const Version = "1.2.0"

// Container holds all initialized services for handler wiring
type Container struct {
	Content *content.Store
	Catalog CatalogService
	Chat    ChatService
	Inquiry InquiryService
	Health  *HealthService
	Metrics *MetricsService
}

// NewContainer loads site content and wires up the service graph
func NewContainer(cfg *config.Config) (*Container, error) {
	store, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodeContentError, "failed to load site content")
	}

	var metrics *MetricsService
	if cfg.Metrics.Enabled {
		metrics = NewMetricsService()
	}

	catalog := NewCatalogService(store, metrics)
	chat := NewChatService(store.Script(), cfg.Chat, metrics)
	inquiry := NewInquiryService(metrics)

	health := NewHealthService(Version)
	health.RegisterChecker(NewContentHealthChecker(store))
	health.RegisterChecker(NewChatHealthChecker(chat))

	log.WithFields(log.Fields{
		"documents": len(store.Documents()),
		"products":  len(store.Products()),
		"openings":  len(store.Openings()),
	}).Info("Services initialized")

	return &Container{
		Content: store,
		Catalog: catalog,
		Chat:    chat,
		Inquiry: inquiry,
		Health:  health,
		Metrics: metrics,
	}, nil
}

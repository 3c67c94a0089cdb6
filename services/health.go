package services

import (
	"context"
	"fmt"
	"time"

	"iot-site-backend/content"

	log "github.com/sirupsen/logrus"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	HealthStatusDegraded  HealthStatus = "degraded"
)

// ComponentHealth represents the health of a single component
type ComponentHealth struct {
	Name      string                 `json:"name"`
	Status    HealthStatus           `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Duration  time.Duration          `json:"duration"`
}

// SystemHealth represents the overall system health
type SystemHealth struct {
	Status     HealthStatus               `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     time.Duration              `json:"uptime"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components"`
}

// HealthChecker interface for health checking
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) ComponentHealth
}

// HealthService manages health checks for the system
type HealthService struct {
	checkers  map[string]HealthChecker
	startTime time.Time
	version   string
}

// NewHealthService creates a new health service
func NewHealthService(version string) *HealthService {
	return &HealthService{
		checkers:  make(map[string]HealthChecker),
		startTime: time.Now(),
		version:   version,
	}
}

// RegisterChecker registers a health checker
func (h *HealthService) RegisterChecker(checker HealthChecker) {
	h.checkers[checker.Name()] = checker
	log.WithField("component", checker.Name()).Debug("Health checker registered")
}

// CheckHealth performs health checks on all registered components
func (h *HealthService) CheckHealth(ctx context.Context) SystemHealth {
	components := make(map[string]ComponentHealth)
	overallStatus := HealthStatusHealthy

	for name, checker := range h.checkers {
		componentHealth := h.checkComponentWithTimeout(ctx, checker, 5*time.Second)
		components[name] = componentHealth

		switch componentHealth.Status {
		case HealthStatusUnhealthy:
			overallStatus = HealthStatusUnhealthy
		case HealthStatusDegraded:
			if overallStatus == HealthStatusHealthy {
				overallStatus = HealthStatusDegraded
			}
		}
	}

	return SystemHealth{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Uptime:     time.Since(h.startTime),
		Version:    h.version,
		Components: components,
	}
}

// CheckComponent checks the health of a specific component
func (h *HealthService) CheckComponent(ctx context.Context, name string) (ComponentHealth, error) {
	checker, exists := h.checkers[name]
	if !exists {
		return ComponentHealth{}, fmt.Errorf("component %s not found", name)
	}
	return h.checkComponentWithTimeout(ctx, checker, 5*time.Second), nil
}

// checkComponentWithTimeout checks a component with a timeout
func (h *HealthService) checkComponentWithTimeout(ctx context.Context, checker HealthChecker, timeout time.Duration) ComponentHealth {
	start := time.Now()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resultChan := make(chan ComponentHealth, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultChan <- ComponentHealth{
					Name:      checker.Name(),
					Status:    HealthStatusUnhealthy,
					Message:   fmt.Sprintf("Health check panicked: %v", r),
					Timestamp: time.Now(),
					Duration:  time.Since(start),
				}
			}
		}()

		result := checker.Check(timeoutCtx)
		result.Duration = time.Since(start)
		resultChan <- result
	}()

	select {
	case result := <-resultChan:
		return result
	case <-timeoutCtx.Done():
		return ComponentHealth{
			Name:      checker.Name(),
			Status:    HealthStatusUnhealthy,
			Message:   "Health check timed out",
			Timestamp: time.Now(),
			Duration:  timeout,
		}
	}
}

// ContentHealthChecker verifies the content store loaded usable data
type ContentHealthChecker struct {
	store *content.Store
}

// NewContentHealthChecker creates a content store health checker
func NewContentHealthChecker(store *content.Store) *ContentHealthChecker {
	return &ContentHealthChecker{store: store}
}

// Name returns the checker name
func (c *ContentHealthChecker) Name() string {
	return "content"
}

// Check verifies catalog, product and chat-script content is present
func (c *ContentHealthChecker) Check(ctx context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      c.Name(),
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"documents": len(c.store.Documents()),
			"products":  len(c.store.Products()),
			"openings":  len(c.store.Openings()),
		},
	}

	switch {
	case len(c.store.Documents()) == 0 || len(c.store.Products()) == 0:
		health.Status = HealthStatusUnhealthy
		health.Message = "Catalog content is empty"
	case c.store.Script() == nil || len(c.store.Script().QuickReplies) == 0:
		health.Status = HealthStatusUnhealthy
		health.Message = "Chat script is missing"
	case len(c.store.Openings()) == 0:
		health.Status = HealthStatusDegraded
		health.Message = "Careers content is empty"
	default:
		health.Status = HealthStatusHealthy
	}

	return health
}

// ChatHealthChecker verifies the chat service answers turns
type ChatHealthChecker struct {
	chat ChatService
}

// NewChatHealthChecker creates a chat service health checker
func NewChatHealthChecker(chat ChatService) *ChatHealthChecker {
	return &ChatHealthChecker{chat: chat}
}

// Name returns the checker name
func (c *ChatHealthChecker) Name() string {
	return "chat"
}

// Check opens and closes a throwaway session to prove the pipeline works
func (c *ChatHealthChecker) Check(ctx context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      c.Name(),
		Timestamp: time.Now(),
	}

	session, err := c.chat.OpenSession(ctx, "", "/health")
	if err != nil {
		health.Status = HealthStatusUnhealthy
		health.Message = err.Error()
		return health
	}
	_ = c.chat.CloseSession(ctx, session.ID)

	if len(session.Messages) == 0 {
		health.Status = HealthStatusDegraded
		health.Message = "Session opened without a welcome message"
		return health
	}

	health.Status = HealthStatusHealthy
	return health
}

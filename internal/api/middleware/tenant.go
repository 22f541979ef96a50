package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgTenantNotFound    = "тенант не найден"
	msgTenantUnavailable = "не удалось проверить тенанта"

	// DefaultTenantCacheTTL как долго помнить проверенного тенанта
	DefaultTenantCacheTTL = 5 * time.Minute
)

type tenantKey struct{}

// WithTenant кладет ID тенанта в контекст
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// TenantFromContext достает ID тенанта, проверенного middleware
func TenantFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantKey{}).(string)
	return tenantID, ok && tenantID != ""
}

// Tenant проверяет {tenantId} из пути через бэкенд и кладет его в контекст.
// Успешные проверки кэшируются на ttl.
type Tenant struct {
	validator TenantValidator
	ttl       time.Duration
	logger    Logger
	now       func() time.Time

	mu        sync.Mutex
	validated map[string]time.Time
}

// NewTenant создает middleware проверки тенанта
func NewTenant(validator TenantValidator, ttl time.Duration, logger Logger) *Tenant {
	if ttl <= 0 {
		ttl = DefaultTenantCacheTTL
	}
	return &Tenant{
		validator: validator,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		validated: make(map[string]time.Time),
	}
}

// Middleware mux.MiddlewareFunc
func (t *Tenant) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := mux.Vars(r)["tenantId"]
		if tenantID == "" {
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}

		if !t.isCached(tenantID) {
			ok, err := t.validator.ValidateTenant(r.Context(), tenantID)
			if err != nil {
				t.logger.Error("Tenant middleware: failed to validate tenant=%s: %v", tenantID, err)
				handlers.RespondError(w, http.StatusBadGateway, msgTenantUnavailable)
				return
			}
			if !ok {
				handlers.RespondNotFound(w, msgTenantNotFound)
				return
			}
			t.remember(tenantID)
		}

		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenantID)))
	})
}

func (t *Tenant) isCached(tenantID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	expires, ok := t.validated[tenantID]
	if !ok {
		return false
	}
	if t.now().After(expires) {
		delete(t.validated, tenantID)
		return false
	}
	return true
}

func (t *Tenant) remember(tenantID string) {
	t.mu.Lock()
	t.validated[tenantID] = t.now().Add(t.ttl)
	t.mu.Unlock()
}

package cache

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"horeca/config"
	"horeca/internal/domain/service"
)

// Params defines the parameters required for the permission cache
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the permission cache substrate from configuration: Redis when
// configured, otherwise a passthrough that always reads the database.
func New(params Params) (service.PermissionCache, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("no cache substrate configured, authorization reads go directly to the database")

		return NewPassthrough(), nil
	}

	return NewRedis(params.Config.Redis, params.Logger)
}

const (
	defaultAdminTTL        = 2 * time.Minute
	defaultAdminMaxEntries = 10_000
)

// NewAdminVerdictCache builds the process-local platform-admin tier.
// The TTL is deliberately short: revoking an administrator must take effect
// on every instance within one TTL.
func NewAdminVerdictCache(cfg *config.Config) service.AdminVerdictCache {
	ttl := defaultAdminTTL
	maxEntries := defaultAdminMaxEntries
	if pc := cfg.PermissionCache; pc != nil {
		if pc.AdminTTL > 0 {
			ttl = pc.AdminTTL
		}
		if pc.AdminMaxEntries > 0 {
			maxEntries = pc.AdminMaxEntries
		}
	}

	return NewMemory[bool](maxEntries, ttl)
}

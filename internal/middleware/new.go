package middleware

import (
	"github-manager/config"
	"github-manager/internal/model"
	"github-manager/pkg/log"
)

type Middleware struct {
	l      log.Logger
	scopes map[string]model.Scope
}

// New builds the middleware set from the configured API keys.
func New(l log.Logger, keys []config.APIKeyConfig) Middleware {
	scopes := make(map[string]model.Scope, len(keys))
	for _, key := range keys {
		if key.Key == "" {
			continue
		}
		scopes[key.Key] = model.Scope{User: key.User, Role: model.Role(key.Role)}
	}
	return Middleware{
		l:      l,
		scopes: scopes,
	}
}

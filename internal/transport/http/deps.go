package http

import (
	jwtinfra "github.com/quoteshelf/api/internal/infrastructure/jwt"
	"github.com/quoteshelf/api/internal/infrastructure/postgres"
	redisinfra "github.com/quoteshelf/api/internal/infrastructure/redis"
	"github.com/quoteshelf/api/internal/infrastructure/smtp"
	"github.com/quoteshelf/api/internal/infrastructure/social"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	DB          *postgres.Client
	UserRepo    *postgres.UserRepo
	QuoteRepo   *postgres.QuoteRepo
	Codes       *redisinfra.VerificationStore
	Mailer      smtp.Mailer
	Providers   *social.Registry
	JWTProvider *jwtinfra.Provider
}

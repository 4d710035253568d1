package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/jobdeck/jobdeck-ui/config"
	redisadapter "github.com/jobdeck/jobdeck-ui/internal/adapters/redis"
	"github.com/jobdeck/jobdeck-ui/internal/adapters/upstream"
	"github.com/jobdeck/jobdeck-ui/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds the application services served over HTTP.
type ServiceContainer struct {
	Auth      *service.AuthService
	Jobs      *service.JobService
	Profile   *service.ProfileService
	Dashboard *service.DashboardService
}

// BuildServices constructs the upstream client, the Redis-backed
// stores, and the services on top of them.
func BuildServices(cfg *config.AppConfig, redisClient redis.UniversalClient, logger *slog.Logger) (ServiceContainer, error) {
	client, err := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create upstream client: %w", err)
	}

	sessions := redisadapter.NewSessionStore(redisClient)
	users := redisadapter.NewUserCache(redisClient, cfg.Session.UserCacheTTL)

	auth := service.NewAuthService(service.AuthServiceOptions{
		Client:          client,
		Sessions:        sessions,
		Users:           users,
		Logger:          logger,
		SessionTTL:      cfg.Session.TTL,
		RevalidateGrace: cfg.Session.RevalidateGrace,
	})

	jobs := service.NewJobService(service.JobServiceOptions{
		Client: client,
		Logger: logger,
	})

	profile := service.NewProfileService(service.ProfileServiceOptions{
		Client: client,
		Auth:   auth,
		Users:  users,
		Logger: logger,
	})

	dashboard := service.NewDashboardService(service.DashboardServiceOptions{
		Client: client,
		Jobs:   jobs,
		Logger: logger,
	})

	return ServiceContainer{
		Auth:      auth,
		Jobs:      jobs,
		Profile:   profile,
		Dashboard: dashboard,
	}, nil
}

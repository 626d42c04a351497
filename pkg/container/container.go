package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"garden-members-backend/internal/config"
	memberHandler "garden-members-backend/internal/domains/member/handler"
	memberRepo "garden-members-backend/internal/domains/member/repository"
	memberService "garden-members-backend/internal/domains/member/service"
	infraCache "garden-members-backend/internal/infrastructure/cache"
	"garden-members-backend/internal/infrastructure/database"
	"garden-members-backend/internal/shared/notice"
	"garden-members-backend/pkg/cache"

	"garden-members-backend/internal/domains/member"
)

// Container holds the application dependency graph.
// Everything in it is a singleton built once at startup.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Notices *notice.Queue

	MemberRepo    member.Repository
	MemberService member.Service
	MemberHandler *memberHandler.Handler
}

// NewContainer initializes the dependency graph in order:
// config, then infrastructure, then repository/service/handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Redis only backs transient notices, so its absence degrades
		// the app instead of stopping it.
		log.Warn().Err(err).Msg("redis connection failed (non-critical)")
	}
	c.Cache = redisCache

	c.Notices = notice.NewQueue(c.Cache, time.Duration(cfg.Notice.TTLSeconds)*time.Second)

	c.MemberRepo = memberRepo.NewRepository(c.DB.Pool)
	c.MemberService = memberService.NewService(c.MemberRepo)
	c.MemberHandler = memberHandler.NewHandler(c.MemberService, c.Notices)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
}

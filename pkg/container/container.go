package container

import (
	"context"
	"fmt"

	"autores-backend/internal/config"
	infracache "autores-backend/internal/infrastructure/cache"
	"autores-backend/internal/infrastructure/database"
	"autores-backend/pkg/jwt"
	"autores-backend/pkg/logger"

	accounthandler "autores-backend/internal/domains/account/handler"
	accountrepo "autores-backend/internal/domains/account/repository"
	accountservice "autores-backend/internal/domains/account/service"
	authorhandler "autores-backend/internal/domains/author/handler"
	authorrepo "autores-backend/internal/domains/author/repository"
	authorservice "autores-backend/internal/domains/author/service"
	bookhandler "autores-backend/internal/domains/book/handler"
	bookrepo "autores-backend/internal/domains/book/repository"
	bookservice "autores-backend/internal/domains/book/service"
	commenthandler "autores-backend/internal/domains/comment/handler"
	commentrepo "autores-backend/internal/domains/comment/repository"
	commentservice "autores-backend/internal/domains/comment/service"
)

// Container wires the whole dependency graph at startup: config, then
// infrastructure, then repositories, services and handlers. Handlers are
// the only exported surface the router needs.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      *infracache.RedisCache
	JWTManager *jwt.Manager

	AuthorHandler  *authorhandler.AuthorHandler
	BookHandler    *bookhandler.BookHandler
	CommentHandler *commenthandler.CommentHandler
	AccountHandler *accounthandler.AccountHandler
}

// New builds the container. The database is required; Redis is not, the
// repositories fall back to the database when the cache is unavailable.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, continuing without cache hits", err)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret)

	authorRepository := authorrepo.NewPostgresRepository(db.Pool, redisCache)
	bookRepository := bookrepo.NewBookRepository(db.Pool, redisCache)
	commentRepository := commentrepo.NewCommentRepository(db.Pool)
	accountRepository := accountrepo.NewAccountRepository(db.Pool)

	authorService := authorservice.NewAuthorService(authorRepository)
	bookService := bookservice.NewBookService(bookRepository, authorRepository)
	commentService := commentservice.NewCommentService(commentRepository, bookRepository)
	accountService := accountservice.NewAccountService(accountRepository, jwtManager)

	return &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redisCache,
		JWTManager: jwtManager,

		AuthorHandler:  authorhandler.NewAuthorHandler(authorService),
		BookHandler:    bookhandler.NewBookHandler(bookService),
		CommentHandler: commenthandler.NewCommentHandler(commentService),
		AccountHandler: accounthandler.NewAccountHandler(accountService),
	}, nil
}

// Cleanup releases infrastructure resources in reverse order of creation.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("failed to close database pool", err)
		}
	}
}

package router

import (
	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/container"
	pginfra "github.com/oksasatya/go-blog-platform/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blog-platform/internal/interface/http"
	"github.com/oksasatya/go-blog-platform/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	tokens := pginfra.NewTokenRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	tags := pginfra.NewTagRepository(pool)

	notifier := &application.QueueNotifier{
		Pub:            container.GetRabbitPub(),
		ConfirmURLBase: cfg.PublicURL + "/api/auth/confirm",
		ResetURLBase:   cfg.FrontendURL + "/auth/reset-password",
		Enabled:        cfg.MailSendEnabled,
	}

	authSvc := application.NewAuthService(users, tokens, container.GetCodec(), notifier, logger, application.TokenTTLs{
		Access:     cfg.AccessTTL,
		Refresh:    cfg.RefreshTTL,
		Activation: cfg.ActivationTTL,
		Reset:      cfg.ResetTTL,
	})

	postSvc := &application.PostService{
		Posts:      posts,
		Categories: categories,
		Tags:       tags,
		Redis:      container.GetRedis(),
		Logger:     logger,
		ES:         container.GetES(),
		ESIndex:    cfg.ESPostsIndex,
		GCS:        container.GetGCS(),
		GCSBucket:  cfg.GCSBucket,
		CacheTTL:   cfg.PostCacheTTL,
	}

	commentSvc := application.NewCommentService(comments, posts)
	tagSvc := application.NewTagService(tags)
	categorySvc := application.NewCategoryService(categories)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, cfg, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), authSvc))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), authSvc))
	r.Add(modules.NewTagModule(handlers.NewTagHandler(tagSvc, logger), authSvc))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), authSvc))
}

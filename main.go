package main

import (
	"log"
	"strings"
	"time"

	"github.com/taren4ik/hw05-final/auth"
	"github.com/taren4ik/hw05-final/cache"
	"github.com/taren4ik/hw05-final/config"
	"github.com/taren4ik/hw05-final/db"
	"github.com/taren4ik/hw05-final/handlers"
	"github.com/taren4ik/hw05-final/logger"
	"github.com/taren4ik/hw05-final/models"
	"github.com/taren4ik/hw05-final/storage"
	"github.com/taren4ik/hw05-final/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 14 * 86400 // 2 weeks
)

func main() {
	if err := logger.Init(config.LOG_LEVEL, !config.DEBUG_MODE); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// Index page cache: in-process by default, Redis when configured.
	// Refreshes only by expiry - a write does not clear it.
	var pageStore cache.Store
	if config.REDIS_ADDR != "" {
		redisStore, err := cache.NewRedis(config.REDIS_ADDR, config.REDIS_PASSWORD)
		if err != nil {
			logger.L.Fatal("redis unavailable", zap.String("addr", config.REDIS_ADDR), zap.Error(err))
		}
		pageStore = redisStore
	} else {
		pageStore = cache.NewMemory(nil)
	}
	indexTTL := time.Duration(config.INDEX_CACHE_SECONDS) * time.Second

	// Public pages
	router.GET("/", cache.PageMiddleware(pageStore, indexTTL, "index"), handlers.Index)
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	router.GET("/posts/:id/", handlers.PostDetail)
	router.GET("/media/*path", handlers.Media)
	// Accounts
	router.POST("/auth/signup/", handlers.Signup)
	router.GET(auth.LoginPath, handlers.LoginForm)
	router.POST(auth.LoginPath, handlers.Login)
	// Login-required pages
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", handlers.PostCreateForm)
	authRouter.POST("/create/", handlers.PostCreate)
	authRouter.GET("/posts/:id/edit/", handlers.PostEditForm)
	authRouter.POST("/posts/:id/edit/", handlers.PostEdit)
	authRouter.POST("/posts/:id/comment/", handlers.CommentAdd)
	authRouter.GET("/follow/", handlers.FollowIndex)
	authRouter.GET("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", handlers.ProfileUnfollow)
	authRouter.POST("/auth/logout/", handlers.Logout)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logger.L.Fatal("server stopped", zap.Error(err))
}

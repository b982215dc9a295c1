package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/revpilot/core/internal/middleware"
	"github.com/revpilot/core/internal/modules/activity"
	"github.com/revpilot/core/internal/modules/actual"
	"github.com/revpilot/core/internal/modules/assistant"
	"github.com/revpilot/core/internal/modules/auth"
	"github.com/revpilot/core/internal/modules/backup"
	"github.com/revpilot/core/internal/modules/comment"
	"github.com/revpilot/core/internal/modules/dashboard"
	"github.com/revpilot/core/internal/modules/event"
	"github.com/revpilot/core/internal/modules/eventfinder"
	"github.com/revpilot/core/internal/modules/forecast"
	"github.com/revpilot/core/internal/modules/health"
	"github.com/revpilot/core/internal/modules/hotel"
	"github.com/revpilot/core/internal/modules/task"
	pkgredis "github.com/revpilot/core/internal/pkg/redis"
	"github.com/revpilot/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "revpilot-core",
		"version": Version,
	}

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(),
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	recorder := activity.NewRecorder(db, a.logger)

	health.NewHandler(db, rc, Version).RegisterRoutes(api, authMW)
	auth.NewHandler(auth.NewService(db), recorder).RegisterRoutes(api, authMW)
	activity.NewHandler(recorder).RegisterRoutes(api, authMW)

	hotel.NewHandler(hotel.NewService(db), recorder).RegisterRoutes(api, authMW)
	event.NewHandler(event.NewService(db), recorder).RegisterRoutes(api, authMW)
	forecast.NewHandler(forecast.NewService(db), recorder).RegisterRoutes(api, authMW)
	actual.NewHandler(actual.NewService(db), recorder).RegisterRoutes(api, authMW)
	task.NewHandler(task.NewService(db), recorder).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db), recorder).RegisterRoutes(api, authMW)

	dashboard.NewHandler(dashboard.NewService(db, rc, recorder, a.logger)).RegisterRoutes(api, authMW)

	assistant.NewHandler(assistant.NewService(assistant.NewStore(db), a.logger)).RegisterRoutes(api, authMW)
	eventfinder.NewHandler(eventfinder.NewService(db, a.logger)).RegisterRoutes(api, authMW)

	backup.NewHandler(a.backupSvc(), recorder).RegisterRoutes(api, authMW)

	api.POST("/cache/purge", authMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		recorder.Record(c, "cache.purge", "cache", "", gin.H{"deleted": deleted})
		response.OK(c, gin.H{"deleted": deleted})
	})

	jobs := api.Group("/jobs", authMW)
	jobs.GET("", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	jobs.GET("/:name", func(c *gin.Context) {
		info, err := a.sched.Info(c.Param("name"))
		if err != nil {
			response.NotFound(c)
			return
		}
		response.OK(c, info)
	})
	jobs.POST("/:name/run", func(c *gin.Context) {
		// The job outlives the request, so it must not use the request context.
		if err := a.sched.Trigger(context.Background(), c.Param("name")); err != nil {
			response.NotFound(c)
			return
		}
		recorder.Record(c, "job.trigger", "job", c.Param("name"), nil)
		response.NoContent(c)
	})
}

func (a *App) backupSvc() *backup.Service {
	return backup.NewService(a.db, a.cfg, a.logger)
}

func httpCacheSkipPaths() []string {
	return []string{
		"/api/uptime",
		"/api/health",
		"/api/ping",
		"/api/assistant/chat",
		"/api/event-finder/search",
		"/api/dashboard",
		"/api/dashboard/*",
		"/api/backups",
		"/api/backups/*",
		"/api/jobs",
		"/api/jobs/*",
	}
}

package httpserver

import (
	"voice-srv/internal/middleware"
	"voice-srv/internal/platform"
	platformHTTP "voice-srv/internal/platform/delivery/http"
	platformFile "voice-srv/internal/platform/repository/file"
	platformRedis "voice-srv/internal/platform/repository/redis"
	platformUC "voice-srv/internal/platform/usecase"

	"github.com/gin-gonic/gin"
)

// setupPlatformDomain wires the platform domain and returns its use case for
// downstream domains.
func (srv HTTPServer) setupPlatformDomain(r *gin.RouterGroup, mw middleware.Middleware) platform.UseCase {
	// Platform config files with Redis read-through cache
	configRepo := platformRedis.NewConfigCache(
		srv.l,
		srv.redisClient,
		platformFile.NewConfigRepository(srv.l, srv.config.Platform.ConfigsDir),
	)

	uc := platformUC.New(srv.l, configRepo)

	handler := platformHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	return uc
}

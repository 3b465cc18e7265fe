package httpserver

import (
	"voice-srv/config"
	"voice-srv/internal/analysis"
	analysisProducer "voice-srv/internal/analysis/delivery/kafka/producer"
	"voice-srv/internal/analysis/repository"
	analysisFile "voice-srv/internal/analysis/repository/file"
	analysisMinio "voice-srv/internal/analysis/repository/minio"
	analysisPostgre "voice-srv/internal/analysis/repository/postgre"
	analysisRedis "voice-srv/internal/analysis/repository/redis"
	analysisUC "voice-srv/internal/analysis/usecase"
	"voice-srv/internal/middleware"

	analysisHTTP "voice-srv/internal/analysis/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupAnalysisDomain wires the analysis domain and returns its use case for
// downstream domains.
func (srv HTTPServer) setupAnalysisDomain(r *gin.RouterGroup, mw middleware.Middleware) analysis.UseCase {
	// Corpus source: local directory or MinIO bucket prefix
	var corpusRepo repository.CorpusRepository
	if srv.config.Corpus.Source == config.SourceMinIO {
		corpusRepo = analysisMinio.NewCorpusRepository(srv.l, srv.minioClient, srv.config.Corpus.Prefix)
	} else {
		corpusRepo = analysisFile.NewCorpusRepository(srv.l, srv.config.Corpus.Dir)
	}

	// Profile persistence with Redis read-through cache
	profileRepo := analysisRedis.NewProfileCache(
		srv.l,
		srv.redisClient,
		analysisFile.NewProfileRepository(srv.l, srv.config.Profile.Path),
	)

	runRepo := analysisPostgre.NewRunRepository(srv.l, srv.postgresDB)

	// Producer is optional; without it async analysis is unavailable
	var producer analysis.Producer
	if srv.kafkaProducer != nil {
		producer = analysisProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := analysisUC.New(srv.l, corpusRepo, profileRepo, runRepo, producer)

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	return uc
}

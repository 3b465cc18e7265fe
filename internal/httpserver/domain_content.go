package httpserver

import (
	"fmt"

	"voice-srv/config"
	"voice-srv/internal/analysis"
	"voice-srv/internal/content"
	contentHTTP "voice-srv/internal/content/delivery/http"
	contentRabbitMQ "voice-srv/internal/content/delivery/rabbitmq"
	contentUC "voice-srv/internal/content/usecase"
	"voice-srv/internal/middleware"
	"voice-srv/internal/output"
	outputFile "voice-srv/internal/output/file"
	outputMinio "voice-srv/internal/output/minio"
	"voice-srv/internal/platform"

	"github.com/gin-gonic/gin"
)

// setupContentDomain wires the content domain on top of the analysis and
// platform use cases.
func (srv HTTPServer) setupContentDomain(
	r *gin.RouterGroup,
	mw middleware.Middleware,
	analysisUseCase analysis.UseCase,
	platformUseCase platform.UseCase,
) error {
	// Output sink: local directory or MinIO bucket prefix
	var sink output.Sink
	if srv.config.Output.Sink == config.SourceMinIO {
		sink = outputMinio.NewSink(srv.l, srv.minioClient, srv.config.Output.Prefix)
	} else {
		sink = outputFile.NewSink(srv.l, srv.config.Output.Dir)
	}

	// Publisher is optional; without it prepared payloads are only returned
	var publisher content.GenerationPublisher
	if srv.rabbitConn != nil {
		var err error
		publisher, err = contentRabbitMQ.New(srv.l, srv.rabbitConn)
		if err != nil {
			return fmt.Errorf("failed to initialize generation publisher: %w", err)
		}
	}

	uc := contentUC.New(srv.l, analysisUseCase, platformUseCase, sink, publisher)

	handler := contentHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	return nil
}

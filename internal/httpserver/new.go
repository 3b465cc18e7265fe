package httpserver

import (
	"database/sql"
	"errors"

	"voice-srv/config"
	"voice-srv/pkg/discord"
	"voice-srv/pkg/encrypter"
	pkgJWT "voice-srv/pkg/jwt"
	pkgKafka "voice-srv/pkg/kafka"
	"voice-srv/pkg/log"
	pkgMinio "voice-srv/pkg/minio"
	pkgRabbitMQ "voice-srv/pkg/rabbitmq"
	pkgRedis "voice-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IConnection

	// Storage Configuration (optional, required when corpus/output use MinIO)
	minioClient pkgMinio.IMinIO

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IConnection

	// Storage Configuration (optional)
	MinIOClient pkgMinio.IMinIO

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		// Storage Configuration
		minioClient: cfg.MinIOClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Storage Configuration is required when corpus or output use MinIO
	if srv.minioClient == nil &&
		(srv.config.Corpus.Source == config.SourceMinIO || srv.config.Output.Sink == config.SourceMinIO) {
		return errors.New("minioClient is required when corpus source or output sink is minio")
	}

	// Messaging and Discord are optional; features degrade without them.

	return nil
}

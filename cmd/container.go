package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/skovr/talentmatch/internal/ai/embeddings"
	"github.com/skovr/talentmatch/internal/ai/keywords"
	"github.com/skovr/talentmatch/internal/textextract"
	"github.com/skovr/talentmatch/matching/auth"
	"github.com/skovr/talentmatch/matching/match"
	"github.com/skovr/talentmatch/matching/match/matchapi"
	"github.com/skovr/talentmatch/matching/match/matchsrv"
	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/matching/profile/profileapi"
	"github.com/skovr/talentmatch/matching/profile/profileinfra"
	"github.com/skovr/talentmatch/matching/profile/profilesrv"
	"github.com/skovr/talentmatch/pkg/fsx"
	"github.com/skovr/talentmatch/pkg/fsx/fsxs3"
	"github.com/skovr/talentmatch/pkg/kernel"
	"github.com/skovr/talentmatch/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Capabilities
	Encoder  profile.Encoder
	Keywords profile.KeywordExtractor
	Domains  *profilesrv.DomainClassifier

	// Domain Services
	ProfileService *profilesrv.Service
	MatchService   *matchsrv.Service
	AuthService    *auth.Service
	TokenService   *auth.TokenService

	// API Handlers
	ProfileHandlers *profileapi.Handlers
	MatchHandlers   *matchapi.Handlers
	AuthHandlers    *auth.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context) *Container {
	c := &Container{}
	c.initInfrastructure(ctx)
	c.initServices(ctx)
	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (embedding cache)
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(ctx).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis, embedding cache disabled: %v", err)
	}

	// 3. AWS S3 Configuration (document source)
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "documents")
}

func (c *Container) initServices(ctx context.Context) {
	// --- Capabilities ---
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logx.Warn("OPENAI_API_KEY is not set, embedding calls will fail")
	}

	encoder := embeddings.NewGenerator(apiKey)
	c.Encoder = profileinfra.NewCachedEncoder(c.Redis, encoder, "talentmatch", 0)
	c.Keywords = keywords.NewRanker(profile.MaxKeywords)

	// Domain prototypes are embedded once, before any request is served
	threshold := envFloat("DOMAIN_THRESHOLD", 0)
	domains, err := profilesrv.NewDomainClassifier(ctx, c.Encoder, threshold)
	if err != nil {
		logx.Fatalf("Failed to initialize domain classifier: %v", err)
	}
	c.Domains = domains

	// --- Repositories ---
	profileRepo := profileinfra.NewPostgresProfileRepository(c.DB)

	// --- Domain Services ---
	c.ProfileService = profilesrv.NewService(
		profileRepo,
		c.Encoder,
		c.Keywords,
		textextract.NewExtractor(),
		c.FileSystem,
		c.Domains,
	)

	weights := match.Weights{
		Skill:          envFloat("MATCH_SKILL_WEIGHT", match.DefaultWeights().Skill),
		Embedding:      envFloat("MATCH_EMBEDDING_WEIGHT", match.DefaultWeights().Embedding),
		Responsibility: envFloat("MATCH_RESPONSIBILITY_WEIGHT", match.DefaultWeights().Responsibility),
	}
	scorer, err := matchsrv.NewScorer(c.Encoder, weights, match.DefaultOverlapWeights())
	if err != nil {
		logx.Fatalf("Invalid match weights: %v", err)
	}
	c.MatchService = matchsrv.NewService(
		profileRepo,
		scorer,
		envInt("MATCH_WORKERS", matchsrv.DefaultWorkers),
		0,
	)

	// --- Auth ---
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewTokenService([]byte(jwtSecret), "talentmatch", 0)

	clients, err := loadClients()
	if err != nil {
		logx.Fatalf("Failed to load API clients: %v", err)
	}
	c.AuthService = auth.NewService(clients, c.TokenService)

	// --- Handlers ---
	c.ProfileHandlers = profileapi.NewHandlers(c.ProfileService)
	c.MatchHandlers = matchapi.NewHandlers(c.MatchService)
	c.AuthHandlers = auth.NewHandlers(c.AuthService)
}

// loadClients reads the single bootstrap API client from the environment.
// API_CLIENT_SECRET is hashed at startup so the plaintext never sticks around.
func loadClients() (map[kernel.ClientID]string, error) {
	clientID := kernel.ClientID(os.Getenv("API_CLIENT_ID"))
	clientSecret := os.Getenv("API_CLIENT_SECRET")
	if clientID.IsEmpty() || clientSecret == "" {
		return nil, fmt.Errorf("API_CLIENT_ID and API_CLIENT_SECRET must be set")
	}

	hash, err := auth.HashSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	return map[kernel.ClientID]string{clientID: hash}, nil
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logx.Warnf("Invalid %s=%q, using %v: %v", key, raw, fallback, err)
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logx.Warnf("Invalid %s=%q, using %v: %v", key, raw, fallback, err)
		return fallback
	}
	return v
}

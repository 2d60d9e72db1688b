package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/deckhub-server/internal/api/grpc/handler"
	"github.com/dtroode/deckhub-server/internal/api/grpc/middleware"
	"github.com/dtroode/deckhub-server/internal/api/grpc/proto"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// protectedPrefix marks the methods that require a bearer access token.
const protectedPrefix = "/deckhub.Decks/"

// Router manages gRPC service registration and middleware configuration.
type Router struct {
	authService    handler.AuthService
	deckService    handler.DeckService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	health         *health.Server
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	deckService handler.DeckService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		deckService:    deckService,
		tokenService:   tokenService,
		contextManager: contextManager,
		health:         health.NewServer(),
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), protectedPrefix)
}

// Register builds a gRPC server with logging and authentication interceptors
// and registers the auth, decks and health services on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerDeckRoutes(s)
	r.registerHealth(s)

	return s
}

// Shutdown marks every service as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	proto.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerDeckRoutes(server *grpc.Server) {
	deckHandler := handler.NewDecks(r.deckService, r.contextManager, r.logger)
	proto.RegisterDecksServer(server, deckHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	for _, name := range []string{"", proto.Auth_ServiceDesc.ServiceName, proto.Decks_ServiceDesc.ServiceName} {
		r.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
}

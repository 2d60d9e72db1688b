package router

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcContext "github.com/dtroode/deckhub-server/internal/api/grpc/context"
	"github.com/dtroode/deckhub-server/internal/api/grpc/proto"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/testutil"
)

type harness struct {
	auth   *mocks.AuthService
	decks  *mocks.DeckService
	tokens *mocks.TokenService
	router *Router
	conn   *grpc.ClientConn
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		auth:   mocks.NewAuthService(t),
		decks:  mocks.NewDeckService(t),
		tokens: mocks.NewTokenService(t),
	}
	h.router = New(h.auth, h.decks, h.tokens, grpcContext.NewManager(), testutil.MakeNoopLogger())
	server := h.router.Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	h.conn = conn

	return h
}

func TestRouter_AuthIsPublic(t *testing.T) {
	h := newHarness(t)

	h.auth.On("Login", mock.Anything, "ada@example.com", "secret1").
		Return(model.Identity{UserID: uuid.New(), Email: "ada@example.com"}, model.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	out, err := proto.NewAuthClient(h.conn).Login(context.Background(), &proto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a", out.AccessToken)
	assert.Equal(t, "ada@example.com", out.User.Email)
}

func TestRouter_DecksRequireToken(t *testing.T) {
	h := newHarness(t)

	_, err := proto.NewDecksClient(h.conn).List(context.Background(), &proto.ListDecksRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_DecksWithToken(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()

	h.tokens.On("GetUserID", mock.Anything, "access").Return(owner, nil)
	h.decks.On("List", mock.Anything, owner).Return([]model.Deck{{ID: "d1", Title: "Q3 Review", Slides: []model.Slide{{Title: "Q3 Review"}}}})

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer access")
	out, err := proto.NewDecksClient(h.conn).List(ctx, &proto.ListDecksRequest{})
	require.NoError(t, err)
	require.Len(t, out.Decks, 1)
	assert.Equal(t, "d1", out.Decks[0].Id)
}

func TestRouter_ExportCarriesBytes(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()

	h.tokens.On("GetUserID", mock.Anything, "access").Return(owner, nil)
	h.decks.On("Export", mock.Anything, owner, "d1").Return([]byte(`{"id":"d1"}`), "Q3_Review.json", nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer access")
	out, err := proto.NewDecksClient(h.conn).Export(ctx, &proto.ExportDeckRequest{Id: "d1"})
	require.NoError(t, err)
	assert.Equal(t, "Q3_Review.json", out.FileName)
	assert.Equal(t, `{"id":"d1"}`, string(out.Data))
}

func TestRouter_UseTemplate(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()

	h.tokens.On("GetUserID", mock.Anything, "access").Return(owner, nil)
	h.decks.On("UseTemplate", mock.Anything, owner, "template-2").
		Return(model.Deck{ID: "d2", Title: "Course Lecture", Slides: []model.Slide{{Title: "Introduction"}}}, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer access")
	out, err := proto.NewDecksClient(h.conn).UseTemplate(ctx, &proto.UseTemplateRequest{TemplateId: "template-2"})
	require.NoError(t, err)
	assert.Equal(t, "d2", out.Deck.Id)
	assert.Equal(t, "Course Lecture", out.Deck.Title)
}

func TestRouter_Health(t *testing.T) {
	h := newHarness(t)
	client := healthpb.NewHealthClient(h.conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: proto.Decks_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	h.router.Shutdown()

	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

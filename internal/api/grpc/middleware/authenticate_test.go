package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcContext "github.com/dtroode/deckhub-server/internal/api/grpc/context"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	validID := uuid.New()

	tests := []struct {
		name         string
		mdAuthHeader string
		callsService bool
		svcUserID    uuid.UUID
		svcErr       error
		wantErr      bool
	}{
		{
			name:    "missing authorization header",
			wantErr: true,
		},
		{
			name:         "not a bearer token",
			mdAuthHeader: "Basic dXNlcjpwYXNz",
			wantErr:      true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			callsService: true,
			svcErr:       assert.AnError,
			wantErr:      true,
		},
		{
			name:         "nil user id from token",
			mdAuthHeader: "Bearer token",
			callsService: true,
			svcUserID:    uuid.Nil,
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			callsService: true,
			svcUserID:    validID,
		},
		{
			name:         "lowercase scheme",
			mdAuthHeader: "bearer token",
			callsService: true,
			svcUserID:    validID,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := grpcContext.NewManager()
			svc := mocks.NewTokenService(t)
			if tt.callsService {
				svc.On("GetUserID", mock.Anything, mock.AnythingOfType("string")).Return(tt.svcUserID, tt.svcErr)
			}
			m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				require.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Nil(t, newCtx)
				return
			}

			require.NoError(t, err)
			got, ok := cm.GetUserIDFromContext(newCtx)
			assert.True(t, ok)
			assert.Equal(t, validID, got)
		})
	}
}

func TestAuthenticate_PassesTokenWithoutScheme(t *testing.T) {
	t.Parallel()

	svc := mocks.NewTokenService(t)
	svc.On("GetUserID", mock.Anything, "abc.def.ghi").Return(uuid.New(), nil)

	m := NewAuthenticate(svc, grpcContext.NewManager(), testutil.MakeNoopLogger())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))

	_, err := m.AuthFunc(ctx)
	assert.NoError(t, err)
}

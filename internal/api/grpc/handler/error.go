package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/model"
)

func handleError(err error) error {
	if apiErr, ok := apierrors.As(err); ok {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "presentation not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

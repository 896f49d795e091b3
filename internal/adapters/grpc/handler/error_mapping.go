package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domainerr.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domainerr.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domainerr.ErrAvailability), errors.Is(err, domainerr.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domainerr.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domainerr.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

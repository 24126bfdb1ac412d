//go:build protogen

package creation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andrelribeiro/agendo/libs/grpcx"
	creationv1 "github.com/andrelribeiro/agendo/protos/gen/creation/v1"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type grpcProvider struct {
	client creationv1.CreationServiceClient
}

// NewRemoteProvider dials the external creation service. When addr is empty
// or the dial fails, the fallback provider is used instead.
func NewRemoteProvider(logger *slog.Logger, addr string, fallback Provider) (Provider, error) {
	if addr == "" {
		return fallback, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpcx.Dial(ctx, addr, 5*time.Second)
	if err != nil {
		logger.Warn("creation service unavailable, using local provider", "err", err)
		return fallback, nil
	}

	logger.Info("grpc creation provider enabled", "addr", addr)
	return &grpcProvider{client: creationv1.NewCreationServiceClient(conn)}, nil
}

func (p *grpcProvider) Create(ctx context.Context, providerID, userID string, date time.Time) (model.Appointment, error) {
	resp, err := p.client.CreateAppointment(ctx, &creationv1.CreateAppointmentRequest{
		ProviderId: providerID,
		UserId:     userID,
		Date:       timestamppb.New(date),
	})
	if err != nil {
		return model.Appointment{}, err
	}
	if resp.GetDenialReason() != "" {
		return model.Appointment{}, denialFromReason(resp.GetDenialReason())
	}
	return model.Appointment{
		ID:         resp.GetAppointmentId(),
		UserID:     userID,
		ProviderID: providerID,
		Date:       resp.GetDate().AsTime(),
	}, nil
}

func denialFromReason(reason string) error {
	for _, known := range []error{ErrProviderNotFound, ErrSelfBooking, ErrPastDate, ErrSlotTaken} {
		if known.Error() == reason {
			return known
		}
	}
	return errors.New(reason)
}

package application

import (
	"context"

	"github.com/dockhand/dockhand/internal/domain/model"
	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// WorkloadService orchestrates container and image operations against the
// runtime client port. Handlers stay transport-only; domain sentinels from
// the client pass through for the HTTP layer to map onto status codes.
type WorkloadService struct {
	client driven.WorkloadClient
}

// NewWorkloadService creates a WorkloadService over the given runtime client.
func NewWorkloadService(client driven.WorkloadClient) *WorkloadService {
	return &WorkloadService{client: client}
}

// Ping reports daemon reachability for the health endpoint.
func (s *WorkloadService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Info returns the condensed daemon state.
func (s *WorkloadService) Info(ctx context.Context) (*model.SystemInfo, error) {
	return s.client.Info(ctx)
}

// ListContainers returns summaries of all containers, running or not.
func (s *WorkloadService) ListContainers(ctx context.Context) ([]model.Container, error) {
	return s.client.ListContainers(ctx)
}

// StartContainer starts the container with the given id.
func (s *WorkloadService) StartContainer(ctx context.Context, id string) error {
	return s.client.StartContainer(ctx, id)
}

// StopContainer stops the container with the given id.
func (s *WorkloadService) StopContainer(ctx context.Context, id string) error {
	return s.client.StopContainer(ctx, id)
}

// DeleteContainer removes the container with the given id. Running
// containers surface model.ErrWorkloadInUse.
func (s *WorkloadService) DeleteContainer(ctx context.Context, id string) error {
	return s.client.DeleteContainer(ctx, id)
}

// ListImages returns summaries of all stored images.
func (s *WorkloadService) ListImages(ctx context.Context) ([]model.Image, error) {
	return s.client.ListImages(ctx)
}

// DeleteImage removes the image with the given id. Images referenced by a
// container surface model.ErrImageInUse.
func (s *WorkloadService) DeleteImage(ctx context.Context, id string) error {
	return s.client.DeleteImage(ctx, id)
}

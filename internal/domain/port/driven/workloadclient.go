package driven

import (
	"context"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// WorkloadClient defines the driven port for the container runtime the
// panel administers. Implementations normalize runtime errors into the
// model sentinels (ErrWorkloadNotFound, ErrWorkloadInUse, ErrImageNotFound,
// ErrImageInUse) and wrap everything else as a fault.
type WorkloadClient interface {
	// Ping reports whether the daemon is reachable.
	Ping(ctx context.Context) error

	// Info returns a condensed view of the daemon state.
	Info(ctx context.Context) (*model.SystemInfo, error)

	// ListContainers returns a summary of all containers, running or not.
	ListContainers(ctx context.Context) ([]model.Container, error)

	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	DeleteContainer(ctx context.Context, id string) error

	// ListImages returns a summary of all stored images.
	ListImages(ctx context.Context) ([]model.Image, error)

	DeleteImage(ctx context.Context, id string) error
}

// Package docker adapts the Docker SDK to the WorkloadClient port.
package docker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"

	"github.com/dockhand/dockhand/internal/domain/model"
	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.WorkloadClient = (*Client)(nil)

// Client wraps the Docker SDK client and normalizes daemon error classes
// into the domain sentinels so nothing above this package imports the SDK.
type Client struct {
	api *client.Client
}

// New connects to the Docker daemon at host (unix socket path or TCP
// endpoint) with API version negotiation.
func New(host string) (*Client, error) {
	api, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	return &Client{api: api}, nil
}

// Close releases the underlying HTTP transport.
func (c *Client) Close() error {
	return c.api.Close()
}

// Ping reports whether the daemon is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("ping docker daemon: %w", err)
	}
	return nil
}

// Info returns a condensed view of the daemon state.
func (c *Client) Info(ctx context.Context) (*model.SystemInfo, error) {
	info, err := c.api.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("docker info: %w", err)
	}

	return &model.SystemInfo{
		Name:              info.Name,
		ServerVersion:     info.ServerVersion,
		OperatingSystem:   info.OperatingSystem,
		Architecture:      info.Architecture,
		Containers:        info.Containers,
		ContainersRunning: info.ContainersRunning,
		ContainersPaused:  info.ContainersPaused,
		ContainersStopped: info.ContainersStopped,
		Images:            info.Images,
	}, nil
}

// ListContainers returns a summary of all containers, running or not.
func (c *Client) ListContainers(ctx context.Context) ([]model.Container, error) {
	list, err := c.api.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	summaries := make([]model.Container, 0, len(list))
	for _, ctr := range list {
		summaries = append(summaries, toContainerSummary(ctr))
	}

	return summaries, nil
}

// StartContainer starts the container with the given id.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return normalizeContainerErr("start", id, err)
	}
	return nil
}

// StopContainer stops the container with the given id, using the daemon's
// default stop timeout.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerStop(ctx, id, container.StopOptions{}); err != nil {
		return normalizeContainerErr("stop", id, err)
	}
	return nil
}

// DeleteContainer removes the container with the given id. The daemon
// rejects removal of a running container with a conflict, surfaced as
// model.ErrWorkloadInUse.
func (c *Client) DeleteContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerRemove(ctx, id, container.RemoveOptions{}); err != nil {
		return normalizeContainerErr("delete", id, err)
	}
	return nil
}

// ListImages returns a summary of all stored images.
func (c *Client) ListImages(ctx context.Context) ([]model.Image, error) {
	list, err := c.api.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	summaries := make([]model.Image, 0, len(list))
	for _, img := range list {
		summaries = append(summaries, toImageSummary(img))
	}

	return summaries, nil
}

// DeleteImage removes the image with the given id. Images referenced by a
// container surface model.ErrImageInUse.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	if _, err := c.api.ImageRemove(ctx, id, image.RemoveOptions{}); err != nil {
		switch {
		case errdefs.IsNotFound(err):
			return fmt.Errorf("delete image %s: %w", id, model.ErrImageNotFound)
		case errdefs.IsConflict(err):
			return fmt.Errorf("delete image %s: %w", id, model.ErrImageInUse)
		default:
			return fmt.Errorf("delete image %s: %w", id, err)
		}
	}
	return nil
}

// normalizeContainerErr maps the daemon error classes callers act on to
// domain sentinels and wraps the rest as faults.
func normalizeContainerErr(op, id string, err error) error {
	switch {
	case errdefs.IsNotFound(err):
		return fmt.Errorf("%s container %s: %w", op, id, model.ErrWorkloadNotFound)
	case errdefs.IsConflict(err):
		return fmt.Errorf("%s container %s: %w", op, id, model.ErrWorkloadInUse)
	default:
		return fmt.Errorf("%s container %s: %w", op, id, err)
	}
}

// toContainerSummary maps an SDK container summary to the domain view.
// The daemon prefixes names with "/", which the API strips.
func toContainerSummary(ctr container.Summary) model.Container {
	var name string
	if len(ctr.Names) > 0 {
		name = strings.TrimPrefix(ctr.Names[0], "/")
	}

	ports := make([]model.Port, 0, len(ctr.Ports))
	for _, p := range ctr.Ports {
		ports = append(ports, model.Port{
			IP:          p.IP,
			PrivatePort: p.PrivatePort,
			PublicPort:  p.PublicPort,
			Type:        p.Type,
		})
	}

	return model.Container{
		ID:      ctr.ID,
		Name:    name,
		Image:   ctr.Image,
		Command: ctr.Command,
		State:   ctr.State,
		Created: time.Unix(ctr.Created, 0).UTC(),
		Ports:   ports,
	}
}

// toImageSummary maps an SDK image summary to the domain view.
func toImageSummary(img image.Summary) model.Image {
	tags := img.RepoTags
	if tags == nil {
		tags = []string{}
	}

	return model.Image{
		ID:      img.ID,
		Tags:    tags,
		Size:    img.Size,
		Created: time.Unix(img.Created, 0).UTC(),
	}
}

package docker

import (
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/stretchr/testify/assert"
)

func TestToContainerSummary(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	ctr := container.Summary{
		ID:      "abc123",
		Names:   []string{"/web", "/alias"},
		Image:   "nginx:latest",
		Command: "nginx -g 'daemon off;'",
		State:   "running",
		Created: created.Unix(),
		Ports: []container.Port{
			{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
		},
	}

	got := toContainerSummary(ctr)

	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "web", got.Name, "leading slash must be stripped")
	assert.Equal(t, "nginx:latest", got.Image)
	assert.Equal(t, "running", got.State)
	assert.Equal(t, created, got.Created)
	assert.Len(t, got.Ports, 1)
	assert.Equal(t, uint16(8080), got.Ports[0].PublicPort)
}

func TestToContainerSummaryNoNames(t *testing.T) {
	got := toContainerSummary(container.Summary{ID: "abc123"})
	assert.Equal(t, "", got.Name)
	assert.Empty(t, got.Ports)
}

func TestToImageSummary(t *testing.T) {
	img := image.Summary{
		ID:       "sha256:deadbeef",
		RepoTags: []string{"nginx:latest"},
		Size:     142_000_000,
		Created:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).Unix(),
	}

	got := toImageSummary(img)

	assert.Equal(t, "sha256:deadbeef", got.ID)
	assert.Equal(t, []string{"nginx:latest"}, got.Tags)
	assert.Equal(t, int64(142_000_000), got.Size)
}

func TestToImageSummaryUntagged(t *testing.T) {
	got := toImageSummary(image.Summary{ID: "sha256:deadbeef"})
	assert.NotNil(t, got.Tags, "tags must serialize as an empty list, not null")
	assert.Empty(t, got.Tags)
}

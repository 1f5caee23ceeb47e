package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// CredentialsRequest is the JSON body for the setup and token endpoints.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetupResponse is returned on successful first-time credential setup.
type SetupResponse struct {
	Status string `json:"status"`
}

// TokenResponse carries a freshly issued opaque bearer token. This is the
// only place the plaintext token ever appears.
type TokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse reports the outcome of a container or image mutation.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ContainerResponse is the JSON representation of a container summary.
type ContainerResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Image   string         `json:"image"`
	Command string         `json:"command"`
	State   string         `json:"state"`
	Created string         `json:"created"`
	Ports   []PortResponse `json:"ports"`
}

// PortResponse is a single published or exposed container port.
type PortResponse struct {
	IP          string `json:"ip,omitempty"`
	PrivatePort uint16 `json:"private_port"`
	PublicPort  uint16 `json:"public_port,omitempty"`
	Type        string `json:"type"`
}

// ImageResponse is the JSON representation of an image summary.
type ImageResponse struct {
	ID      string   `json:"id"`
	Tags    []string `json:"tags"`
	Size    int64    `json:"size"`
	Created string   `json:"created"`
}

// SystemInfoResponse is the JSON representation of the daemon state.
type SystemInfoResponse struct {
	Name              string `json:"name"`
	ServerVersion     string `json:"server_version"`
	OperatingSystem   string `json:"operating_system"`
	Architecture      string `json:"architecture"`
	Containers        int    `json:"containers"`
	ContainersRunning int    `json:"containers_running"`
	ContainersPaused  int    `json:"containers_paused"`
	ContainersStopped int    `json:"containers_stopped"`
	Images            int    `json:"images"`
}

// toContainerResponse converts a domain Container to its JSON representation.
func toContainerResponse(c model.Container) ContainerResponse {
	ports := make([]PortResponse, 0, len(c.Ports))
	for _, p := range c.Ports {
		ports = append(ports, PortResponse{
			IP:          p.IP,
			PrivatePort: p.PrivatePort,
			PublicPort:  p.PublicPort,
			Type:        p.Type,
		})
	}

	return ContainerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Image:   c.Image,
		Command: c.Command,
		State:   c.State,
		Created: c.Created.UTC().Format(time.RFC3339),
		Ports:   ports,
	}
}

// toImageResponse converts a domain Image to its JSON representation.
func toImageResponse(img model.Image) ImageResponse {
	tags := img.Tags
	if tags == nil {
		tags = []string{}
	}

	return ImageResponse{
		ID:      img.ID,
		Tags:    tags,
		Size:    img.Size,
		Created: img.Created.UTC().Format(time.RFC3339),
	}
}

// toSystemInfoResponse converts the daemon state to its JSON representation.
func toSystemInfoResponse(info model.SystemInfo) SystemInfoResponse {
	return SystemInfoResponse{
		Name:              info.Name,
		ServerVersion:     info.ServerVersion,
		OperatingSystem:   info.OperatingSystem,
		Architecture:      info.Architecture,
		Containers:        info.Containers,
		ContainersRunning: info.ContainersRunning,
		ContainersPaused:  info.ContainersPaused,
		ContainersStopped: info.ContainersStopped,
		Images:            info.Images,
	}
}

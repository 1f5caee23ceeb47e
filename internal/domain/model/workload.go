package model

import "time"

// Container is the summary view of a container exposed by the API.
// Name has the leading "/" stripped from the daemon's representation.
type Container struct {
	ID      string
	Name    string
	Image   string
	Command string
	State   string
	Created time.Time
	Ports   []Port
}

// Port describes a single published or exposed container port.
type Port struct {
	IP          string
	PrivatePort uint16
	PublicPort  uint16
	Type        string
}

// Image is the summary view of a stored image.
type Image struct {
	ID      string
	Tags    []string
	Size    int64
	Created time.Time
}

// SystemInfo is a condensed view of the container daemon state.
type SystemInfo struct {
	Name              string
	ServerVersion     string
	OperatingSystem   string
	Architecture      string
	Containers        int
	ContainersRunning int
	ContainersPaused  int
	ContainersStopped int
	Images            int
}

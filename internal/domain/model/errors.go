package model

import "errors"

// Sentinel errors for workload operations. The docker adapter normalizes
// daemon error classes into these so handlers can map them to status codes
// without importing the SDK; everything else is treated as a fault.
var (
	ErrWorkloadNotFound = errors.New("container not found")
	ErrWorkloadInUse    = errors.New("container is running")
	ErrImageNotFound    = errors.New("image not found")
	ErrImageInUse       = errors.New("image is in use by a container")
)

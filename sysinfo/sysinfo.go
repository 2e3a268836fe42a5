package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"actions_lab/models"
	"actions_lab/utils"
)

// ErrEnvironmentUnavailable is returned when the host cannot report runtime or clock information
var ErrEnvironmentUnavailable = errors.New("environment unavailable")

// Collector gathers host and runtime facts
type Collector struct {
	Version      func() string
	Platform     func() string
	Now          func() time.Time
	Architecture func() string
	Hostname     func() (string, error)
}

// NewCollector creates a Collector backed by the Go runtime and the wall clock
func NewCollector() *Collector {
	return &Collector{
		Version:  runtimeVersion,
		Platform: func() string { return runtime.GOOS },
		Now:      time.Now,

		Architecture: func() string { return runtime.GOARCH },
		Hostname:     os.Hostname,
	}
}

// Capture takes a snapshot of the current runtime environment
func (c *Collector) Capture(ctx context.Context) (models.Snapshot, error) {
	runID := utils.RunID(ctx)

	version := c.Version()
	if version == "" {
		return models.Snapshot{}, unavailable(runID, models.KeyInterpreterVersion)
	}

	platform := c.Platform()
	if platform == "" {
		return models.Snapshot{}, unavailable(runID, models.KeyPlatform)
	}

	now := c.Now()
	if now.IsZero() {
		return models.Snapshot{}, unavailable(runID, models.KeyTimestamp)
	}

	snapshot := models.Snapshot{
		InterpreterVersion: version,
		Platform:           platform,
		Timestamp:          now.Format(time.RFC3339Nano),
	}

	log.Debug().
		Str("run_id", runID).
		Str("interpreter_version", snapshot.InterpreterVersion).
		Str("platform", snapshot.Platform).
		Str("timestamp", snapshot.Timestamp).
		Msg("System snapshot captured")

	return snapshot, nil
}

// CaptureHost reports the architecture and hostname of the current machine
func (c *Collector) CaptureHost(ctx context.Context) (models.HostInfo, error) {
	runID := utils.RunID(ctx)

	arch := c.Architecture()
	if arch == "" {
		return models.HostInfo{}, unavailable(runID, models.FieldArchitecture)
	}

	hostname, err := c.Hostname()
	if err != nil {
		log.Debug().
			Str("run_id", runID).
			Err(err).
			Msg("Hostname lookup failed")
		return models.HostInfo{}, fmt.Errorf("%w: no value for %s: %v", ErrEnvironmentUnavailable, models.FieldHostname, err)
	}
	if hostname == "" {
		return models.HostInfo{}, unavailable(runID, models.FieldHostname)
	}

	log.Debug().
		Str("run_id", runID).
		Str("architecture", arch).
		Str("hostname", hostname).
		Msg("Host info captured")

	return models.HostInfo{Architecture: arch, Hostname: hostname}, nil
}

// runtimeVersion reports the toolchain version followed by the target, e.g. "go1.23.1 linux/amd64"
func runtimeVersion() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func unavailable(runID, field string) error {
	log.Debug().
		Str("run_id", runID).
		Str("field", field).
		Msg("Host did not report a value")
	return fmt.Errorf("%w: no value for %s", ErrEnvironmentUnavailable, field)
}

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/multierr"

	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
)

// Snapshot holds point-in-time host utilization percentages.
type Snapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

// Provider supplies host metrics. Handlers depend on this interface so
// tests can substitute stub or failing providers.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// HostProvider probes the local host via gopsutil.
type HostProvider struct {
	// DiskPath is the mount point sampled for disk usage. Defaults to "/".
	DiskPath string
}

func NewHostProvider() *HostProvider {
	return &HostProvider{DiskPath: "/"}
}

func (p *HostProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var errs error

	if percents, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = multierr.Append(errs, err)
	} else if len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		snap.MemoryPercent = vm.UsedPercent
	}

	path := p.DiskPath
	if path == "" {
		path = "/"
	}
	if usage, err := disk.UsageWithContext(ctx, path); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		snap.DiskPercent = usage.UsedPercent
	}

	if errs != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "probing system metrics")
	}
	return snap, nil
}

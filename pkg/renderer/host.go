package renderer

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine a render runs on
type HostInfo struct {
	CPUModel    string
	LogicalCPUs int
	TotalMemory uint64 // Bytes
}

// String formats the host for the render log
func (h HostInfo) String() string {
	model := h.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	return fmt.Sprintf("%s, %d logical CPUs, %.1f GiB RAM", model, h.LogicalCPUs, float64(h.TotalMemory)/(1<<30))
}

// GetHostInfo queries the CPU model, logical CPU count and total memory
func GetHostInfo() (HostInfo, error) {
	var info HostInfo

	count, err := cpuCount()
	if err != nil {
		return info, err
	}
	info.LogicalCPUs = count

	cpuInfo, err := cpu.Info()
	if err != nil {
		return info, fmt.Errorf("failed to query CPU info: %w", err)
	}
	if len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return info, fmt.Errorf("failed to query memory: %w", err)
	}
	info.TotalMemory = memInfo.Total

	return info, nil
}

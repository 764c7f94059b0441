package overlay

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SysInfo is the host summary printed to the console when the overlay
// first attaches to a window.
type SysInfo struct {
	CPUName   string
	TotalRAM  uint64 // MiB
	OSVersion string
}

// CollectSysInfo gathers what it can and leaves the rest at its zero
// value; a probe failure must never take the host process down.
func CollectSysInfo() SysInfo {
	var info SysInfo
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUName = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalRAM = vm.Total / (1 << 20)
	}
	if hi, err := host.Info(); err == nil {
		info.OSVersion = fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
	}
	return info
}

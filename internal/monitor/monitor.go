package monitor

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"MouseInfo/internal/entity"
)

// Sampler 采集一次本进程的资源占用
type Sampler interface {
	Sample() (entity.ResourceSample, error)
}

// ProcessSampler 用 gopsutil 读当前进程的 CPU 和常驻内存
type ProcessSampler struct {
	proc   *process.Process
	window time.Duration
}

// NewProcessSampler 绑定到当前进程
// window 为 0 时 CPU 用上次调用到这次调用之间的差值，不阻塞；
// 大于 0 时会在调用线程上阻塞 window 这么久去测量 (会让那一个 tick 变慢，可以接受)
func NewProcessSampler(window time.Duration) (*ProcessSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("opening own process: %w", err)
	}
	s := &ProcessSampler{proc: p, window: window}
	if window == 0 {
		// 先调一次，让第一次真正采样就有差值可算
		_, _ = p.Percent(0)
	}
	return s, nil
}

// Sample 读一次 CPU% 和 RSS(MB)
func (s *ProcessSampler) Sample() (entity.ResourceSample, error) {
	cpu, err := s.proc.Percent(s.window)
	if err != nil {
		return entity.ResourceSample{}, fmt.Errorf("cpu percent: %w", err)
	}
	mem, err := s.proc.MemoryInfo()
	if err != nil {
		return entity.ResourceSample{}, fmt.Errorf("memory info: %w", err)
	}
	return entity.ResourceSample{
		CPUPercent: cpu,
		MemoryMB:   float64(mem.RSS) / (1024 * 1024),
	}, nil
}

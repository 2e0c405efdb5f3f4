package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"

	"github.com/aerotools/catalogd/pkg/metrics"
	"go.uber.org/zap"
)

// Audit entries older than this are pruned by the daily job.
const auditRetention = 90 * 24 * time.Hour

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	if a.appConfig.Backup.Enabled {
		interval := a.appConfig.Backup.Interval
		if interval == "" {
			interval = "@hourly"
		}
		_, err = a.sched.AddFunc(interval, func() {
			if err := a.RunBackupNow(); err != nil {
				zap.S().Errorf("catalog backup failed %s", err.Error())
			}
		})
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	_, err = a.sched.AddFunc("@daily", func() {
		if a.auditLog == nil {
			return
		}
		if err := a.auditLog.Prune(auditRetention); err != nil {
			zap.S().Errorf("audit prune failed %s", err.Error())
		}
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	// Collect CPU usage
	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge(metrics.SystemCPUUse, int64(_cpuuse[0]*100)) // Store as percentage * 100
	}

	// Collect memory usage
	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge(metrics.SystemMemUse, int64(_meminfo.Used/1024/1024))
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	// Collect process CPU usage
	cpuuse, err := p.CPUPercent()
	if err == nil {
		metrics.SetGauge("catalogd_cpuuse", int64(cpuuse*100)) // Store as percentage * 100
	}

	// Collect process memory usage
	meminfo, err := p.MemoryInfo()
	if err == nil {
		metrics.SetGauge("catalogd_memuse", int64(meminfo.RSS/1024/1024))
	}
}

// RunBackupNow writes a timestamped catalog snapshot under the workdir
// and drops the oldest snapshots beyond the configured keep count.
func (a *Application) RunBackupNow() error {
	data, err := a.engine.Export()
	if err != nil {
		return err
	}

	dir := filepath.Join(a.appConfig.System.Workdir, "backup")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create backup dir")
	}

	name := fmt.Sprintf("catalog-%s.json", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return errors.Wrap(err, "write backup")
	}
	zap.L().Info("catalog backup written", zap.String("file", name))

	return a.pruneBackups(dir)
}

func (a *Application) pruneBackups(dir string) error {
	keep := a.appConfig.Backup.Keep
	if keep <= 0 {
		keep = 24
	}

	names, err := filepath.Glob(filepath.Join(dir, "catalog-*.json"))
	if err != nil {
		return err
	}
	if len(names) <= keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(name); err != nil {
			zap.S().Warnf("backup prune failed %s", err.Error())
		}
	}
	return nil
}

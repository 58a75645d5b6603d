//go:build windows

package imgapp

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

var procSetProcessDpiAwarenessContext = windows.NewLazySystemDLL("user32.dll").NewProc("SetProcessDpiAwarenessContext")

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2, i.e. (HANDLE)-4.
const dpiAwarenessContextPerMonitorAwareV2 = ^uintptr(3)

// enableDPIAwareness opts the process into per-monitor DPI awareness (v2).
// Windows 10 before 1703 lacks the call and the process stays DPI unaware.
func enableDPIAwareness(logger *slog.Logger) {
	if err := procSetProcessDpiAwarenessContext.Find(); err != nil {
		logger.Debug("per-monitor DPI awareness unavailable", "err", err)
		return
	}
	if ok, _, err := procSetProcessDpiAwarenessContext.Call(dpiAwarenessContextPerMonitorAwareV2); ok == 0 {
		logger.Debug("per-monitor DPI awareness not enabled", "err", err)
	}
}

//go:build !windows

package imgapp

import "log/slog"

func enableDPIAwareness(*slog.Logger) {}

package service

import (
	"os"
	"time"

	"nrt-dosing/domain"
)

// Version is overridden at build time with -ldflags "-X nrt-dosing/service.Version=...".
var Version = "v.002"

const lastUpdatedLayout = "2006.01.02"

// CurrentVersion reports the build version and the date the running binary
// was last modified, falling back to now when the binary cannot be stat'ed.
func CurrentVersion(now time.Time) domain.VersionInfo {
	return domain.VersionInfo{
		Version:     Version,
		LastUpdated: lastUpdated(now).Format(lastUpdatedLayout),
	}
}

func lastUpdated(fallback time.Time) time.Time {
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	info, err := os.Stat(exe)
	if err != nil {
		return fallback
	}
	return info.ModTime()
}

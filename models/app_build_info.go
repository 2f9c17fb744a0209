// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoNotAvailable is shown for build fields the linker left empty.
const BuildInfoNotAvailable = "N/A"

// shortCommitLen is how much of the commit hash the version output shows.
const shortCommitLen = 12

// AppBuildInfo is the release metadata linked into the qr-facil binaries
// with -ldflags "-X main.buildVersion=...". Empty values are allowed: local
// builds carry none of them.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo trims the linked values and wraps them.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the linked version, "" for local builds.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the linked build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the linked commit hash.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Lines renders the metadata for the version command and the about screen.
// Missing values read [BuildInfoNotAvailable]; the commit is shortened.
func (a AppBuildInfo) Lines() []string {
	commit := a.buildCommit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}

	return []string{
		"Version: " + orNotAvailable(a.buildVersion),
		"Date: " + orNotAvailable(a.buildDate),
		"Commit: " + orNotAvailable(commit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return BuildInfoNotAvailable
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// binary by linker flags. Missing values read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// Response renders the build info as the body of GET /version.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		Version: a.BuildVersion(),
		Date:    a.BuildDate(),
		Commit:  a.BuildCommit(),
	}
}

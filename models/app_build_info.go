// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during CI/CD and printed on startup
// by both binaries for release traceability.
type AppBuildInfo struct {
	// BuildVersion is the semantic version string of the build.
	BuildVersion string `json:"version"`

	// BuildDate is the build timestamp string.
	BuildDate string `json:"build_date"`

	// BuildCommit is the source-control commit hash used for the build.
	BuildCommit string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are normalized to "N/A" so logs and responses never show
// blank fields for local builds.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: orNA(buildVersion),
		BuildDate:    orNA(buildDate),
		BuildCommit:  orNA(buildCommit),
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/noiriko/create-noiriko/internal/project"
)

// Pinned package manager releases written to the root packageManager field.
// Yarn stays on classic for workspace compatibility.
var pinnedVersions = map[project.PackageManager]*semver.Version{
	project.PackageManagerPNPM: semver.MustParse("10.4.1"),
	project.PackageManagerNPM:  semver.MustParse("10.8.2"),
	project.PackageManagerYarn: semver.MustParse("1.22.22"),
	project.PackageManagerBun:  semver.MustParse("1.1.38"),
}

// PinnedVersion returns the pinned release for a package manager, falling
// back to the pnpm pin for unrecognized values.
func PinnedVersion(pm project.PackageManager) *semver.Version {
	if v, ok := pinnedVersions[pm]; ok {
		return v
	}
	return pinnedVersions[project.PackageManagerPNPM]
}

// PackageManagerField returns the packageManager value, e.g. "pnpm@10.4.1".
func PackageManagerField(pm project.PackageManager) string {
	name := pm
	if _, ok := pinnedVersions[pm]; !ok {
		name = project.PackageManagerPNPM
	}
	return fmt.Sprintf("%s@%s", name, PinnedVersion(pm))
}

// WorkspaceRef returns the dependency specifier for a sibling workspace
// package. npm and yarn classic only understand "*".
func WorkspaceRef(pm project.PackageManager) string {
	if pm == project.PackageManagerNPM || pm == project.PackageManagerYarn {
		return "*"
	}
	return "workspace:*"
}

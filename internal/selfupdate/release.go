package selfupdate

import (
	"bufio"
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

// Platform is an OS/architecture pair that releases are built for.
type Platform struct {
	OS   string
	Arch string
}

// HostPlatform is the platform of the running binary.
func HostPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

var releasedPlatforms = map[Platform]bool{
	{"darwin", "amd64"}:  true,
	{"darwin", "arm64"}:  true,
	{"linux", "amd64"}:   true,
	{"linux", "arm64"}:   true,
	{"windows", "amd64"}: true,
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// Supported reports whether releases ship a build for p.
func (p Platform) Supported() bool {
	return releasedPlatforms[p]
}

// executable is the file name of the binary inside p's archive.
func (p Platform) executable() string {
	if p.OS == "windows" {
		return binaryName + ".exe"
	}
	return binaryName
}

// Asset returns the archive name published for p in the release tagged tag,
// e.g. mathquest_1.4.0_linux_arm64.tar.gz.
func (p Platform) Asset(tag string) (string, error) {
	if !p.Supported() {
		return "", fmt.Errorf("no release build for %s", p)
	}
	ext := ".tar.gz"
	if p.OS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s_%s%s", binaryName, releaseVersion(tag), p.OS, p.Arch, ext), nil
}

// checksumsAsset is the sha256 manifest published alongside every release.
func checksumsAsset(tag string) string {
	return fmt.Sprintf("%s_%s_checksums.txt", binaryName, releaseVersion(tag))
}

// releaseVersion strips the tag's "v" prefix; archives are named without it.
func releaseVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// lookupChecksum finds the hex digest for asset in a "<sha256>  <name>"
// manifest. A leading "*" on the name (binary mode) is ignored.
func lookupChecksum(manifest []byte, asset string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(manifest))
	for sc.Scan() {
		digest, name, ok := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		if !ok {
			continue
		}
		if strings.TrimPrefix(strings.TrimSpace(name), "*") == asset {
			return strings.ToLower(digest), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read checksums: %w", err)
	}
	return "", fmt.Errorf("no checksum listed for %s", asset)
}

package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// binaryName prefixes every release asset and names the executable inside.
const binaryName = "mathquest"

// Stage names a step of Update, in the order they run.
type Stage string

const (
	StageResolve  Stage = "resolve"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

type UpdateInput struct {
	// CurrentVersion is the running build; "(devel)" cannot be updated.
	CurrentVersion string

	// TargetVersion pins a release tag. Empty means the latest release.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// Update installs a release over the running executable. The archive is
// checked against the release's checksum manifest before anything on disk
// changes. progress, when non-nil, sees every stage.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if progress == nil {
		progress = func(UpdateProgress) {}
	}
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	progress(UpdateProgress{Stage: StageResolve, Message: "Resolving release..."})
	tag, err := c.resolveTag(ctx, input)
	if err != nil {
		return err
	}

	platform := c.platform
	asset, err := platform.Asset(tag)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: StageDownload, Message: fmt.Sprintf("Downloading %s...", asset)})
	archive, err := c.fetchAsset(ctx, tag, asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: StageVerify, Message: "Verifying checksum..."})
	manifest, err := c.fetchAsset(ctx, tag, checksumsAsset(tag))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	digest, err := lookupChecksum(manifest, asset)
	if err != nil {
		return err
	}
	if err := verifyDigest(archive, digest); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: StageInstall, Message: "Installing..."})
	binary, err := unpack(archive, asset, platform.executable())
	if err != nil {
		return fmt.Errorf("unpack %s: %w", asset, err)
	}
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceExecutable(target, binary); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: StageDone, Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// resolveTag returns the pinned target or, when none is given, the latest
// release newer than the running version.
func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput) (string, error) {
	if input.TargetVersion != "" {
		v := canonical(input.TargetVersion)
		if v == "" {
			return "", fmt.Errorf("target version %q is not a semantic version", input.TargetVersion)
		}
		return v, nil
	}

	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

func (c *Checker) fetchAsset(ctx context.Context, tag, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBinarySize))
}

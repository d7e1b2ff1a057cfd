// Package updater implements self-update from GitHub release assets.
package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/antoniofonseca/keepactive-msteams/internal/buildinfo"
)

// releasesURL is a var so tests can point the check at a local server.
var releasesURL = "https://api.github.com/repos/antoniofonseca/keepactive-msteams/releases/latest"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// ReleaseInfo is the subset of the GitHub release payload the updater reads.
type ReleaseInfo struct {
	TagName string  `json:"tag_name"`
	HTMLURL string  `json:"html_url"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// UpdateResult describes how the running build compares to the latest release.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	Release        *ReleaseInfo
}

// CheckForUpdate fetches the latest release and compares it to the running
// build. A repository with no releases yet reports up to date.
func CheckForUpdate() (*UpdateResult, error) {
	release, err := fetchLatestRelease()
	if err != nil {
		return nil, err
	}
	if release == nil {
		return &UpdateResult{CurrentVersion: buildinfo.Version}, nil
	}

	result := &UpdateResult{
		CurrentVersion: buildinfo.Version,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		ReleaseURL:     release.HTMLURL,
		Release:        release,
	}

	latest, err := ParseSemver(result.LatestVersion)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", result.LatestVersion, err)
	}
	current, err := ParseSemver(buildinfo.Version)
	if err != nil {
		// Dev builds carry no comparable version; any release is newer.
		result.Available = true
		return result, nil
	}

	result.Available = current.LessThan(latest)
	return result, nil
}

// fetchLatestRelease returns nil without error when the repository has no
// published release.
func fetchLatestRelease() (*ReleaseInfo, error) {
	req, err := http.NewRequest(http.MethodGet, releasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "keepactive/"+buildinfo.Version)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return &release, nil
}

// AssetName returns the release asset name built for this platform.
func AssetName() string {
	return fmt.Sprintf("keepactive-%s-%s", runtime.GOOS, runtime.GOARCH)
}

// FindAsset returns the named asset, or nil if the release does not carry it.
func FindAsset(release *ReleaseInfo, name string) *Asset {
	for i := range release.Assets {
		if release.Assets[i].Name == name {
			return &release.Assets[i]
		}
	}
	return nil
}

// DownloadAsset streams an asset into a hidden temp file under dir and marks
// it executable. Placing it in the install directory keeps the later rename
// on one filesystem.
func DownloadAsset(asset *Asset, dir string) (string, error) {
	resp, err := httpClient.Get(asset.BrowserDownloadURL)
	if err != nil {
		return "", fmt.Errorf("download asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, ".keepactive-update-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, err = io.Copy(tmp, resp.Body)
	tmp.Close()
	if err == nil {
		err = os.Chmod(tmp.Name(), 0755)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	return tmp.Name(), nil
}

// ReplaceBinary swaps the binary at destPath for the one at newPath, keeping
// a .bak alongside to roll back to if the install rename fails.
func ReplaceBinary(destPath, newPath string) error {
	destPath, err := filepath.EvalSymlinks(destPath)
	if err != nil {
		return fmt.Errorf("resolve symlink: %w", err)
	}

	bakPath := destPath + ".bak"
	os.Remove(bakPath)

	if err := os.Rename(destPath, bakPath); err != nil {
		return fmt.Errorf("backup old binary: %w", err)
	}
	if err := os.Rename(newPath, destPath); err != nil {
		_ = os.Rename(bakPath, destPath)
		return fmt.Errorf("install new binary: %w", err)
	}

	os.Remove(bakPath)
	return nil
}

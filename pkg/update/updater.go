package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/version"
)

const (
	// GitHub repository for releases
	GitHubOwner = "kcaldas"
	GitHubRepo  = "shellfolio"

	checksumFile = "checksums.txt"
)

// ErrNoRelease is returned when the repository has no published release.
var ErrNoRelease = errors.New("no releases found")

// UpdateInfo contains information about an available update
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseNotes   string
	ReleaseURL     string
	UpdateNeeded   bool
}

// NeedsUpdate compares the running version with the latest release.
// Development builds and versions that are not semver always need an update.
func NeedsUpdate(current, latest string) (bool, error) {
	latestSemver, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("invalid latest version %s: %w", latest, err)
	}
	if version.IsDev(current) {
		return true, nil
	}
	currentSemver, err := semver.NewVersion(current)
	if err != nil {
		return true, nil
	}
	return latestSemver.GreaterThan(currentSemver), nil
}

// Updater replaces the running binary with the latest GitHub release.
type Updater struct {
	updater    *selfupdate.Updater
	repository selfupdate.Repository
	current    string
	logger     logging.Logger
}

// NewUpdater creates an updater for the shellfolio repository.
func NewUpdater() (*Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: checksumFile},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		updater:    updater,
		repository: selfupdate.NewRepositorySlug(GitHubOwner, GitHubRepo),
		current:    version.GetVersion(),
		logger:     logging.NewComponentLogger("update"),
	}, nil
}

func (u *Updater) detectLatest(ctx context.Context) (*selfupdate.Release, error) {
	latest, found, err := u.updater.DetectLatest(ctx, u.repository)
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return nil, ErrNoRelease
	}
	return latest, nil
}

func (u *Updater) info(latest *selfupdate.Release) (*UpdateInfo, error) {
	needed, err := NeedsUpdate(u.current, latest.Version())
	if err != nil {
		return nil, err
	}
	return &UpdateInfo{
		CurrentVersion: u.current,
		LatestVersion:  latest.Version(),
		ReleaseNotes:   latest.ReleaseNotes,
		ReleaseURL:     latest.URL,
		UpdateNeeded:   needed,
	}, nil
}

// CheckForUpdates checks if there's a newer version available
func (u *Updater) CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	latest, err := u.detectLatest(ctx)
	if err != nil {
		return nil, err
	}
	return u.info(latest)
}

// UpdateOptions contains options for update operations
type UpdateOptions struct {
	Force   bool          // update even if no newer version exists
	Timeout time.Duration // zero means no timeout
}

// Update installs the latest release over the running executable when it is
// newer, or always when Force is set.
func (u *Updater) Update(ctx context.Context, opts UpdateOptions) (*UpdateInfo, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	latest, err := u.detectLatest(ctx)
	if err != nil {
		return nil, err
	}
	info, err := u.info(latest)
	if err != nil {
		return nil, err
	}
	if !info.UpdateNeeded && !opts.Force {
		u.logger.Debug("already up to date", "version", info.CurrentVersion)
		return info, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return info, fmt.Errorf("could not locate executable path: %w", err)
	}

	u.logger.Info("updating", "from", info.CurrentVersion, "to", info.LatestVersion, "path", exe)
	if err := u.updater.UpdateTo(ctx, latest, exe); err != nil {
		return info, fmt.Errorf("update to %s failed: %w", info.LatestVersion, err)
	}
	return info, nil
}

package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/version"
)

// VersionBumperBuilder maintains a product version descriptor file. It is
// the one builder that edits its target in-process; the only external call
// is to git, to record the current revision in the version metadata.
type VersionBumperBuilder struct {
	base
	cfg VersionBumperConfig
}

// Build updates the target version file, creating it if it does not exist.
// Each override accepts a literal number or "+" to bump the current value.
func (b *VersionBumperBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing version number build",
		"component", b.component, "name", b.name)

	target, err := filepath.Abs(b.cfg.TargetFile)
	if err != nil {
		return err
	}

	var v *version.ProductVersion

	if _, statErr := os.Stat(target); statErr == nil {
		v, err = version.LoadProductVersion(target)
		if err != nil {
			return errors.NewIOError("versionbumper_load", "failed to load version file", err)
		}
	} else {
		v = &version.ProductVersion{}
	}

	if err := b.applyOverrides(v); err != nil {
		return err
	}

	v.Meta.SCM = b.commitHash(ctx)

	if b.cfg.Release != "" {
		v.Release = b.cfg.Release
	}
	if b.cfg.Codename != "" {
		v.Meta.Codename = b.cfg.Codename
	}
	switch b.cfg.Build {
	case "":
	case "+":
		v.Meta.Build = bumpBuildNumber(v.Meta.Build)
	default:
		v.Meta.Build = b.cfg.Build
	}

	if err := v.Save(target); err != nil {
		return errors.NewIOError("versionbumper_save", "failed to save version file", err)
	}

	return nil
}

func (b *VersionBumperBuilder) applyOverrides(v *version.ProductVersion) error {
	if err := applyComponent("major", b.cfg.Major, &v.Major, v.BumpMajor); err != nil {
		return err
	}
	if err := applyComponent("minor", b.cfg.Minor, &v.Minor, v.BumpMinor); err != nil {
		return err
	}
	if err := applyComponent("patch", b.cfg.Patch, &v.Patch, v.BumpPatch); err != nil {
		return err
	}
	return nil
}

func applyComponent(name, override string, field *int, bump func()) error {
	switch override {
	case "":
	case "+":
		bump()
	default:
		value, err := strconv.Atoi(override)
		if err != nil {
			return errors.NewConfigError("versionbumper_bad_override",
				fmt.Sprintf("invalid %s version override %q", name, override))
		}
		*field = value
	}
	return nil
}

// bumpBuildNumber increments a numeric build number. A missing or
// non-numeric value restarts the count at 1.
func bumpBuildNumber(current string) string {
	value, err := strconv.Atoi(current)
	if err != nil {
		return "1"
	}
	return strconv.Itoa(value + 1)
}

// commitHash retrieves the current git revision, or "UNKNOWN" when git is
// unavailable.
func (b *VersionBumperBuilder) commitHash(ctx context.Context) string {
	hash, err := b.runner.Output(ctx, ".", "git rev-parse HEAD")
	if err != nil {
		return "UNKNOWN"
	}
	return hash
}

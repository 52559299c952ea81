package version

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProductMeta holds the metadata block of a product version record.
type ProductMeta struct {
	Codename string `json:"codename,omitempty"`
	SCM      string `json:"scm,omitempty"`
	Build    string `json:"build,omitempty"`
}

// ProductVersion is the product version record stored in sde.conf and in
// per-product version descriptor files maintained by the version bumper.
type ProductVersion struct {
	Major   int         `json:"major"`
	Minor   int         `json:"minor"`
	Patch   int         `json:"patch"`
	Release string      `json:"release,omitempty"`
	Meta    ProductMeta `json:"meta,omitempty"`
}

// String formats the version for display, e.g. "0.1.0-internal (Fujin)".
func (v *ProductVersion) String() string {
	result := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Release != "" {
		result += "-" + v.Release
	}
	if v.Meta.Codename != "" {
		result += fmt.Sprintf(" (%s)", v.Meta.Codename)
	}
	return result
}

// BumpMajor increases the major version and resets minor and patch.
func (v *ProductVersion) BumpMajor() {
	v.Major++
	v.Minor = 0
	v.Patch = 0
}

// BumpMinor increases the minor version and resets patch.
func (v *ProductVersion) BumpMinor() {
	v.Minor++
	v.Patch = 0
}

// BumpPatch increases the patch level.
func (v *ProductVersion) BumpPatch() {
	v.Patch++
}

// LoadProductVersion reads a product version record from a JSON file.
func LoadProductVersion(path string) (*ProductVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read version file %s: %w", path, err)
	}

	var v ProductVersion
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse version file %s: %w", path, err)
	}

	return &v, nil
}

// Save writes the product version record to a JSON file.
func (v *ProductVersion) Save(path string) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write version file %s: %w", path, err)
	}

	return nil
}

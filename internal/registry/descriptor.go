// Package registry holds the in-memory component model of the SDE tool:
// the component descriptor parsed from a .component file, the registry
// mapping component IDs to descriptors, and the transitive dependency
// resolver used by the build executor.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/config"
	"github.com/suisei-entertainment/sde/internal/errors"
)

// UnknownName is the sentinel used when a component declares no name.
const UnknownName = "UNKNOWN"

// DefaultVerbosity is the unit test verbosity applied when the descriptor
// does not configure one.
const DefaultVerbosity = 1

// ComponentDescriptor is the parsed configuration of a single component.
// Descriptors are constructed once at load time and immutable afterwards.
type ComponentDescriptor struct {
	// ID is the unique component ID.
	ID string

	// Name is the human readable component name.
	Name string

	// UnitTestOutDir is where unit test reports are saved. Empty means
	// the component has no unit tests configured.
	UnitTestOutDir string

	// UnitTestLogFormat is the report format used in the output file.
	UnitTestLogFormat string

	// UnitTestDir is where the unit tests of the component live.
	UnitTestDir string

	// UnitTestVerbosity is the verbosity of the unit test executor.
	UnitTestVerbosity int

	// BuildType selects the external tool used to build the component.
	BuildType builder.Type

	// Dependencies lists the component IDs that must be built first, in
	// declaration order. Entries are only validated at resolution time.
	Dependencies []string

	// BuilderConfig is the builder configuration variant matching
	// BuildType, or nil when the component has no build step.
	BuilderConfig builder.Config

	// LinterDir is where the linter runs for this component.
	LinterDir string
}

// HasDependencies returns whether the component declares any build
// dependencies.
func (d *ComponentDescriptor) HasDependencies() bool {
	return len(d.Dependencies) > 0
}

// HasUnitTests returns whether the component has a unit test location
// configured.
func (d *ComponentDescriptor) HasUnitTests() bool {
	return d.UnitTestDir != ""
}

// rawDescriptor mirrors the on-disk shape of a .component file.
type rawDescriptor struct {
	ID           string           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	UnitTest     *rawUnitTest     `json:"unittest" yaml:"unittest"`
	Linter       *rawLinter       `json:"linter" yaml:"linter"`
	Dependencies []string         `json:"dependencies" yaml:"dependencies"`
	Build        *builder.Section `json:"build" yaml:"build"`
}

type rawUnitTest struct {
	OutDir    string `json:"outdir" yaml:"outdir"`
	LogFormat string `json:"logformat" yaml:"logformat"`
	TestDir   string `json:"testdir" yaml:"testdir"`
	Verbosity *int   `json:"verbosity" yaml:"verbosity"`
}

type rawLinter struct {
	LinterDir string `json:"linterdir" yaml:"linterdir"`
}

// ParseComponentFile reads and parses one component descriptor file.
// Files ending in .yaml or .yml are parsed as YAML, everything else as
// JSON.
func ParseComponentFile(path string) (*ComponentDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("descriptor_read",
			fmt.Sprintf("failed to read component descriptor %s", path), err)
	}

	var raw rawDescriptor

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}

	if err != nil {
		return nil, errors.NewConfigError("descriptor_parse",
			fmt.Sprintf("failed to parse component descriptor %s: %v", path, err))
	}

	return NewDescriptor(&raw)
}

// NewDescriptor builds a component descriptor from its raw record. A
// missing ID is a configuration error that rejects this one component;
// every other field falls back to its documented default.
func NewDescriptor(raw *rawDescriptor) (*ComponentDescriptor, error) {
	if raw.ID == "" {
		return nil, errors.NewConfigError("descriptor_no_id",
			"component ID was not found in descriptor")
	}

	desc := &ComponentDescriptor{
		ID:                raw.ID,
		Name:              UnknownName,
		UnitTestVerbosity: DefaultVerbosity,
		LinterDir:         "./",
		Dependencies:      raw.Dependencies,
	}

	if raw.Name != "" {
		desc.Name = raw.Name
	}

	if raw.UnitTest != nil {
		desc.UnitTestOutDir = config.ExpandPath(raw.UnitTest.OutDir)
		desc.UnitTestLogFormat = raw.UnitTest.LogFormat
		desc.UnitTestDir = config.ExpandPath(raw.UnitTest.TestDir)
		if raw.UnitTest.Verbosity != nil {
			desc.UnitTestVerbosity = *raw.UnitTest.Verbosity
		}
	}

	if raw.Linter != nil && raw.Linter.LinterDir != "" {
		desc.LinterDir = config.ExpandPath(raw.Linter.LinterDir)
	}

	buildType, builderConfig, err := builder.Load(raw.Build)
	if err != nil {
		return nil, err
	}

	desc.BuildType = buildType
	desc.BuilderConfig = builderConfig

	return desc, nil
}

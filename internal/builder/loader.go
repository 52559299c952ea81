package builder

import (
	"fmt"

	"github.com/suisei-entertainment/sde/internal/errors"
)

// Config is the marker interface implemented by every builder
// configuration variant. A descriptor carries at most one Config, and its
// variant always matches the descriptor's build type.
type Config interface {
	Type() Type
}

// CMakeConfig configures a CMake builder.
type CMakeConfig struct {
	Path string
}

func (c CMakeConfig) Type() Type { return TypeCMake }

// MakeConfig configures a Make builder.
type MakeConfig struct {
	Path   string
	Target string
}

func (c MakeConfig) Type() Type { return TypeMake }

// ProtobufConfig configures a Protocol Buffers builder.
type ProtobufConfig struct {
	SourcePath string
	TargetPath string
}

func (c ProtobufConfig) Type() Type { return TypeProtobuf }

// SphinxConfig configures a Sphinx documentation builder.
type SphinxConfig struct {
	Target     string
	SourcePath string
	TargetPath string
}

func (c SphinxConfig) Type() Type { return TypeSphinx }

// ArtifactoryConfig configures an Artifactory retrieval builder.
type ArtifactoryConfig struct {
	Target string
}

func (c ArtifactoryConfig) Type() Type { return TypeArtifactory }

// PythonConfig configures a PyInstaller based Python builder.
type PythonConfig struct {
	Path   string
	Target string
}

func (c PythonConfig) Type() Type { return TypePython }

// DebConfig configures a Debian package builder.
type DebConfig struct {
	Path string
}

func (c DebConfig) Type() Type { return TypeDeb }

// DockerConfig configures a Dockerfile based builder.
type DockerConfig struct {
	Path string
}

func (c DockerConfig) Type() Type { return TypeDocker }

// Stage is one resolved stage of a multistage build.
type Stage struct {
	BuildType Type
	Config    Config
}

// MultistageConfig configures a builder with multiple build stages.
type MultistageConfig struct {
	Stages []Stage
}

func (c MultistageConfig) Type() Type { return TypeMultistage }

// ContentConfig configures a builder that moves files between locations.
type ContentConfig struct {
	SourcePath string
	TargetPath string
}

func (c ContentConfig) Type() Type { return TypeContent }

// VersionBumperConfig configures the version bumper. The version component
// overrides accept a literal number or "+" to bump the existing value.
type VersionBumperConfig struct {
	TargetFile string
	Major      string
	Minor      string
	Patch      string
	Build      string
	Release    string
	Codename   string
}

func (c VersionBumperConfig) Type() Type { return TypeVersionBumper }

// BashConfig configures a builder that executes a bash script.
type BashConfig struct {
	Path   string
	Script string
}

func (c BashConfig) Type() Type { return TypeBash }

// WheelConfig configures a Python wheel builder.
type WheelConfig struct {
	Path string
}

func (c WheelConfig) Type() Type { return TypeWheel }

// PipConfig configures a pip installation builder.
type PipConfig struct {
	Path string
}

func (c PipConfig) Type() Type { return TypePip }

// Load translates the build section of a component descriptor into the
// enumerated build type and the matching configuration variant.
//
// A nil section means the component has no build step: the type is
// TypeUnknown, no config is attached and no error is reported. An
// unrecognized type string or a recognized type with missing required
// fields is a configuration error.
func Load(section *Section) (Type, Config, error) {
	if section == nil {
		return TypeUnknown, nil, nil
	}

	buildType, err := ParseType(section.Type)
	if err != nil {
		return TypeUnknown, nil, err
	}

	path := section.Path
	if path == "" {
		path = "."
	}

	switch buildType {
	case TypeCMake:
		return buildType, CMakeConfig{Path: path}, nil

	case TypeMake:
		return buildType, MakeConfig{Path: path, Target: section.Target}, nil

	case TypeProtobuf:
		if section.SourcePath == "" || section.TargetPath == "" {
			return TypeUnknown, nil, missingField(buildType, "sourcepath/targetpath")
		}
		return buildType, ProtobufConfig{
			SourcePath: section.SourcePath,
			TargetPath: section.TargetPath,
		}, nil

	case TypeSphinx:
		if section.Target == "" || section.SourcePath == "" || section.TargetPath == "" {
			return TypeUnknown, nil, missingField(buildType, "target/sourcepath/targetpath")
		}
		return buildType, SphinxConfig{
			Target:     section.Target,
			SourcePath: section.SourcePath,
			TargetPath: section.TargetPath,
		}, nil

	case TypeArtifactory:
		return buildType, ArtifactoryConfig{Target: section.Target}, nil

	case TypePython:
		return buildType, PythonConfig{Path: path, Target: section.Target}, nil

	case TypeDeb:
		return buildType, DebConfig{Path: path}, nil

	case TypeDocker:
		return buildType, DockerConfig{Path: path}, nil

	case TypeMultistage:
		stages := make([]Stage, 0, len(section.Stages))
		for i := range section.Stages {
			stageType, stageConfig, err := Load(&section.Stages[i])
			if err != nil {
				return TypeUnknown, nil, err
			}
			if stageType == TypeUnknown {
				return TypeUnknown, nil, errors.NewConfigError("builder_bad_stage",
					fmt.Sprintf("multistage stage %d has no build type", i))
			}
			stages = append(stages, Stage{BuildType: stageType, Config: stageConfig})
		}
		return buildType, MultistageConfig{Stages: stages}, nil

	case TypeContent:
		if section.SourcePath == "" || section.TargetPath == "" {
			return TypeUnknown, nil, missingField(buildType, "sourcepath/targetpath")
		}
		return buildType, ContentConfig{
			SourcePath: section.SourcePath,
			TargetPath: section.TargetPath,
		}, nil

	case TypeVersionBumper:
		if section.TargetFile == "" {
			return TypeUnknown, nil, missingField(buildType, "targetfile")
		}
		return buildType, VersionBumperConfig{
			TargetFile: section.TargetFile,
			Major:      section.Major,
			Minor:      section.Minor,
			Patch:      section.Patch,
			Build:      section.Build,
			Release:    section.Release,
			Codename:   section.Codename,
		}, nil

	case TypeBash:
		if section.Script == "" {
			return TypeUnknown, nil, missingField(buildType, "script")
		}
		return buildType, BashConfig{Path: path, Script: section.Script}, nil

	case TypeWheel:
		return buildType, WheelConfig{Path: path}, nil

	case TypePip:
		return buildType, PipConfig{Path: path}, nil

	default:
		return TypeUnknown, nil, errors.NewInternalError("builder_unhandled_type",
			fmt.Sprintf("build type %s has no loader", buildType), nil)
	}
}

func missingField(buildType Type, fields string) error {
	return errors.NewConfigError("builder_missing_field",
		fmt.Sprintf("%s build configuration requires %s", buildType, fields))
}

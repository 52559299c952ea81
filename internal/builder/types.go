// Package builder defines the closed set of build types supported by the
// SDE tool, the per-type builder configuration variants, and the builders
// that invoke the matching external tool for a component.
package builder

import (
	"fmt"
	"strings"

	"github.com/suisei-entertainment/sde/internal/errors"
)

// Type is the enumerated tag selecting which external tool builds a
// component.
type Type int

const (
	// TypeUnknown marks a component without a build step.
	TypeUnknown Type = iota
	TypeCMake
	TypeMake
	TypeProtobuf
	TypeSphinx
	TypeArtifactory
	TypePython
	TypeDeb
	TypeDocker
	TypeMultistage
	TypeContent
	TypeVersionBumper
	TypeBash
	TypeWheel
	TypePip
)

// String returns the configuration name of the build type.
func (t Type) String() string {
	switch t {
	case TypeCMake:
		return "cmake"
	case TypeMake:
		return "make"
	case TypeProtobuf:
		return "protobuf"
	case TypeSphinx:
		return "sphinx"
	case TypeArtifactory:
		return "artifactory"
	case TypePython:
		return "python"
	case TypeDeb:
		return "deb"
	case TypeDocker:
		return "docker"
	case TypeMultistage:
		return "multistage"
	case TypeContent:
		return "content"
	case TypeVersionBumper:
		return "versionbumper"
	case TypeBash:
		return "bash"
	case TypeWheel:
		return "wheel"
	case TypePip:
		return "pip"
	default:
		return "unknown"
	}
}

// ParseType maps a declared build type string to its Type. Matching is
// case-insensitive. An unrecognized string is a configuration error.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "cmake":
		return TypeCMake, nil
	case "make":
		return TypeMake, nil
	case "protobuf":
		return TypeProtobuf, nil
	case "sphinx":
		return TypeSphinx, nil
	case "artifactory":
		return TypeArtifactory, nil
	case "python":
		return TypePython, nil
	case "deb":
		return TypeDeb, nil
	case "docker":
		return TypeDocker, nil
	case "multistage":
		return TypeMultistage, nil
	case "content":
		return TypeContent, nil
	case "versionbumper":
		return TypeVersionBumper, nil
	case "bash":
		return TypeBash, nil
	case "wheel":
		return TypeWheel, nil
	case "pip":
		return TypePip, nil
	default:
		return TypeUnknown, errors.NewConfigError("builder_bad_type",
			fmt.Sprintf("invalid build type %q was specified in the configuration file", s))
	}
}

package builder

import (
	"context"
	"fmt"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
)

// Builder is a one-shot invoker of an external tool for a specific build
// type. Build blocks until the external process exits; failures are
// reported once, never retried.
type Builder interface {
	Build(ctx context.Context) error
}

// base carries the state shared by every builder implementation.
type base struct {
	component string
	name      string
	runner    CommandRunner
	logger    logging.Logger
}

// New maps a build type to the matching builder instance for a component.
// The switch over the closed type enumeration is exhaustive; a TypeUnknown
// or a config variant that does not match the type is an internal error,
// since the loader guarantees both invariants at load time.
func New(buildType Type, component, name string, cfg Config, runner CommandRunner, logger logging.Logger) (Builder, error) {
	if cfg == nil || cfg.Type() != buildType {
		return nil, errors.NewInternalError("builder_config_mismatch",
			fmt.Sprintf("builder config does not match build type %s for component %s", buildType, component), nil)
	}

	b := base{component: component, name: name, runner: runner, logger: logger}

	switch buildType {
	case TypeCMake:
		return &CMakeBuilder{base: b, cfg: cfg.(CMakeConfig)}, nil
	case TypeMake:
		return &MakeBuilder{base: b, cfg: cfg.(MakeConfig)}, nil
	case TypeProtobuf:
		return &ProtobufBuilder{base: b, cfg: cfg.(ProtobufConfig)}, nil
	case TypeSphinx:
		return &SphinxBuilder{base: b, cfg: cfg.(SphinxConfig)}, nil
	case TypeArtifactory:
		return &ArtifactoryBuilder{base: b, cfg: cfg.(ArtifactoryConfig)}, nil
	case TypePython:
		return &PythonBuilder{base: b, cfg: cfg.(PythonConfig)}, nil
	case TypeDeb:
		return &DebBuilder{base: b, cfg: cfg.(DebConfig)}, nil
	case TypeDocker:
		return &DockerBuilder{base: b, cfg: cfg.(DockerConfig)}, nil
	case TypeMultistage:
		return &MultistageBuilder{base: b, cfg: cfg.(MultistageConfig)}, nil
	case TypeContent:
		return &ContentBuilder{base: b, cfg: cfg.(ContentConfig)}, nil
	case TypeVersionBumper:
		return &VersionBumperBuilder{base: b, cfg: cfg.(VersionBumperConfig)}, nil
	case TypeBash:
		return &BashBuilder{base: b, cfg: cfg.(BashConfig)}, nil
	case TypeWheel:
		return &WheelBuilder{base: b, cfg: cfg.(WheelConfig)}, nil
	case TypePip:
		return &PipBuilder{base: b, cfg: cfg.(PipConfig)}, nil
	default:
		return nil, errors.NewInternalError("builder_no_builder",
			fmt.Sprintf("no builder registered for build type %s", buildType), nil)
	}
}

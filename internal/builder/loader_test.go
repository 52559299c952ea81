package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suisei-entertainment/sde/internal/errors"
)

func TestParseType(t *testing.T) {
	testCases := []struct {
		input    string
		expected Type
	}{
		{"cmake", TypeCMake},
		{"CMAKE", TypeCMake},
		{"CMake", TypeCMake},
		{"make", TypeMake},
		{"protobuf", TypeProtobuf},
		{"sphinx", TypeSphinx},
		{"artifactory", TypeArtifactory},
		{"python", TypePython},
		{"deb", TypeDeb},
		{"docker", TypeDocker},
		{"multistage", TypeMultistage},
		{"content", TypeContent},
		{"versionbumper", TypeVersionBumper},
		{"bash", TypeBash},
		{"wheel", TypeWheel},
		{"pip", TypePip},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			buildType, err := ParseType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, buildType)
		})
	}
}

func TestParseTypeUnknown(t *testing.T) {
	_, err := ParseType("gradle")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "gradle")
}

func TestLoadNilSection(t *testing.T) {
	buildType, cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, buildType)
	assert.Nil(t, cfg)
}

func TestLoadUnknownType(t *testing.T) {
	_, _, err := Load(&Section{Type: "gradle"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadCMakeDefaultsPath(t *testing.T) {
	buildType, cfg, err := Load(&Section{Type: "cmake"})
	require.NoError(t, err)
	assert.Equal(t, TypeCMake, buildType)
	assert.Equal(t, CMakeConfig{Path: "."}, cfg)
}

func TestLoadMake(t *testing.T) {
	buildType, cfg, err := Load(&Section{Type: "make", Path: "./src", Target: "release"})
	require.NoError(t, err)
	assert.Equal(t, TypeMake, buildType)
	assert.Equal(t, MakeConfig{Path: "./src", Target: "release"}, cfg)
}

func TestLoadSphinx(t *testing.T) {
	buildType, cfg, err := Load(&Section{
		Type:       "sphinx",
		Target:     "html",
		SourcePath: "./doc",
		TargetPath: "./build/doc",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeSphinx, buildType)
	assert.Equal(t, SphinxConfig{
		Target:     "html",
		SourcePath: "./doc",
		TargetPath: "./build/doc",
	}, cfg)
}

func TestLoadSphinxMissingFields(t *testing.T) {
	_, _, err := Load(&Section{Type: "sphinx", Target: "html"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadProtobufMissingFields(t *testing.T) {
	_, _, err := Load(&Section{Type: "protobuf", SourcePath: "./proto"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadContentMissingFields(t *testing.T) {
	_, _, err := Load(&Section{Type: "content"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadVersionBumper(t *testing.T) {
	buildType, cfg, err := Load(&Section{
		Type:       "versionbumper",
		TargetFile: "./version.json",
		Patch:      "+",
		Codename:   "Fujin",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeVersionBumper, buildType)

	bumperCfg, ok := cfg.(VersionBumperConfig)
	require.True(t, ok)
	assert.Equal(t, "./version.json", bumperCfg.TargetFile)
	assert.Equal(t, "+", bumperCfg.Patch)
	assert.Equal(t, "Fujin", bumperCfg.Codename)
}

func TestLoadVersionBumperMissingTargetFile(t *testing.T) {
	_, _, err := Load(&Section{Type: "versionbumper", Major: "1"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadBashMissingScript(t *testing.T) {
	_, _, err := Load(&Section{Type: "bash"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadMultistage(t *testing.T) {
	buildType, cfg, err := Load(&Section{
		Type: "multistage",
		Stages: []Section{
			{Type: "cmake", Path: "./native"},
			{Type: "wheel", Path: "./python"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, TypeMultistage, buildType)

	multiCfg, ok := cfg.(MultistageConfig)
	require.True(t, ok)
	require.Len(t, multiCfg.Stages, 2)
	assert.Equal(t, TypeCMake, multiCfg.Stages[0].BuildType)
	assert.Equal(t, TypeWheel, multiCfg.Stages[1].BuildType)
}

func TestLoadMultistageBadStage(t *testing.T) {
	_, _, err := Load(&Section{
		Type: "multistage",
		Stages: []Section{
			{Type: "cmake"},
			{Type: "gradle"},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestConfigTypeMatchesLoadedType(t *testing.T) {
	sections := []*Section{
		{Type: "cmake"},
		{Type: "make"},
		{Type: "protobuf", SourcePath: "a", TargetPath: "b"},
		{Type: "sphinx", Target: "html", SourcePath: "a", TargetPath: "b"},
		{Type: "artifactory", Target: "repo/pkg"},
		{Type: "python"},
		{Type: "deb"},
		{Type: "docker"},
		{Type: "content", SourcePath: "a", TargetPath: "b"},
		{Type: "versionbumper", TargetFile: "v.json"},
		{Type: "bash", Script: "build.sh"},
		{Type: "wheel"},
		{Type: "pip"},
	}

	for _, section := range sections {
		t.Run(section.Type, func(t *testing.T) {
			buildType, cfg, err := Load(section)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, buildType, cfg.Type())
		})
	}
}

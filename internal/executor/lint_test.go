package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/registry"
)

func TestLinterExecutorUnknownComponent(t *testing.T) {
	exec := NewLinterExecutor(registry.NewRegistry(), &fakeRunner{}, testLogger())

	err := exec.Execute(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLinterExecutorCommand(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(&registry.ComponentDescriptor{
		ID:        "seed",
		Name:      registry.UnknownName,
		LinterDir: "./suisei",
	})

	runner := &fakeRunner{}
	require.NoError(t, NewLinterExecutor(reg, runner, testLogger()).Execute(context.Background(), "seed"))

	require.Len(t, runner.commands, 1)
	assert.Equal(t, ".", runner.commands[0].dir)
	assert.Equal(t, "pylint -j 0 --reports=yes --rcfile=./.pylintrc ./suisei", runner.commands[0].command)
}

func TestLinterExecutorLintsEveryComponentDespiteFindings(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(&registry.ComponentDescriptor{ID: "alpha", Name: registry.UnknownName, LinterDir: "./alpha"})
	reg.Register(&registry.ComponentDescriptor{ID: "beta", Name: registry.UnknownName, LinterDir: "./beta"})

	runner := &fakeRunner{failOn: "pylint -j 0 --reports=yes --rcfile=./.pylintrc ./alpha"}

	err := NewLinterExecutor(reg, runner, testLogger()).Execute(context.Background(), AllComponents)
	require.Error(t, err)

	var sdeErr *errors.SDEError
	require.ErrorAs(t, err, &sdeErr)
	assert.Equal(t, errors.ErrorTypeTest, sdeErr.Type)
	assert.Len(t, runner.commands, 2)
}

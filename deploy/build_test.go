package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeUpRequiresProtocolAddress(t *testing.T) {
	b := NewBuilder(".", zerolog.Nop())
	err := b.ComposeUp(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvContractAddress)
}

func TestBuilderReportsMissingTooling(t *testing.T) {
	b := NewBuilder(".", zerolog.Nop())
	b.lookPath = func(name string) (string, error) {
		return "", errors.New("not installed")
	}

	err := b.ComposeUp(context.Background(), "", "contract:p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker not found in PATH")

	err = b.LocalBuild(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tinygo not found in PATH")
}

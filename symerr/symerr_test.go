package symerr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContractErrorMessageAndPredicate(t *testing.T) {
	require := require.New(t)

	err := NewContract("bdd.RefManager", "handle did not originate from this manager")
	require.EqualError(err, "contract violation in bdd.RefManager: handle did not originate from this manager")
	require.True(IsContract(err))
	require.False(IsInvariant(err))
}

func TestInvariantErrorMessageAndPredicate(t *testing.T) {
	require := require.New(t)

	err := NewInvariant("fsm.Product", "state variable universes differ")
	require.EqualError(err, "invariant breach in fsm.Product: state variable universes differ")
	require.True(IsInvariant(err))
	require.False(IsContract(err))
}

func TestUnsupportedErrorMessage(t *testing.T) {
	require := require.New(t)

	err := NewUnsupported("scalar encoding variant lower-to-higher-balanced")
	require.EqualError(err, "unsupported: scalar encoding variant lower-to-higher-balanced")
	require.False(IsContract(err))
	require.False(IsInvariant(err))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPatchIsEmpty(t *testing.T) {
	name := ""
	active := false
	require.True(t, UserPatch{}.IsEmpty())
	require.False(t, UserPatch{Name: &name}.IsEmpty())
	require.False(t, UserPatch{Email: &name}.IsEmpty())
	require.False(t, UserPatch{Active: &active}.IsEmpty())
}

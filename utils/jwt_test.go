package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/policy-insights-be/types"
)

func TestUserTokenRoundTrip(t *testing.T) {
	user := &types.User{
		ID:       "u-1",
		Username: "alice",
		FullName: "Alice Nguyen",
		Role:     types.USER_ROLE_ADMIN,
	}

	token, err := GenerateUserToken(user)
	require.NoError(t, err)

	claims, err := ParseUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.ID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, types.USER_ROLE_ADMIN, claims.Role)
}

func TestParseUserToken_Invalid(t *testing.T) {
	_, err := ParseUserToken("not-a-token")
	assert.Error(t, err)
}

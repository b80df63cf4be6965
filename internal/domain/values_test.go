package domain_test

import (
	"club-membership-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameValueObjectsRejectShortInput(t *testing.T) {
	cases := []struct {
		input string
		kind  domain.ValidationKind
	}{
		{input: "", kind: domain.KindEmptyValue},
		{input: "a", kind: domain.KindTooShort},
		{input: "ab", kind: domain.KindTooShort},
		{input: "日本", kind: domain.KindTooShort},
	}

	for _, tc := range cases {
		t.Run("user:"+tc.input, func(t *testing.T) {
			_, err := domain.NewUserName(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.kind, vErr.Kind)
		})

		t.Run("club:"+tc.input, func(t *testing.T) {
			_, err := domain.NewClubName(tc.input)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.kind, vErr.Kind)
		})
	}
}

func TestNameValueObjectsRoundTrip(t *testing.T) {
	for _, input := range []string{"bob", "alice", " padded ", "日本語", "Chess Club"} {
		userName, err := domain.NewUserName(input)
		require.NoError(t, err)
		assert.Equal(t, input, userName.String())

		clubName, err := domain.NewClubName(input)
		require.NoError(t, err)
		assert.Equal(t, input, clubName.String())
	}
}

func TestIDValueObjects(t *testing.T) {
	_, err := domain.NewUserID("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.NewClubID("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	first, err := domain.NewUserID("u-1")
	require.NoError(t, err)
	second, err := domain.NewUserID("u-1")
	require.NoError(t, err)
	other, err := domain.NewUserID("u-2")
	require.NoError(t, err)

	assert.True(t, first.Equals(second))
	assert.False(t, first.Equals(other))
	assert.Equal(t, "u-1", first.String())
	assert.False(t, first.IsEmpty())
	assert.True(t, domain.UserID{}.IsEmpty())
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := domain.NewUserName("ab")
	assert.EqualError(t, err, "user name must be at least 3 characters")

	_, err = domain.NewClubID("")
	assert.EqualError(t, err, "club id cannot be empty")
}

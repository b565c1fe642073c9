package oauth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauth2-orcid/pkg/oauth"
)

func emailsRecord(items ...any) map[string]any {
	return map[string]any{
		"person": map[string]any{
			"emails": map[string]any{"email": items},
		},
	}
}

func TestORCIDResourceOwner_Empty(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]map[string]any{
		"nil":   nil,
		"empty": {},
		"wrong shapes": {
			"orcid-identifier": "not-an-object",
			"person": map[string]any{
				"name":        []any{"nope"},
				"other-names": map[string]any{"other-name": "nope"},
				"emails":      map[string]any{"email": map[string]any{"email": "x"}},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			owner := oauth.NewORCIDResourceOwner(raw)

			require.Empty(t, owner.ID())
			require.Empty(t, owner.Name())
			require.Empty(t, owner.GivenName())
			require.Empty(t, owner.FirstName())
			require.Empty(t, owner.FamilyName())
			require.Empty(t, owner.LastName())
			require.Empty(t, owner.Email())
			require.Empty(t, owner.PrimaryEmail())
			require.NotNil(t, owner.OtherNames())
			require.Empty(t, owner.OtherNames())
			require.NotNil(t, owner.Emails())
			require.Empty(t, owner.Emails())
			require.NotNil(t, owner.ToMap())
		})
	}
}

func TestORCIDResourceOwner_ToMap(t *testing.T) {
	t.Parallel()
	raw := map[string]any{"path": "/0000-0002-1825-0097"}
	owner := oauth.NewORCIDResourceOwner(raw)
	require.Equal(t, raw, owner.ToMap())
	require.Equal(t, map[string]any{}, oauth.NewORCIDResourceOwner(nil).ToMap())
}

func TestORCIDResourceOwner_Names(t *testing.T) {
	t.Parallel()

	owner := oauth.NewORCIDResourceOwner(map[string]any{
		"orcid-identifier": map[string]any{"uri": "https://orcid.org/0000-0002-1825-0097"},
		"person": map[string]any{
			"name": map[string]any{
				"given-names": map[string]any{"value": "Josiah"},
				"family-name": map[string]any{"value": "Carberry"},
				"credit-name": map[string]any{"value": "J. Carberry"},
			},
			"other-names": map[string]any{
				"other-name": []any{
					map[string]any{"content": "Josiah Stinkney Carberry"},
					map[string]any{"visibility": "PUBLIC"},
					map[string]any{"content": "J.S. Carberry"},
					"garbage",
				},
			},
		},
	})

	require.Equal(t, "https://orcid.org/0000-0002-1825-0097", owner.ID())
	require.Equal(t, "J. Carberry", owner.Name())
	require.Equal(t, "Josiah", owner.GivenName())
	require.Equal(t, owner.GivenName(), owner.FirstName())
	require.Equal(t, "Carberry", owner.FamilyName())
	require.Equal(t, owner.FamilyName(), owner.LastName())
	require.Equal(t, []string{"Josiah Stinkney Carberry", "J.S. Carberry"}, owner.OtherNames())
}

func TestORCIDResourceOwner_PartialName(t *testing.T) {
	t.Parallel()

	owner := oauth.NewORCIDResourceOwner(map[string]any{
		"person": map[string]any{
			"name": map[string]any{
				"given-names": map[string]any{"value": "Josiah"},
				"credit-name": nil,
			},
		},
	})

	require.Equal(t, "Josiah", owner.GivenName())
	require.Empty(t, owner.Name())
	require.Empty(t, owner.FamilyName())
	require.Empty(t, owner.ID())
	require.Equal(t, []string{}, owner.OtherNames())
}

func TestORCIDResourceOwner_Emails(t *testing.T) {
	t.Parallel()

	t.Run("primary flagged", func(t *testing.T) {
		t.Parallel()
		owner := oauth.NewORCIDResourceOwner(emailsRecord(
			map[string]any{"email": "a@x.com", "primary": false},
			map[string]any{"email": "b@x.com", "primary": true},
		))
		require.Equal(t, "b@x.com", owner.Email())
		require.Equal(t, "b@x.com", owner.PrimaryEmail())
		require.Equal(t, []string{"a@x.com", "b@x.com"}, owner.Emails())
	})

	t.Run("primary first wins over later entries", func(t *testing.T) {
		t.Parallel()
		owner := oauth.NewORCIDResourceOwner(emailsRecord(
			map[string]any{"email": "a@x.com", "primary": true},
			map[string]any{"email": "b@x.com"},
		))
		require.Equal(t, "a@x.com", owner.Email())
		require.Equal(t, "a@x.com", owner.PrimaryEmail())
	})

	t.Run("no primary falls back to last", func(t *testing.T) {
		t.Parallel()
		owner := oauth.NewORCIDResourceOwner(emailsRecord(
			map[string]any{"email": "a@x.com"},
			map[string]any{"email": "b@x.com"},
		))
		require.Equal(t, "b@x.com", owner.Email())
		require.Empty(t, owner.PrimaryEmail())
		require.Equal(t, []string{"a@x.com", "b@x.com"}, owner.Emails())
	})

	t.Run("items without address are skipped in list", func(t *testing.T) {
		t.Parallel()
		owner := oauth.NewORCIDResourceOwner(emailsRecord(
			map[string]any{"email": "a@x.com"},
			map[string]any{"visibility": "PRIVATE"},
			map[string]any{"email": nil},
		))
		require.Equal(t, []string{"a@x.com"}, owner.Emails())
		require.Empty(t, owner.PrimaryEmail())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		owner := oauth.NewORCIDResourceOwner(emailsRecord())
		require.Empty(t, owner.Email())
		require.Empty(t, owner.PrimaryEmail())
		require.Equal(t, []string{}, owner.Emails())
	})
}

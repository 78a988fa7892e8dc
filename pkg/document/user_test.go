package document_test

import (
	"encoding/json"
	"ground/pkg/document"
	"ground/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserToObject_CopiesFields(t *testing.T) {
	u := domain.User{ID: "user_id", Email: "user@gmail.com", DisplayName: "User"}

	obj := document.UserToObject(u)
	require.NotNil(t, obj.ID)
	require.NotNil(t, obj.Email)
	require.NotNil(t, obj.DisplayName)
	require.Equal(t, "user_id", *obj.ID)
	require.Equal(t, "user@gmail.com", *obj.Email)
	require.Equal(t, "User", *obj.DisplayName)
}

func TestUserRoundTrip(t *testing.T) {
	users := []domain.User{
		{ID: "user_id", Email: "user@gmail.com", DisplayName: "User"},
		{ID: "8d3f", Email: "a.b@example.org", DisplayName: "Ana Belén"},
		{ID: "x", Email: "y", DisplayName: "z"},
	}

	for _, u := range users {
		obj := document.UserToObject(u)
		require.Equal(t, u, document.UserFromObject(&obj))
	}
}

func TestUserRoundTrip_ThroughJSON(t *testing.T) {
	u := domain.User{ID: "user_id", Email: "user@gmail.com", DisplayName: "User"}

	b, err := json.Marshal(document.UserToObject(u))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"user_id","email":"user@gmail.com","displayName":"User"}`, string(b))

	var obj document.UserObject
	require.NoError(t, json.Unmarshal(b, &obj))
	require.Equal(t, u, document.UserFromObject(&obj))
}

func TestUserFromObject_MissingFieldsBecomeEmpty(t *testing.T) {
	require.Equal(t, domain.User{}, document.UserFromObject(&document.UserObject{}))
	require.Equal(t, domain.User{}, document.UserFromObject(nil))

	email := "user@gmail.com"
	got := document.UserFromObject(&document.UserObject{Email: &email})
	require.Equal(t, domain.User{Email: email}, got)

	var obj document.UserObject
	require.NoError(t, json.Unmarshal([]byte(`{"displayName":null}`), &obj))
	require.Equal(t, domain.User{}, document.UserFromObject(&obj))
}

func TestUserToObject_DoesNotAlias(t *testing.T) {
	u := domain.User{ID: "a", Email: "b", DisplayName: "c"}
	obj := document.UserToObject(u)
	u.ID = "changed"

	require.Equal(t, "a", *obj.ID)
}

package document_test

import (
	"ground/pkg/document"
	"ground/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuditInfo_RoundTrip(t *testing.T) {
	in := domain.AuditInfo{
		User:            domain.User{ID: "user_id", Email: "user@gmail.com", DisplayName: "User"},
		ClientTimestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		ServerTimestamp: time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC),
	}

	b, err := document.MarshalAuditInfo(in)
	require.NoError(t, err)

	out, err := document.UnmarshalAuditInfo(b)
	require.NoError(t, err)
	require.Equal(t, in.User, out.User)
	require.True(t, in.ClientTimestamp.Equal(out.ClientTimestamp))
	require.True(t, in.ServerTimestamp.Equal(out.ServerTimestamp))
}

func TestAuditInfo_ZeroTimestampsAreOmitted(t *testing.T) {
	b, err := document.MarshalAuditInfo(domain.AuditInfo{User: domain.User{ID: "u"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"user":{"id":"u","email":"","displayName":""}}`, string(b))
}

func TestUnmarshalAuditInfo_Empty(t *testing.T) {
	for _, in := range []string{"", "null", " ", "{}"} {
		out, err := document.UnmarshalAuditInfo([]byte(in))
		require.NoError(t, err, in)
		require.Equal(t, domain.AuditInfo{}, out, in)
	}
}

func TestUnmarshalAuditInfo_MissingUserFields(t *testing.T) {
	out, err := document.UnmarshalAuditInfo([]byte(`{"user":{"id":"u1"},"clientTimestamp":"2024-01-02T03:04:05Z"}`))
	require.NoError(t, err)
	require.Equal(t, domain.User{ID: "u1"}, out.User)
	require.Equal(t, 2024, out.ClientTimestamp.Year())
	require.True(t, out.ServerTimestamp.IsZero())
}

func TestUnmarshalAuditInfo_Invalid(t *testing.T) {
	_, err := document.UnmarshalAuditInfo([]byte(`{"user":`))
	require.Error(t, err)
}

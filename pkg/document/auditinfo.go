package document

import (
	"bytes"
	"encoding/json"
	"ground/pkg/domain"
	"time"

	"github.com/go-faster/errors"
)

// AuditInfoObject is the audit record nested in LOI and submission documents.
type AuditInfoObject struct {
	User            *UserObject `json:"user,omitempty"`
	ClientTimestamp *time.Time  `json:"clientTimestamp,omitempty"`
	ServerTimestamp *time.Time  `json:"serverTimestamp,omitempty"`
}

// AuditInfoToObject converts audit info to its document form. Zero timestamps
// are omitted.
func AuditInfoToObject(a domain.AuditInfo) AuditInfoObject {
	user := UserToObject(a.User)

	return AuditInfoObject{
		User:            &user,
		ClientTimestamp: timePtr(a.ClientTimestamp),
		ServerTimestamp: timePtr(a.ServerTimestamp),
	}
}

// AuditInfoFromObject converts an audit record to domain.AuditInfo.
func AuditInfoFromObject(obj *AuditInfoObject) domain.AuditInfo {
	if obj == nil {
		return domain.AuditInfo{}
	}

	out := domain.AuditInfo{User: UserFromObject(obj.User)}
	if obj.ClientTimestamp != nil {
		out.ClientTimestamp = *obj.ClientTimestamp
	}
	if obj.ServerTimestamp != nil {
		out.ServerTimestamp = *obj.ServerTimestamp
	}

	return out
}

// MarshalAuditInfo encodes audit info as a JSON document.
func MarshalAuditInfo(a domain.AuditInfo) ([]byte, error) {
	b, err := json.Marshal(AuditInfoToObject(a))
	if err != nil {
		return nil, errors.Wrap(err, "marshal audit info")
	}

	return b, nil
}

// UnmarshalAuditInfo decodes an audit info document. Empty input and JSON null
// decode to the zero value.
func UnmarshalAuditInfo(b []byte) (domain.AuditInfo, error) {
	if isNull(b) {
		return domain.AuditInfo{}, nil
	}

	var obj AuditInfoObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return domain.AuditInfo{}, errors.Wrap(err, "unmarshal audit info")
	}

	return AuditInfoFromObject(&obj), nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)

	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

package document

import "ground/pkg/domain"

// UserObject is the user record nested in remote documents.
type UserObject struct {
	ID          *string `json:"id,omitempty"`
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// UserToObject copies the fields of u into a nested user record.
func UserToObject(u domain.User) UserObject {
	return UserObject{
		ID:          &u.ID,
		Email:       &u.Email,
		DisplayName: &u.DisplayName,
	}
}

// UserFromObject converts a nested user record to a domain.User. A nil record
// or a nil field yields the empty string.
func UserFromObject(obj *UserObject) domain.User {
	if obj == nil {
		return domain.User{}
	}

	return domain.User{
		ID:          deref(obj.ID),
		Email:       deref(obj.Email),
		DisplayName: deref(obj.DisplayName),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

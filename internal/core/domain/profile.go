package domain

import (
	"fmt"
	"reflect"
	"strings"
)

var requiredProfileFields = map[Role][]string{
	RolePatient:  {"firstName", "lastName", "dateOfBirth", "memberId"},
	RoleProvider: {"firstName", "lastName", "specialty", "licenseNumber", "npiNumber"},
	RolePayor:    {"firstName", "lastName", "title", "employeeId"},
}

// RequiredProfileFields returns the profile keys a new account of the given
// role must supply.
func RequiredProfileFields(role Role) ([]string, error) {
	fields, ok := requiredProfileFields[role]
	if !ok {
		return nil, NewValidationError("role", "invalid role")
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out, nil
}

// ValidateProfile checks that profile carries every required field for role.
// All missing fields are reported in one error.
func ValidateProfile(role Role, profile Profile) error {
	fields, err := RequiredProfileFields(role)
	if err != nil {
		return err
	}

	var missing []string
	for _, f := range fields {
		if isBlank(profile[f]) {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return &ValidationError{Fields: map[string]string{
		"profile": fmt.Sprintf("missing required fields for role %s: %s", role, strings.Join(missing, ", ")),
	}}
}

// isBlank treats zero values the way a JSON client would consider them empty:
// null, "", false, 0 and empty collections.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

func ToString(s string) *string {
	return &s
}

func ToInt(i int) *int {
	return &i
}

func ToInt64(i int64) *int64 {
	return &i
}

func ToUint(i uint) *uint {
	return &i
}

func ToBool(b bool) *bool {
	return &b
}

func ToTime(b time.Time) *time.Time {
	return &b
}

// FromString safely dereferences a string pointer, returning empty string if nil
func FromString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

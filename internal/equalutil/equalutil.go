// Package equalutil holds the small comparison helpers shared by the
// Equal methods of oaskit values.
package equalutil

import (
	"maps"
	"net/url"
)

// EqualPtr compares two pointers of any comparable type for equality.
// Both nil returns true, both non-nil with equal values returns true.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// EqualURL compares two URLs by their string form.
// Two parsed URLs that serialize identically are considered equal even when
// their internal fields (RawPath, ForceQuery) were populated differently.
func EqualURL(a, b url.URL) bool {
	return a.String() == b.String()
}

// EqualURLPtr is EqualURL for optional URLs. Both nil returns true.
func EqualURLPtr(a, b *url.URL) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return EqualURL(*a, *b)
}

// EqualStringMap compares two string maps. Nil and empty maps are equal.
func EqualStringMap(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

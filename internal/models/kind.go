package models

import (
	"fmt"
	"strings"
)

// ContentKind discriminates the four content categories.
type ContentKind string

const (
	KindArticle  ContentKind = "article"
	KindResource ContentKind = "resource"
	KindScript   ContentKind = "script"
	KindEvent    ContentKind = "event"
)

// AllKinds returns every kind in aggregation order.
func AllKinds() []ContentKind {
	return []ContentKind{KindArticle, KindResource, KindScript, KindEvent}
}

func (k ContentKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k ContentKind) Valid() bool {
	switch k {
	case KindArticle, KindResource, KindScript, KindEvent:
		return true
	}
	return false
}

// ParseContentKind accepts a kind name in any case.
func ParseContentKind(s string) (ContentKind, error) {
	k := ContentKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// ContainsKind reports whether k is in kinds.
func ContainsKind(kinds []ContentKind, k ContentKind) bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

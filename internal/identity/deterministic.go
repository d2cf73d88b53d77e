package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID derives the record identifier from the canonical slug. Imports
// stay idempotent across runs because the same file yields the same id.
func ArticleUUID(slug string) uuid.UUID {
	return UUID("corpus:article:" + strings.ToLower(strings.TrimSpace(slug)))
}

func TagUUID(tagSlug string) uuid.UUID {
	return UUID("corpus:tag:" + strings.ToLower(strings.TrimSpace(tagSlug)))
}

func AuthorUUID(authorKey string) uuid.UUID {
	return UUID("corpus:author:" + strings.ToLower(strings.TrimSpace(authorKey)))
}

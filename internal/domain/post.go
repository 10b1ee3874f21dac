package domain

import (
	"time"
)

type PostCreationData struct {
	Board            BoardKey
	ThreadId         ThreadId
	Body             PostBody
	Name             PostName // empty means anonymous
	SubmitterAddress string   // transport-derived, kept only for poster id derivation
	CreatedAt        *time.Time
}

type Post struct {
	Id        PostId
	ThreadId  ThreadId
	Body      PostBody
	Name      PostName
	Number    int    // 1-based rank by CreatedAt within the thread, derived
	PosterId  string // per-day pseudonym, derived at read time
	CreatedAt time.Time

	// SubmitterAddress is never serialized; handlers derive PosterId from it
	// and drop it before responding.
	SubmitterAddress string `json:"-"`
}

// DisplayName returns the name to render, substituting the anonymous
// placeholder when the poster left the field empty.
func (p *Post) DisplayName() PostName {
	if p.Name == "" {
		return AnonymousName
	}
	return p.Name
}

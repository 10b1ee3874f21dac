package domain

type (
	BoardKey   = string
	BoardTitle = string

	ThreadId    = int64
	ThreadTitle = string

	PostId   = int64
	PostBody = string
	PostName = string
)

// AnonymousName is rendered in place of an empty display name.
// It is applied at read time and never stored.
const AnonymousName PostName = "名無しさん"

// MaxPostsPerThread is the capacity ceiling. The post that brings a thread
// to this count closes it in the same transaction.
const MaxPostsPerThread = 1000

package response

import (
	"time"

	"dodoensemble/internal/core/domain/secretbox"
)

// Note renders a secret note. Body is empty while the note is sealed.
type Note struct {
	ID        string     `json:"id"`
	Author    int64      `json:"author"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	UnlocksAt *time.Time `json:"unlocks_at"`
	Unlocked  bool       `json:"unlocked"`
	Readable  bool       `json:"readable"`
	CreatedAt time.Time  `json:"created_at"`
}

func (n *Note) FromDomainNote(dn secretbox.Note, readable bool) {
	n.ID = dn.ID.String()
	n.Author = int64(dn.Author)
	n.Title = dn.Title
	n.Readable = readable
	if readable {
		n.Body = dn.Body
	}
	if dn.UnlocksAt.IsPresent {
		n.UnlocksAt = &dn.UnlocksAt.Value
	}
	n.Unlocked = dn.Unlocked
	n.CreatedAt = dn.CreatedAt
}

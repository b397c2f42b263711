package model

import "time"

// Comment хранит комментарий к пресету.
// Ссылается на пресет по идентификатору и удаляется каскадно вместе с ним.
type Comment struct {
	ID        int64
	PresetID  string
	IPAddr    string
	Text      string
	CreatedOn time.Time
}

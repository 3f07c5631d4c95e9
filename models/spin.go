package models

// Spin is the currently (or most recently) playing track on the station.
type Spin struct {
	Song     string
	Artist   string
	Duration int // track length in seconds
	Elapsed  int // seconds since the spin started
}

// Playlist is the show currently on air.
type Playlist struct {
	Title      string
	PersonaID  int
	Automation bool
}

// GroupMessage is one message from the GroupMe group feed.
type GroupMessage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Text        string   `json:"text"`
	CreatedAt   int64    `json:"created_at"`
	FavoritedBy []string `json:"favorited_by"`
}

// LikeCount returns how many members have favorited the message.
func (m GroupMessage) LikeCount() int {
	return len(m.FavoritedBy)
}

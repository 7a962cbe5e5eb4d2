package entities

// QueueItem is one song entry in a guild's music queue.
type QueueItem struct {
	Title       string
	RequestedBy string
	Duration    string
	URL         string
}

// MusicQueue is the per-guild playback state. The first song in Songs is the
// one currently playing.
type MusicQueue struct {
	GuildID        string
	TextChannelID  string
	VoiceChannelID string
	Playing        bool
	Songs          []QueueItem
	Volume         int
}

// Enqueue appends a song and returns its 1-based queue position.
func (q *MusicQueue) Enqueue(item QueueItem) int {
	q.Songs = append(q.Songs, item)
	return len(q.Songs)
}

// PopFront removes and returns the song at the front of the queue.
func (q *MusicQueue) PopFront() (QueueItem, bool) {
	if len(q.Songs) == 0 {
		return QueueItem{}, false
	}
	item := q.Songs[0]
	q.Songs = q.Songs[1:]
	return item, true
}

// NowPlaying returns the song at the front of the queue, if any.
func (q *MusicQueue) NowPlaying() (QueueItem, bool) {
	if len(q.Songs) == 0 {
		return QueueItem{}, false
	}
	return q.Songs[0], true
}

// Clear removes every song and stops playback.
func (q *MusicQueue) Clear() {
	q.Songs = nil
	q.Playing = false
}

// Len returns the number of queued songs, including the one playing.
func (q *MusicQueue) Len() int {
	return len(q.Songs)
}

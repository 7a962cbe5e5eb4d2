package services

import (
	"sync"

	"jahbot/domain/entities"
	"jahbot/settings"

	log "github.com/sirupsen/logrus"
)

// PlayResult describes the effect of a play request.
type PlayResult struct {
	Item            entities.QueueItem
	Position        int
	StartedPlayback bool
}

// MusicService tracks per-guild queue state. Playback itself is not wired to
// a voice transport; the service models the queue, volume and pause state the
// player commands operate on.
type MusicService struct {
	mu     sync.Mutex
	queues map[string]*entities.MusicQueue

	store settings.Store
}

// NewMusicService creates a new music service reading live configuration from
// the settings store.
func NewMusicService(store settings.Store) *MusicService {
	return &MusicService{
		queues: make(map[string]*entities.MusicQueue),
		store:  store,
	}
}

// Play appends a song to the guild's queue, creating the queue at the
// configured default volume on first use. The requester must be in a voice
// channel. Playback starts when the queue was previously empty.
func (s *MusicService) Play(guildID, textChannelID, voiceChannelID, userID, title string) (*PlayResult, error) {
	if voiceChannelID == "" {
		return nil, ErrNotInVoiceChannel
	}

	musicSettings := s.store.GetMusicSettings()

	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok {
		queue = &entities.MusicQueue{
			GuildID:        guildID,
			TextChannelID:  textChannelID,
			VoiceChannelID: voiceChannelID,
			Volume:         musicSettings.DefaultVolume,
		}
		s.queues[guildID] = queue
		log.WithFields(log.Fields{
			"guild_id": guildID,
			"volume":   queue.Volume,
		}).Debug("Created music queue")
	}

	if musicSettings.MaxQueueSize > 0 && queue.Len() >= musicSettings.MaxQueueSize {
		return nil, ErrQueueFull
	}

	item := entities.QueueItem{Title: title, RequestedBy: userID}
	position := queue.Enqueue(item)

	started := false
	if position == 1 && !queue.Playing {
		queue.Playing = true
		started = true
	}

	return &PlayResult{Item: item, Position: position, StartedPlayback: started}, nil
}

// Skip drops the current song and returns the next one, if any. The caller
// must be in a voice channel. An empty queue after the skip tears the queue
// down.
func (s *MusicService) Skip(guildID, voiceChannelID string) (entities.QueueItem, bool, error) {
	if voiceChannelID == "" {
		return entities.QueueItem{}, false, ErrNotInVoiceChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok || queue.Len() == 0 {
		return entities.QueueItem{}, false, ErrNoActiveQueue
	}

	queue.PopFront()
	next, hasNext := queue.NowPlaying()
	if !hasNext {
		delete(s.queues, guildID)
	}
	return next, hasNext, nil
}

// Stop clears the guild's queue entirely. The caller must be in a voice
// channel.
func (s *MusicService) Stop(guildID, voiceChannelID string) error {
	if voiceChannelID == "" {
		return ErrNotInVoiceChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.queues[guildID]; !ok {
		return ErrNoActiveQueue
	}
	delete(s.queues, guildID)
	return nil
}

// Pause halts playback, keeping the queue intact. The caller must be in a
// voice channel.
func (s *MusicService) Pause(guildID, voiceChannelID string) error {
	if voiceChannelID == "" {
		return ErrNotInVoiceChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok || queue.Len() == 0 {
		return ErrNoActiveQueue
	}
	if !queue.Playing {
		return ErrAlreadyPaused
	}
	queue.Playing = false
	return nil
}

// Resume restarts paused playback. The caller must be in a voice channel.
func (s *MusicService) Resume(guildID, voiceChannelID string) error {
	if voiceChannelID == "" {
		return ErrNotInVoiceChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok || queue.Len() == 0 {
		return ErrNoActiveQueue
	}
	if queue.Playing {
		return ErrAlreadyPlaying
	}
	queue.Playing = true
	return nil
}

// Queue returns a snapshot of the guild's queue.
func (s *MusicService) Queue(guildID string) (entities.MusicQueue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok {
		return entities.MusicQueue{}, ErrNoActiveQueue
	}
	snapshot := *queue
	snapshot.Songs = append([]entities.QueueItem(nil), queue.Songs...)
	return snapshot, nil
}

// SetVolume changes the guild's playback volume, 0 to 100. The caller must be
// in a voice channel.
func (s *MusicService) SetVolume(guildID, voiceChannelID string, volume int) error {
	if voiceChannelID == "" {
		return ErrNotInVoiceChannel
	}
	if volume < 0 || volume > 100 {
		return ErrInvalidVolume
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue, ok := s.queues[guildID]
	if !ok {
		return ErrNoActiveQueue
	}
	queue.Volume = volume
	return nil
}

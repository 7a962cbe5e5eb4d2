package services

import (
	"testing"

	"jahbot/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMusicService() *MusicService {
	return NewMusicService(settings.NewMemoryStore())
}

func TestMusicPlayCreatesQueueWithDefaultVolume(t *testing.T) {
	service := newTestMusicService()

	result, err := service.Play("guild1", "text1", "voice1", "123", "Never Gonna Give You Up")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Position)
	assert.True(t, result.StartedPlayback)

	queue, err := service.Queue("guild1")
	require.NoError(t, err)
	assert.Equal(t, 70, queue.Volume)
	assert.True(t, queue.Playing)
	assert.Equal(t, 1, queue.Len())
}

func TestMusicPlayRequiresVoiceChannel(t *testing.T) {
	service := newTestMusicService()

	_, err := service.Play("guild1", "text1", "", "123", "some song")
	assert.ErrorIs(t, err, ErrNotInVoiceChannel)
}

func TestMusicControlsRequireVoiceChannel(t *testing.T) {
	service := newTestMusicService()

	_, err := service.Play("guild1", "text1", "voice1", "123", "song")
	require.NoError(t, err)

	// Every player control rejects a caller with no voice channel.
	_, _, err = service.Skip("guild1", "")
	assert.ErrorIs(t, err, ErrNotInVoiceChannel)
	assert.ErrorIs(t, service.Stop("guild1", ""), ErrNotInVoiceChannel)
	assert.ErrorIs(t, service.Pause("guild1", ""), ErrNotInVoiceChannel)
	assert.ErrorIs(t, service.Resume("guild1", ""), ErrNotInVoiceChannel)
	assert.ErrorIs(t, service.SetVolume("guild1", "", 50), ErrNotInVoiceChannel)

	// Nothing above touched the queue.
	queue, err := service.Queue("guild1")
	require.NoError(t, err)
	assert.True(t, queue.Playing)
	assert.Equal(t, 1, queue.Len())
	assert.Equal(t, 70, queue.Volume)
}

func TestMusicPlayQueuesBehindCurrentSong(t *testing.T) {
	service := newTestMusicService()

	_, err := service.Play("guild1", "text1", "voice1", "123", "first")
	require.NoError(t, err)

	result, err := service.Play("guild1", "text1", "voice1", "456", "second")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Position)
	assert.False(t, result.StartedPlayback)
}

func TestMusicPlayQueueFull(t *testing.T) {
	service := newTestMusicService()
	musicSettings := service.store.GetMusicSettings()
	musicSettings.MaxQueueSize = 2
	service.store.(*settings.MemoryStore).SetMusicSettings(musicSettings)

	_, err := service.Play("guild1", "text1", "voice1", "123", "one")
	require.NoError(t, err)
	_, err = service.Play("guild1", "text1", "voice1", "123", "two")
	require.NoError(t, err)

	_, err = service.Play("guild1", "text1", "voice1", "123", "three")
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestMusicSkip(t *testing.T) {
	service := newTestMusicService()

	service.Play("guild1", "text1", "voice1", "123", "first")
	service.Play("guild1", "text1", "voice1", "123", "second")

	next, hasNext, err := service.Skip("guild1", "voice1")
	require.NoError(t, err)
	require.True(t, hasNext)
	assert.Equal(t, "second", next.Title)

	// Skipping the last song tears the queue down.
	_, hasNext, err = service.Skip("guild1", "voice1")
	require.NoError(t, err)
	assert.False(t, hasNext)

	_, err = service.Queue("guild1")
	assert.ErrorIs(t, err, ErrNoActiveQueue)
}

func TestMusicSkipWithoutQueue(t *testing.T) {
	service := newTestMusicService()

	_, _, err := service.Skip("guild1", "voice1")
	assert.ErrorIs(t, err, ErrNoActiveQueue)
}

func TestMusicStop(t *testing.T) {
	service := newTestMusicService()

	assert.ErrorIs(t, service.Stop("guild1", "voice1"), ErrNoActiveQueue)

	service.Play("guild1", "text1", "voice1", "123", "song")
	require.NoError(t, service.Stop("guild1", "voice1"))

	_, err := service.Queue("guild1")
	assert.ErrorIs(t, err, ErrNoActiveQueue)
}

func TestMusicPauseResume(t *testing.T) {
	service := newTestMusicService()

	assert.ErrorIs(t, service.Pause("guild1", "voice1"), ErrNoActiveQueue)

	service.Play("guild1", "text1", "voice1", "123", "song")
	require.NoError(t, service.Pause("guild1", "voice1"))
	assert.ErrorIs(t, service.Pause("guild1", "voice1"), ErrAlreadyPaused)

	require.NoError(t, service.Resume("guild1", "voice1"))
	assert.ErrorIs(t, service.Resume("guild1", "voice1"), ErrAlreadyPlaying)
}

func TestMusicSetVolume(t *testing.T) {
	service := newTestMusicService()

	assert.ErrorIs(t, service.SetVolume("guild1", "voice1", 50), ErrNoActiveQueue)

	service.Play("guild1", "text1", "voice1", "123", "song")

	assert.ErrorIs(t, service.SetVolume("guild1", "voice1", -1), ErrInvalidVolume)
	assert.ErrorIs(t, service.SetVolume("guild1", "voice1", 101), ErrInvalidVolume)

	require.NoError(t, service.SetVolume("guild1", "voice1", 45))
	queue, err := service.Queue("guild1")
	require.NoError(t, err)
	assert.Equal(t, 45, queue.Volume)
}

func TestMusicQueueSnapshotIsIndependent(t *testing.T) {
	service := newTestMusicService()

	service.Play("guild1", "text1", "voice1", "123", "song")
	queue, err := service.Queue("guild1")
	require.NoError(t, err)

	queue.Songs[0].Title = "mutated"

	fresh, err := service.Queue("guild1")
	require.NoError(t, err)
	assert.Equal(t, "song", fresh.Songs[0].Title)
}

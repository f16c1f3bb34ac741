package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startPlayingRoom drives a two-player room into the playing state with
// the stub question sequence installed.
func startPlayingRoom(t *testing.T, s *gameServer) *room {
	t.Helper()

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")

	s.handleStartGame(startGamePayload{RoomID: r.id})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "world", GameMode: "multiple"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "world", GameMode: "multiple"})

	require.Equal(t, statePlaying, r.state)
	require.Len(t, r.questions, questionsPerGame)

	return r
}

func tickRoom(s *gameServer, r *room) {
	s.handleTick(tickEvent{roomID: r.id, gen: r.timerGen})
}

func TestFullGameFinishesAfterExactTickCount(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	total := questionsPerGame * secondsPerQuestion

	for i := 0; i < total-1; i++ {
		tickRoom(s, r)
		require.Equal(t, statePlaying, r.state, "tick %d", i+1)
	}

	assert.Equal(t, questionsPerGame-1, r.current)

	tickRoom(s, r)
	assert.Equal(t, stateFinished, r.state)
	assert.Nil(t, r.timerStop)
}

func TestTickDecrementsAndBroadcasts(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	host := r.players[0].conn
	drain(host)

	tickRoom(s, r)

	assert.Equal(t, secondsPerQuestion-1, r.timeRemaining)

	// Time display updates every second, advance or not.
	msg := lastMessage(t, host)
	require.Equal(t, "game_state", msg.Type)
	payload, ok := msg.Payload.(gameStatePayload)
	require.True(t, ok)
	assert.Equal(t, secondsPerQuestion-1, payload.Room.TimeRemaining)
}

func TestAllAnsweredAdvancesOnNextTick(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	answer := r.questions[0].CorrectAnswer
	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: r.players[0].id, Answer: answer, TimeSpent: 3.5})
	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: r.players[1].id, Answer: "wrong", TimeSpent: 4.0})

	tickRoom(s, r)

	assert.Equal(t, 1, r.current)
	assert.Equal(t, secondsPerQuestion, r.timeRemaining)
	for _, p := range r.players {
		assert.False(t, p.hasAnswered)
	}
}

func TestAnswerScoringAndResults(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	q := r.questions[0]
	p1 := r.players[0]
	p2 := r.players[1]

	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: p1.id, Answer: q.CorrectAnswer, TimeSpent: 2.0})
	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: p2.id, Answer: "Decoy A", TimeSpent: 6.0})

	assert.Equal(t, 1, p1.score)
	assert.Equal(t, 0, p2.score)

	require.Contains(t, q.Results, p1.id)
	assert.True(t, q.Results[p1.id].IsCorrect)
	assert.Equal(t, 2.0, q.Results[p1.id].TimeSpent)

	require.Contains(t, q.Results, p2.id)
	assert.False(t, q.Results[p2.id].IsCorrect)
	assert.Equal(t, "Decoy A", q.Results[p2.id].Answer)
}

func TestAnswerIsCaseSensitiveExactMatch(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: r.players[0].id, Answer: "country 0", TimeSpent: 1.0})

	assert.Equal(t, 0, r.players[0].score)
	assert.False(t, r.questions[0].Results[r.players[0].id].IsCorrect)
}

func TestDoubleAnswerIsNoOp(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	q := r.questions[0]
	p1 := r.players[0]

	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: p1.id, Answer: q.CorrectAnswer, TimeSpent: 2.0})
	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: p1.id, Answer: q.CorrectAnswer, TimeSpent: 9.0})

	// Score must not double-increment, and the recorded result keeps the
	// first submission.
	assert.Equal(t, 1, p1.score)
	assert.Equal(t, 2.0, q.Results[p1.id].TimeSpent)
}

func TestAnswerIgnoredOutsidePlaying(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")

	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: r.players[0].id, Answer: "France", TimeSpent: 1.0})

	assert.Equal(t, 0, r.players[0].score)
}

func TestStaleTickIsDropped(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	stale := r.timerGen
	r.clearTimer()
	s.startRoomTimer(r)

	before := r.timeRemaining
	s.handleTick(tickEvent{roomID: r.id, gen: stale})

	assert.Equal(t, before, r.timeRemaining)
}

func TestNewGameReplacesTimerAndResetsScores(t *testing.T) {
	s := newTestServer(t)
	r := startPlayingRoom(t, s)

	s.handleAnswer(answerPayload{RoomID: r.id, PlayerID: r.players[0].id, Answer: r.questions[0].CorrectAnswer, TimeSpent: 1.0})
	require.Equal(t, 1, r.players[0].score)

	r.state = stateFinished
	r.clearTimer()
	oldGen := r.timerGen

	s.handleStartGame(startGamePayload{RoomID: r.id})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "us", GameMode: "type"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "us", GameMode: "type"})

	require.Equal(t, statePlaying, r.state)
	assert.Equal(t, 0, r.players[0].score)
	assert.NotEqual(t, oldGen, r.timerGen)
	assert.NotNil(t, r.timerStop)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteIgnoredOutsideVoting(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")

	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "world", GameMode: "multiple"})

	assert.Equal(t, stateWaiting, r.state)
	assert.Nil(t, r.votes)
}

func TestVoteIgnoredForUnknownPlayer(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	s.handleVote(votePayload{RoomID: r.id, PlayerID: "stranger", Mode: "world", GameMode: "multiple"})

	assert.Equal(t, stateVoting, r.state)
	assert.Empty(t, r.votes)
}

func TestRevoteOverwritesPreviousChoice(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	p1 := r.players[0].id
	p2 := r.players[1].id

	s.handleVote(votePayload{RoomID: r.id, PlayerID: p1, Mode: "world", GameMode: "multiple"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: p1, Mode: "us", GameMode: "type"})

	// One distinct voter out of two: not resolved yet.
	assert.Equal(t, stateVoting, r.state)
	assert.Equal(t, votePair{Mode: "us", GameMode: "type"}, r.votes[p1])

	s.handleVote(votePayload{RoomID: r.id, PlayerID: p2, Mode: "us", GameMode: "type"})

	require.Equal(t, statePlaying, r.state)
	assert.Equal(t, "us", r.settings.Mode)
	assert.Equal(t, "type", r.settings.GameMode)
}

func TestResolutionWaitsForAllPlayers(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	joinTestRoom(t, s, r, "linus")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "world", GameMode: "multiple"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "world", GameMode: "multiple"})
	assert.Equal(t, stateVoting, r.state)

	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[2].id, Mode: "us", GameMode: "map"})
	assert.Equal(t, statePlaying, r.state)
}

func TestMajorityPairWins(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	joinTestRoom(t, s, r, "linus")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "us", GameMode: "map"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "world", GameMode: "multiple"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[2].id, Mode: "world", GameMode: "multiple"})

	require.Equal(t, statePlaying, r.state)
	assert.Equal(t, "world", r.settings.Mode)
	assert.Equal(t, "multiple", r.settings.GameMode)
}

func TestTieBreaksToFirstSeenPair(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	// 1-1 tie: the pair voted by the earlier-joined player wins.
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "us", GameMode: "map"})
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[0].id, Mode: "world", GameMode: "type"})

	require.Equal(t, statePlaying, r.state)
	assert.Equal(t, "world", r.settings.Mode)
	assert.Equal(t, "type", r.settings.GameMode)
}

func TestTallyVotesIgnoresDepartedVoters(t *testing.T) {
	r := newRoom("r1", "abcd")
	r.players = []*player{
		{id: "a", name: "ada", isHost: true},
		{id: "b", name: "grace"},
	}
	r.enterVoting()
	r.votes["a"] = votePair{Mode: "world", GameMode: "multiple"}
	r.votes["ghost"] = votePair{Mode: "us", GameMode: "map"}

	assert.Equal(t, votePair{Mode: "world", GameMode: "multiple"}, r.tallyVotes())
	assert.False(t, r.votesComplete())
}

func TestVotingSnapshotExposesVotesAndLeadingPair(t *testing.T) {
	s := newTestServer(t)

	r, _ := createTestRoom(t, s, "ada", "abcd")
	joinTestRoom(t, s, r, "grace")
	s.handleStartGame(startGamePayload{RoomID: r.id})

	p1 := r.players[0].id
	s.handleVote(votePayload{RoomID: r.id, PlayerID: p1, Mode: "us", GameMode: "type"})

	snap := r.snapshot()
	require.NotNil(t, snap.VotingState)
	assert.Equal(t, "us", snap.VotingState.Mode)
	assert.Equal(t, "type", snap.VotingState.GameMode)
	assert.Equal(t, votePair{Mode: "us", GameMode: "type"}, snap.VotingState.Votes[p1])

	// Voting state disappears from snapshots once resolved.
	s.handleVote(votePayload{RoomID: r.id, PlayerID: r.players[1].id, Mode: "us", GameMode: "type"})
	assert.Nil(t, r.snapshot().VotingState)
}

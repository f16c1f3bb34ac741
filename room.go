package main

import (
	"time"
)

// Rooms move waiting -> voting -> playing -> finished. A finished room can
// only re-enter voting through a restart. State is mutated exclusively by
// the server's event loop.

type roomState string

const (
	stateWaiting  roomState = "waiting"
	stateVoting   roomState = "voting"
	statePlaying  roomState = "playing"
	stateFinished roomState = "finished"
)

// Fixed game parameters applied when voting resolves.
const (
	secondsPerQuestion = 20
	questionsPerGame   = 10
)

type player struct {
	id          string
	name        string
	score       int
	isHost      bool
	hasAnswered bool

	// conn is used only to push outbound frames; the connection registry
	// owns the membership mapping.
	conn *client
}

type room struct {
	id       string
	password string
	players  []*player // join order
	state    roomState

	votes     map[string]votePair // non-nil only while voting
	settings  *gameSettings
	current   int
	questions []*question

	timeRemaining int

	// Recurring per-second timer for the active game. timerStop is replaced
	// or cleared only through clearTimer, never directly; timerGen
	// invalidates ticks already queued when the timer was cancelled.
	timerStop func()
	timerGen  int

	lastActive time.Time
}

func newRoom(id, password string) *room {
	return &room{
		id:         id,
		password:   password,
		state:      stateWaiting,
		lastActive: time.Now(),
	}
}

func (r *room) touch() {
	r.lastActive = time.Now()
}

func (r *room) findPlayer(id string) *player {
	for _, p := range r.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

// removePlayer drops the player and, if the room still has members but no
// host, promotes the earliest-joined remaining player.
func (r *room) removePlayer(id string) bool {
	removed := false
	dst := r.players[:0]
	for _, p := range r.players {
		if p.id == id {
			removed = true
			continue
		}
		dst = append(dst, p)
	}
	r.players = dst

	if !removed {
		return false
	}

	if len(r.players) > 0 && !r.hasHost() {
		r.players[0].isHost = true
	}

	return true
}

func (r *room) hasHost() bool {
	for _, p := range r.players {
		if p.isHost {
			return true
		}
	}
	return false
}

func (r *room) allAnswered() bool {
	for _, p := range r.players {
		if !p.hasAnswered {
			return false
		}
	}
	return len(r.players) > 0
}

func (r *room) resetAnswered() {
	for _, p := range r.players {
		p.hasAnswered = false
	}
}

// enterVoting starts (or restarts) the pre-game vote with an empty tally.
func (r *room) enterVoting() {
	r.state = stateVoting
	r.votes = make(map[string]votePair)
}

// tallyVotes picks the (mode, gameMode) pair with the highest count.
// Players are scanned in join order so ties resolve to the pair seen
// first; votes from players no longer in the room are ignored.
func (r *room) tallyVotes() votePair {
	counts := make(map[votePair]int)
	var order []votePair

	for _, p := range r.players {
		pair, ok := r.votes[p.id]
		if !ok {
			continue
		}
		if counts[pair] == 0 {
			order = append(order, pair)
		}
		counts[pair]++
	}

	if len(order) == 0 {
		return votePair{Mode: modeWorld, GameMode: "multiple"}
	}

	winner := order[0]
	for _, pair := range order[1:] {
		if counts[pair] > counts[winner] {
			winner = pair
		}
	}
	return winner
}

// votesComplete reports whether every current player has voted.
func (r *room) votesComplete() bool {
	if len(r.players) == 0 {
		return false
	}
	for _, p := range r.players {
		if _, ok := r.votes[p.id]; !ok {
			return false
		}
	}
	return true
}

// startPlaying installs the resolved settings and question sequence and
// resets per-game player state. The recurring timer is started separately
// by the server, which owns the tick channel.
func (r *room) startPlaying(settings *gameSettings, questions []*question) {
	r.state = statePlaying
	r.votes = nil
	r.settings = settings
	r.questions = questions
	r.current = 0
	r.timeRemaining = settings.TimePerQuestion
	for _, p := range r.players {
		p.score = 0
		p.hasAnswered = false
	}
}

// currentQuestion returns nil outside an active game.
func (r *room) currentQuestion() *question {
	if r.state != statePlaying || r.current < 0 || r.current >= len(r.questions) {
		return nil
	}
	return r.questions[r.current]
}

// tick applies one second of game time: decrement the countdown (floored
// at zero), then advance when it hits zero or everyone has answered.
// Returns whether the room advanced and whether the game finished.
func (r *room) tick() (advanced, finished bool) {
	if r.state != statePlaying {
		return false, false
	}

	if r.timeRemaining > 0 {
		r.timeRemaining--
	}

	if r.timeRemaining > 0 && !r.allAnswered() {
		return false, false
	}

	if r.current+1 < len(r.questions) {
		r.current++
		r.timeRemaining = r.settings.TimePerQuestion
		r.resetAnswered()
		return true, false
	}

	r.state = stateFinished
	return true, true
}

// clearTimer cancels the room's recurring timer if one exists and bumps
// the generation so ticks already queued for the old timer are dropped.
// Every path that deletes or replaces a timer goes through here.
func (r *room) clearTimer() {
	if r.timerStop != nil {
		r.timerStop()
		r.timerStop = nil
	}
	r.timerGen++
}

// snapshot builds the serialized projection broadcast to clients.
func (r *room) snapshot() *roomSnapshot {
	players := make([]playerSnapshot, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, playerSnapshot{
			ID:          p.id,
			Name:        p.name,
			Score:       p.score,
			IsHost:      p.isHost,
			HasAnswered: p.hasAnswered,
		})
	}

	snap := &roomSnapshot{
		ID:              r.id,
		Password:        r.password,
		Players:         players,
		GameState:       string(r.state),
		GameSettings:    r.settings,
		CurrentQuestion: r.current,
		Questions:       r.questions,
		TimeRemaining:   r.timeRemaining,
	}

	if r.state == stateVoting {
		votes := make(map[string]votePair, len(r.votes))
		for id, pair := range r.votes {
			votes[id] = pair
		}
		leading := r.tallyVotes()
		snap.VotingState = &votingSnapshot{
			Mode:     leading.Mode,
			GameMode: leading.GameMode,
			Votes:    votes,
		}
	}

	return snap
}

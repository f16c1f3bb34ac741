// Flag-o-pedia multiplayer
//
// Clients hold one websocket each and drive a shared room through typed
// JSON messages. Rooms move through waiting -> voting -> playing ->
// finished: the creator opens a lobby with a password, joiners supply the
// room id and password, everyone votes on a (mode, gameMode) pair, and the
// winning configuration runs a synchronized game of flag questions on a
// per-second countdown.
//
// Features:
// - One websocket endpoint for all rooms: /multiplayer/ws
// - Short random room ids via crypto/rand, with server-side collision check
// - First player in a room is host; host reassigned by join order on leave
// - Vote resolution once every current player has voted, ties to the
//   pair seen first in join order
// - Per-room one-second game timer, auto-advance on timeout or once all
//   players have answered
// - Full room snapshot broadcast to every member on every state change
// - Rooms deleted when the last player leaves; idle rooms reaped after a
//   configurable timeout
// - In-browser QR link to share a room, backed by go-qrcode

package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	roomNotFoundError    = "Room not found"
	invalidPasswordError = "Invalid password"
)

type client struct {
	conn *websocket.Conn
	send chan serverMessage
}

// enqueue pushes a frame without blocking. A slow or closed consumer is
// skipped rather than queued; the read side tears the connection down.
func (c *client) enqueue(msg serverMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Events funneled into the server's single dispatch goroutine. Websocket
// readers and room tickers enqueue; only the loop mutates room state.

type connMessage struct {
	c    *client
	data []byte
}

type connClosed struct {
	c *client
}

type tickEvent struct {
	roomID string
	gen    int
}

type membership struct {
	roomID   string
	playerID string
}

// gameServer owns the room store and the connection registry. All state
// lives behind one event loop, so handlers never lock.
type gameServer struct {
	cfg         *Config
	rooms       map[string]*room
	memberships map[*client]membership
	events      chan any
	questions   questionSource

	// newTicker is swapped out in tests to drive ticks manually.
	newTicker func(d time.Duration) (<-chan time.Time, func())
}

func newGameServer(cfg *Config, questions questionSource) *gameServer {
	return &gameServer{
		cfg:         cfg,
		rooms:       make(map[string]*room),
		memberships: make(map[*client]membership),
		events:      make(chan any, 256),
		questions:   questions,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

func (s *gameServer) run(ctx context.Context) {
	var reap <-chan time.Time
	stopReap := func() {}
	if s.cfg.roomTimeout > 0 {
		reap, stopReap = s.newTicker(s.cfg.roomTimeout / 2)
	}
	defer stopReap()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.dispatch(ev)
		case <-reap:
			s.reapIdleRooms()
		}
	}
}

func (s *gameServer) dispatch(ev any) {
	switch ev := ev.(type) {
	case connMessage:
		s.handleMessage(ev.c, ev.data)
	case connClosed:
		s.handleDisconnect(ev.c)
	case tickEvent:
		s.handleTick(ev)
	}
}

// handleMessage decodes one inbound frame and routes it. Malformed or
// unknown messages are logged and dropped without a reply.
func (s *gameServer) handleMessage(c *client, data []byte) {
	msg, err := decodeClientMessage(data)
	if err != nil {
		logf(s.cfg, "ROOMS: Dropping message: %v", err)
		return
	}

	switch p := msg.(type) {
	case createRoomPayload:
		s.handleCreateRoom(c, p)
	case joinRoomPayload:
		s.handleJoinRoom(c, p)
	case leaveRoomPayload:
		s.handleLeaveRoom(p)
	case startGamePayload:
		s.handleStartGame(p)
	case votePayload:
		s.handleVote(p)
	case answerPayload:
		s.handleAnswer(p)
	}
}

func (s *gameServer) handleCreateRoom(c *client, p createRoomPayload) {
	if _, ok := s.memberships[c]; ok {
		return
	}

	r := newRoom(s.newRoomID(), p.Password)
	host := &player{
		id:     uuid.NewString(),
		name:   p.Player.Name,
		isHost: true,
		conn:   c,
	}
	r.players = append(r.players, host)

	s.rooms[r.id] = r
	s.memberships[c] = membership{roomID: r.id, playerID: host.id}

	logf(s.cfg, "ROOMS: Player %q created room %s", host.name, r.id)

	// The snapshot goes to the creator only; there is nobody else yet.
	c.enqueue(gameStateMessage(r.snapshot()))
}

func (s *gameServer) handleJoinRoom(c *client, p joinRoomPayload) {
	if _, ok := s.memberships[c]; ok {
		return
	}

	r, ok := s.rooms[p.RoomID]
	if !ok {
		c.enqueue(errorMessage(roomNotFoundError))
		return
	}
	if r.password != p.Password {
		c.enqueue(errorMessage(invalidPasswordError))
		return
	}

	joiner := &player{
		id:   uuid.NewString(),
		name: p.Player.Name,
		conn: c,
	}
	r.players = append(r.players, joiner)
	r.touch()

	s.memberships[c] = membership{roomID: r.id, playerID: joiner.id}

	logf(s.cfg, "ROOMS: Player %q joined room %s", joiner.name, r.id)

	s.broadcast(r)
}

func (s *gameServer) handleLeaveRoom(p leaveRoomPayload) {
	r, ok := s.rooms[p.RoomID]
	if !ok {
		return
	}
	s.removePlayer(r, p.PlayerID)
}

func (s *gameServer) handleDisconnect(c *client) {
	m, wasMember := s.memberships[c]
	delete(s.memberships, c)
	close(c.send)

	if !wasMember {
		return
	}
	if r, ok := s.rooms[m.roomID]; ok {
		s.removePlayer(r, m.playerID)
	}
}

// removePlayer detaches a player from their room, deleting the room (and
// cancelling its timer) when it empties, and broadcasting otherwise.
func (s *gameServer) removePlayer(r *room, playerID string) {
	pl := r.findPlayer(playerID)
	if pl == nil {
		return
	}
	if pl.conn != nil {
		delete(s.memberships, pl.conn)
	}

	r.removePlayer(playerID)

	logf(s.cfg, "ROOMS: Player %q left room %s", pl.name, r.id)

	if len(r.players) == 0 {
		r.clearTimer()
		delete(s.rooms, r.id)
		logf(s.cfg, "ROOMS: Deleted empty room %s", r.id)
		return
	}

	r.touch()
	s.broadcast(r)
}

// handleStartGame opens voting. Accepted from waiting (first game) and
// finished (restart); any member may send it, the client UI restricts the
// button to the host.
func (s *gameServer) handleStartGame(p startGamePayload) {
	r, ok := s.rooms[p.RoomID]
	if !ok {
		return
	}
	if r.state != stateWaiting && r.state != stateFinished {
		return
	}

	r.enterVoting()
	r.touch()

	logf(s.cfg, "ROOMS: Room %s entered voting", r.id)

	s.broadcast(r)
}

// handleVote records (or overwrites) a player's vote and resolves the
// round once every current player has voted.
func (s *gameServer) handleVote(p votePayload) {
	r, ok := s.rooms[p.RoomID]
	if !ok || r.state != stateVoting {
		return
	}
	if r.findPlayer(p.PlayerID) == nil {
		return
	}

	r.votes[p.PlayerID] = votePair{Mode: p.Mode, GameMode: p.GameMode}
	r.touch()

	if r.votesComplete() {
		s.resolveVotes(r)
	}

	s.broadcast(r)
}

func (s *gameServer) resolveVotes(r *room) {
	winner := r.tallyVotes()

	settings := &gameSettings{
		Mode:            winner.Mode,
		GameMode:        winner.GameMode,
		TimePerQuestion: secondsPerQuestion,
		TotalQuestions:  questionsPerGame,
	}

	questions := s.questions.Generate(settings.Mode, settings.TotalQuestions)
	settings.TotalQuestions = len(questions)

	r.startPlaying(settings, questions)
	s.startRoomTimer(r)

	logf(s.cfg, "ROOMS: Room %s playing %s/%s with %d questions",
		r.id, settings.Mode, settings.GameMode, settings.TotalQuestions)
}

// handleAnswer scores a submission. Double submissions and answers outside
// an active game are silent no-ops.
func (s *gameServer) handleAnswer(p answerPayload) {
	r, ok := s.rooms[p.RoomID]
	if !ok || r.state != statePlaying {
		return
	}
	pl := r.findPlayer(p.PlayerID)
	if pl == nil || pl.hasAnswered {
		return
	}
	q := r.currentQuestion()
	if q == nil {
		return
	}

	pl.hasAnswered = true
	correct := p.Answer == q.CorrectAnswer
	if correct {
		pl.score++
	}

	if q.Results == nil {
		q.Results = make(map[string]answerResult)
	}
	q.Results[pl.id] = answerResult{
		Answer:    p.Answer,
		IsCorrect: correct,
		TimeSpent: p.TimeSpent,
	}

	r.touch()

	// Broadcast immediately so the next tick can advance on all-answered.
	s.broadcast(r)
}

func (s *gameServer) handleTick(ev tickEvent) {
	r, ok := s.rooms[ev.roomID]
	if !ok || ev.gen != r.timerGen {
		// Stale tick from a cancelled or replaced timer.
		return
	}

	_, finished := r.tick()
	if finished {
		r.clearTimer()
		logf(s.cfg, "ROOMS: Room %s finished", r.id)
	}

	s.broadcast(r)
}

// startRoomTimer replaces any running timer with a fresh one-second
// ticker feeding the event loop. Ticks are stamped with the room's timer
// generation so anything queued across a cancel is ignored.
func (s *gameServer) startRoomTimer(r *room) {
	r.clearTimer()

	gen := r.timerGen
	tickC, stop := s.newTicker(time.Second)
	done := make(chan struct{})
	r.timerStop = func() {
		stop()
		close(done)
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case <-tickC:
				select {
				case s.events <- tickEvent{roomID: r.id, gen: gen}:
				case <-done:
					return
				}
			}
		}
	}()
}

// broadcast fans the current snapshot out to every member. Consumers whose
// send buffer is full are skipped; no queueing, no retries.
func (s *gameServer) broadcast(r *room) {
	msg := gameStateMessage(r.snapshot())

	for _, p := range r.players {
		if p.conn == nil {
			continue
		}
		if !p.conn.enqueue(msg) {
			logf(s.cfg, "ROOMS: Skipped slow consumer %q in room %s", p.name, r.id)
		}
	}
}

// newRoomID generates a crypto-random room id and ensures it doesn't
// collide with existing rooms. Collisions with ids handed out earlier and
// since deleted are accepted as negligible.
func (s *gameServer) newRoomID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		if _, exists := s.rooms[id]; !exists {
			return id
		}
	}
}

// reapIdleRooms closes rooms with no activity past the configured timeout.
func (s *gameServer) reapIdleRooms() {
	cutoff := time.Now().Add(-s.cfg.roomTimeout)

	for id, r := range s.rooms {
		if !r.lastActive.Before(cutoff) {
			continue
		}

		r.clearTimer()
		for _, p := range r.players {
			if p.conn != nil {
				delete(s.memberships, p.conn)
				p.conn.close()
			}
		}
		delete(s.rooms, id)

		logf(s.cfg, "ROOMS: Reaped idle room %s", id)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveMultiplayerWS(cfg *Config, s *gameServer) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		logf(cfg, "ROOMS: Connection from %s", realIP(r))

		c := &client{
			conn: conn,
			send: make(chan serverMessage, 32),
		}

		go c.writePump()
		c.readPump(s)
	}
}

func (c *client) readPump(s *gameServer) {
	defer func() {
		s.events <- connClosed{c: c}
		_ = c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		s.events <- connMessage{c: c, data: data}
	}
}

func (c *client) writePump() {
	defer c.close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for a room's join URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID := ps.ByName("roomid")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../qr/:roomid; the join URL puts the room id last.
	path := strings.TrimSuffix(r.URL.Path, "/qr/"+roomID)

	url := scheme + "://" + r.Host + path + "/" + roomID

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// registerMultiplayer sets up routes so that:
//   - $path/ws          → WebSocket carrying the room protocol
//   - $path/qr/:roomid  → PNG QR code for sharing a room
func registerMultiplayer(ctx context.Context, cfg *Config, path string, mux *httprouter.Router) {
	s := newGameServer(cfg, flagQuestionSource{})
	go s.run(ctx)

	mux.GET(cfg.prefix+path+"/ws", serveMultiplayerWS(cfg, s))

	mux.GET(cfg.prefix+path+"/qr/:roomid", qrHandler)
}

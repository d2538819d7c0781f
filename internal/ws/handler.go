package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/physics"
	"github.com/pitchlab/backend/internal/presets"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	readLimit    = 65536

	// DefaultFPS paces a stream when the client does not ask for a rate.
	DefaultFPS = 60
	// MaxFPS bounds every paced stream, whatever STREAM_MAX_FPS says.
	MaxFPS = 1000
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are checked by middleware.WebSocketCORSCheck
	},
}

// StreamRequest is the single message a client sends after connecting.
type StreamRequest struct {
	Params  physics.PitchParameters `json:"params"`
	Options physics.Options         `json:"options"`
}

// Frame is one server message. Type is "sample", "result" or "error".
type Frame struct {
	Type     string                    `json:"type"`
	Index    int                       `json:"index"`
	Time     float64                   `json:"time"`
	Position *physics.Vector3          `json:"position,omitempty"`
	Forces   *physics.ForceBreakdown   `json:"forces,omitempty"`
	Result   *physics.SimulationResult `json:"result,omitempty"`
	Field    string                    `json:"field,omitempty"`
	Message  string                    `json:"message,omitempty"`
}

// Client is one streaming connection.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// HandleStream upgrades the connection, waits for a StreamRequest and streams
// one frame per integration step. Parameters and options missing from the
// request fall back to the reference and configured defaults. The fps query
// sets the pacing, capped by STREAM_MAX_FPS and MaxFPS; fps=0 streams as fast
// as the connection allows.
func HandleStream(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fps, err := streamFPS(c.Query("fps"), cfg.StreamMaxFPS)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		client := &Client{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan []byte, 256),
		}
		log.Printf("[WS] Stream %s connected (fps=%d)", client.id, fps)

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		requests := make(chan request)
		defaults := cfg.SimulationOptions()

		go client.writePump()
		go client.readPump(ctx, cancel, defaults, requests)

	wait:
		for {
			select {
			case r := <-requests:
				if r.err != nil {
					client.emit(ctx, Frame{Type: "error", Message: "invalid request: " + r.err.Error()})
					continue
				}
				if err := cfg.CheckSteps(r.req.Options); err != nil {
					client.emit(ctx, errorFrame(err))
					break wait
				}
				client.stream(ctx, r.req, fps)
				break wait
			case <-ctx.Done():
				break wait
			}
		}
		close(client.send)
		log.Printf("[WS] Stream %s finished", client.id)
	}
}

func streamFPS(raw string, maxFPS int) (int, error) {
	fps := DefaultFPS
	if raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, errors.New("fps must be a non-negative integer")
		}
		fps = v
	}
	if maxFPS > 0 && fps > maxFPS {
		fps = maxFPS
	}
	return min(fps, MaxFPS), nil
}

// stream runs the simulator step by step. Cancellation is checked between
// steps; the engine has no abort hook of its own.
func (c *Client) stream(ctx context.Context, req StreamRequest, fps int) {
	sim, err := physics.NewSimulator(req.Params, req.Options)
	if err != nil {
		c.emit(ctx, errorFrame(err))
		return
	}

	var tick <-chan time.Time
	if fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	index := 0
	if !c.emit(ctx, sampleFrame(index, sim)) {
		return
	}
	for sim.Step() {
		index++
		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				return
			}
		}
		if !c.emit(ctx, sampleFrame(index, sim)) {
			return
		}
	}

	result := sim.Result()
	c.emit(ctx, Frame{Type: "result", Index: index, Time: result.FlightTime, Result: &result})
}

func errorFrame(err error) Frame {
	frame := Frame{Type: "error", Message: err.Error()}
	var cfgErr *physics.ConfigError
	if errors.As(err, &cfgErr) {
		frame.Field = cfgErr.Field
	}
	return frame
}

func sampleFrame(index int, sim *physics.Simulator) Frame {
	last := sim.Last()
	return Frame{
		Type:     "sample",
		Index:    index,
		Time:     sim.State().Time,
		Position: &last.Position,
		Forces:   last.Forces,
	}
}

// emit queues a frame, reporting false once the connection is gone.
func (c *Client) emit(ctx context.Context, frame Frame) bool {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("[WS] Error marshaling %s frame: %v", frame.Type, err)
		return false
	}
	select {
	case c.send <- data:
		return true
	case <-ctx.Done():
		return false
	}
}

type request struct {
	req StreamRequest
	err error
}

// readPump decodes requests until one is accepted and then only watches for
// the peer closing, which cancels the stream.
func (c *Client) readPump(ctx context.Context, cancel context.CancelFunc, defaults physics.Options, requests chan<- request) {
	defer cancel()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	received := false
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Unexpected close for stream %s: %v", c.id, err)
			}
			return
		}
		if received {
			continue
		}

		r := request{req: StreamRequest{Params: presets.DefaultParameters(), Options: defaults}}
		if r.err = json.Unmarshal(message, &r.req); r.err == nil {
			received = true
		}
		select {
		case requests <- r:
		case <-ctx.Done():
			return
		}
	}
}

// writePump writes queued frames and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] Write error for stream %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] Ping error for stream %s: %v", c.id, err)
				return
			}
		}
	}
}

package http

import (
	"encoding/json"
	"log"
	"net/http"

	"din8580-quiz-service/internal/app"
	"github.com/gorilla/websocket"
)

// WSHandler exposes the quiz session over a websocket: one connection is
// one learner session, starting on the START screen. All messages are
// processed in arrival order, matching the synchronous event model of the
// quiz state machine.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Answer string `json:"answer"`
}

type clearPayload struct {
	Confirm bool `json:"confirm"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type viewPayload struct {
	View string `json:"view"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and drives one quiz session until the
// client disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.NewSession(r.Context())
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	write := func(msg any) bool {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("ws write error: %v", err)
			return false
		}
		return true
	}
	writeErr := func(err error) bool {
		return write(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
	}

	write(outboundMessage[viewPayload]{Type: "view", Payload: viewPayload{View: session.View().String()}})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		switch inbound.Type {
		case "start":
			qv, err := session.StartQuiz()
			if err != nil {
				writeErr(err)
				continue
			}
			write(outboundMessage[app.QuestionView]{Type: "question", Payload: qv})

		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				write(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}})
				continue
			}
			if err := session.SelectAnswer(payload.Answer); err != nil {
				writeErr(err)
			}

		case "submit":
			fb, ok, err := session.SubmitAnswer()
			if err != nil {
				writeErr(err)
				continue
			}
			// A submit without a selection, or after the answer is locked,
			// is a silent no-op: the client's controls are simply disabled.
			if ok {
				write(outboundMessage[app.Feedback]{Type: "feedback", Payload: fb})
			}

		case "advance":
			next, summary, err := session.Advance(r.Context())
			if err != nil {
				writeErr(err)
				continue
			}
			if next != nil {
				write(outboundMessage[app.QuestionView]{Type: "question", Payload: *next})
			} else {
				write(outboundMessage[app.RunSummary]{Type: "result", Payload: *summary})
			}

		case "stats":
			report, err := session.OpenStats(r.Context())
			if err != nil {
				writeErr(err)
				continue
			}
			write(outboundMessage[app.Report]{Type: "stats", Payload: report})

		case "restart":
			if err := session.Restart(); err != nil {
				writeErr(err)
				continue
			}
			write(outboundMessage[viewPayload]{Type: "view", Payload: viewPayload{View: session.View().String()}})

		case "back":
			if err := session.Back(); err != nil {
				writeErr(err)
				continue
			}
			write(outboundMessage[viewPayload]{Type: "view", Payload: viewPayload{View: session.View().String()}})

		case "clear":
			var payload clearPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				write(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid clear payload"}})
				continue
			}
			if err := session.ClearHistory(r.Context(), payload.Confirm); err != nil {
				writeErr(err)
				continue
			}
			write(outboundMessage[struct{}]{Type: "cleared"})

		default:
			write(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}
}

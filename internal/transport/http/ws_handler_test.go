package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"din8580-quiz-service/internal/app"
	"din8580-quiz-service/internal/domain"
	"din8580-quiz-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.ResultStore) {
	t.Helper()
	store := memory.NewResultStore()
	banks := memory.NewBankRepository(memory.NewDefaultBankLoader(), time.Minute)
	service := app.NewQuizService(store, banks, domain.DefaultBankID)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service).ServeWS)
	return httptest.NewServer(mux), store
}

func dialWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readNext(t *testing.T, conn *websocket.Conn, expect string) (string, json.RawMessage) {
	t.Helper()
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%s)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}

func send(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	msg := map[string]any{"type": msgType}
	if payload != nil {
		msg["payload"] = payload
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

func TestWebSocketFullQuizFlow(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()
	conn := dialWS(t, server)
	defer conn.Close()

	// Fresh session lands on the start screen.
	_, payload := readNext(t, conn, "view")
	var view viewPayload
	_ = json.Unmarshal(payload, &view)
	if view.View != "START" {
		t.Fatalf("expected START, got %s", view.View)
	}

	bank := domain.DefaultBank()
	send(t, conn, "start", nil)

	for answered := 0; answered < len(bank.Questions); answered++ {
		_, payload := readNext(t, conn, "question")
		var qv app.QuestionView
		if err := json.Unmarshal(payload, &qv); err != nil {
			t.Fatalf("question payload: %v", err)
		}
		q, ok := bank.Question(qv.ID)
		if !ok {
			t.Fatalf("unknown question id %d", qv.ID)
		}

		send(t, conn, "select", map[string]any{"answer": q.CorrectAnswer})
		send(t, conn, "submit", nil)
		_, payload = readNext(t, conn, "feedback")
		var fb app.Feedback
		_ = json.Unmarshal(payload, &fb)
		if !fb.Correct || fb.Explanation == "" {
			t.Fatalf("expected correct feedback with explanation, got %+v", fb)
		}
		send(t, conn, "advance", nil)
	}

	_, payload = readNext(t, conn, "result")
	var summary app.RunSummary
	_ = json.Unmarshal(payload, &summary)
	if summary.Score != "10 / 10" {
		t.Fatalf("expected 10 / 10, got %q", summary.Score)
	}

	// RESULT -> TEACHER shows aggregated history for the single run.
	send(t, conn, "stats", nil)
	_, payload = readNext(t, conn, "stats")
	var report app.Report
	_ = json.Unmarshal(payload, &report)
	if report.EstimatedParticipants != 1 || len(report.Stats) != 10 {
		t.Fatalf("unexpected report: %+v", report)
	}

	send(t, conn, "back", nil)
	readNext(t, conn, "view")
}

func TestWebSocketQuestionFrameWithholdsAnswer(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()
	conn := dialWS(t, server)
	defer conn.Close()

	readNext(t, conn, "view")
	send(t, conn, "start", nil)
	_, payload := readNext(t, conn, "question")

	var raw map[string]any
	_ = json.Unmarshal(payload, &raw)
	if _, leaked := raw["correctAnswer"]; leaked {
		t.Fatalf("question frame leaked the correct answer: %s", payload)
	}
	if _, leaked := raw["explanation"]; leaked {
		t.Fatalf("question frame leaked the explanation: %s", payload)
	}
}

func TestWebSocketRejectsInvalidTransition(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()
	conn := dialWS(t, server)
	defer conn.Close()

	readNext(t, conn, "view")
	send(t, conn, "start", nil)
	readNext(t, conn, "question")

	// Stats are unreachable mid-quiz.
	send(t, conn, "stats", nil)
	readNext(t, conn, "error")
}

func TestWebSocketClearNeedsConfirmation(t *testing.T) {
	server, store := newTestServer(t)
	defer server.Close()
	conn := dialWS(t, server)
	defer conn.Close()

	seedHistory(t, store)

	readNext(t, conn, "view")
	send(t, conn, "stats", nil)
	readNext(t, conn, "stats")

	send(t, conn, "clear", map[string]any{"confirm": false})
	readNext(t, conn, "error")

	send(t, conn, "clear", map[string]any{"confirm": true})
	readNext(t, conn, "cleared")

	if loaded, _ := store.Load(context.Background()); len(loaded) != 0 {
		t.Fatalf("expected empty history after confirmed clear, got %d", len(loaded))
	}
}

func seedHistory(t *testing.T, store *memory.ResultStore) {
	t.Helper()
	if err := store.Append(context.Background(), []domain.QuizResult{
		{QuestionID: 1, IsCorrect: true, Timestamp: 1},
		{QuestionID: 2, IsCorrect: false, Timestamp: 2},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

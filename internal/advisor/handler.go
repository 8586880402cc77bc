package advisor

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"acsim/internal/model"
	"acsim/internal/repository"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

func Handler(
	specRepo *repository.SpecRepository,
	session *SessionStore,
	client *openai.Client,
	priceKWh float64,
) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)

		history, _ := session.Get(req.SessionID)

		contextText, err := buildContext(context.Background(), req, specRepo, session, priceKWh)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		answer, err := CallLLM(
			client,
			SystemPrompt(),
			contextText,
			history,
			req.Message,
		)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		log.Printf("Resposta do assistente: %s", answer)

		// salva histórico
		session.Append(req.SessionID, model.ChatMessage{
			Role:    "user",
			Content: req.Message,
		})
		session.Append(req.SessionID, model.ChatMessage{
			Role:    "assistant",
			Content: answer,
		})

		json.NewEncoder(w).Encode(ChatResponse{
			Answer: answer,
		})
	}
}

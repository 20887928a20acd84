package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/services"
)

type chatHandler struct {
	responder Responder
	logger    zerolog.Logger
	completer services.Completer
}

func newChatHandler(completer services.Completer) chatHandler {
	logger := log.With().Str("handlerName", "chatHandler").Logger()

	return chatHandler{
		responder: NewResponder(logger),
		logger:    logger,
		completer: completer,
	}
}

type chatPayload struct {
	Message string `json:"message"`
}

// chat answers a single visitor message. There is no conversation state;
// each request stands alone.
func (h chatHandler) chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chatPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(payload.Message) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if !h.completer.Configured() {
			h.responder.WriteError(w, errs.NewServiceUnavailableError(
				"Chat is not configured", "CHAT_NOT_CONFIGURED"))
			return
		}

		reply, err := h.completer.Complete(r.Context(), payload.Message)
		if err != nil {
			h.logger.Error().Err(err).Msg("Chat completion failed")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to generate reply", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"reply":   reply,
		})
	}
}

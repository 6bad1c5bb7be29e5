// Package contact serves the contact form endpoint. Validation failures are
// surfaced as field-level messages; submissions never touch the state store.
package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"guitar-storefront/internal/logger"
)

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"message" validate:"required,min=10"`
}

// Handler validates and accepts contact messages.
type Handler struct {
	validate *validator.Validate
}

// NewHandler creates a contact handler.
func NewHandler() *Handler {
	return &Handler{validate: validator.New()}
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(msg); err != nil {
		fields := map[string]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = fieldMessage(fe)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": fields})
		return
	}

	// No mail backend exists; accepted messages are only logged.
	logger.Infof("contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Subject)
	w.WriteHeader(http.StatusAccepted)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "too short"
	default:
		return "invalid value"
	}
}

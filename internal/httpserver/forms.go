package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/guidedbycompassion/website/internal/forms"
	"github.com/guidedbycompassion/website/internal/notification"
)

// Form bodies are small JSON payloads; anything larger is abuse.
const maxFormBody = 1 << 20

func decodeForm(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func writeDispatchResult(w http.ResponseWriter, res notification.DispatchResult) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}

func handleContactForm(composer *notification.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ContactForm
		if !decodeForm(w, r, &form) {
			return
		}
		writeDispatchResult(w, composer.DispatchContact(r.Context(), form))
	}
}

func handleConsultationForm(composer *notification.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ConsultationForm
		if !decodeForm(w, r, &form) {
			return
		}
		writeDispatchResult(w, composer.DispatchConsultation(r.Context(), form))
	}
}

func handleReferralForm(composer *notification.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ReferralForm
		if !decodeForm(w, r, &form) {
			return
		}
		writeDispatchResult(w, composer.DispatchReferral(r.Context(), form))
	}
}

func handleApplicationForm(composer *notification.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ApplicationForm
		if !decodeForm(w, r, &form) {
			return
		}
		writeDispatchResult(w, composer.DispatchApplication(r.Context(), form))
	}
}

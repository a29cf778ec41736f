package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
)

// statusResponse is the JSON envelope for submit endpoints.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// dataResponse is the JSON envelope for read endpoints.
type dataResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// RespondJSON writes any payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess writes the success envelope.
func RespondSuccess(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, statusResponse{Status: "success", Message: message})
}

// RespondData writes a read result inside the success envelope.
func RespondData(w http.ResponseWriter, data interface{}) {
	RespondJSON(w, http.StatusOK, dataResponse{Status: "success", Data: data})
}

// RespondError writes the error envelope with an arbitrary status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, statusResponse{Status: "error", Message: message})
}

// RespondBadRequest writes a 400 error envelope.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 error envelope.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError writes a 500 error envelope with a generic message.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondFragment writes the small HTML page shown after an action link
// is clicked. Clients that scrape the result read the first paragraph.
func RespondFragment(w http.ResponseWriter, status int, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w,
		`<!DOCTYPE html><html><head><title>%s</title></head><body><div class="card"><h1>%s</h1><p>%s</p></div></body></html>`,
		html.EscapeString(title),
		html.EscapeString(title),
		html.EscapeString(message),
	)
}

package helpers

import (
	"encoding/json"
	"net/http"
)

// Envelope - единый формат ответа: {"success": bool, ...payload} или {"success": false, "error": "..."}.
type Envelope map[string]any

func JSON(w http.ResponseWriter, status int, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		if k == "success" {
			continue
		}
		body[k] = v
	}
	write(w, status, body)
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Envelope{"success": false, "error": errMsg})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

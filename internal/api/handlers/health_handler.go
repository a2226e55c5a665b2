package handlers

import "net/http"

// HelloMessage is the fixed greeting served on GET /crud.
const HelloMessage = "Hello from the CRUD Lambda Function!"

// Hello answers deployment smoke tests. It touches nothing else.
func Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": HelloMessage})
}

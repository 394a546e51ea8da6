// Command dogserver exposes the Dog language front end over HTTP: a single
// POST /check endpoint lexes and parses a source string and reports
// whether it is well-formed, adapted from the teacher's own rule-checking
// HTTP handler.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/doglang/dogc/internal/check"
)

type checkRequest struct {
	Source   string `json:"source"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

type checkResponse struct {
	OK          bool     `json:"ok"`
	RootLabel   string   `json:"root_label,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func checkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, checkResponse{
			OK:          false,
			Diagnostics: []string{fmt.Sprintf("invalid JSON request body: %s", err)},
		})
		return
	}

	result := check.Text(req.Source, req.FileName, req.FilePath)
	if !result.OK() {
		writeJSON(w, http.StatusOK, checkResponse{
			OK:          false,
			Diagnostics: []string{result.Err.Error()},
		})
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		OK:        true,
		RootLabel: result.Node.Label,
	})
}

func main() {
	http.HandleFunc("/check", checkHandler)

	log.Println("dogserver listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

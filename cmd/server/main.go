// Command server exposes lemma construction and lookup as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/lower?text=<text>
//	POST /api/lemma      body: {"text":"...","gender":"F",...}
//	GET  /api/lookup?word=<word>
//	GET  /api/genders
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/rs/cors"
	rn "github.com/russiannouns/russiannouns"
)

// ---- JSON types ---------------------------------------------------------

type lemmaRequest struct {
	Text           string `json:"text"`
	Gender         string `json:"gender"`
	PluraliaTantum bool   `json:"pluralia_tantum"`
	Indeclinable   bool   `json:"indeclinable"`
	Animate        bool   `json:"animate"`
	Surname        bool   `json:"surname"`
	Name           bool   `json:"name"`
	Transport      bool   `json:"transport"`
	Watercraft     bool   `json:"watercraft"`
}

type lemmaJSON struct {
	Text           string `json:"text"`
	Lower          string `json:"lower"`
	Gender         string `json:"gender"`
	PluraliaTantum bool   `json:"pluralia_tantum"`
	Indeclinable   bool   `json:"indeclinable"`
	Animate        bool   `json:"animate"`
	Surname        bool   `json:"surname"`
	Name           bool   `json:"name"`
	Transport      bool   `json:"transport"`
	Watercraft     bool   `json:"watercraft"`
	Debug          string `json:"debug"`
}

type lowerResponse struct {
	Text  string `json:"text"`
	Lower string `json:"lower"`
}

type lookupResponse struct {
	Word   string      `json:"word"`
	Lemmas []lemmaJSON `json:"lemmas"`
}

type gendersResponse struct {
	Genders map[string]string `json:"genders"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// maxBodyBytes limits the size of a POST /api/lemma body.
const maxBodyBytes = 64 << 10

// ---- helpers ------------------------------------------------------------

func toLemmaJSON(l rn.Lemma) lemmaJSON {
	return lemmaJSON{
		Text:           l.Text(),
		Lower:          l.Lower(),
		Gender:         l.Gender().String(),
		PluraliaTantum: l.IsPluraliaTantum(),
		Indeclinable:   l.IsIndeclinable(),
		Animate:        l.IsAnimate(),
		Surname:        l.IsASurname(),
		Name:           l.IsAName(),
		Transport:      l.IsATransport(),
		Watercraft:     l.IsAWatercraft(),
		Debug:          l.String(),
	}
}

func (req lemmaRequest) build() (rn.Lemma, error) {
	g := rn.GENDERLESS
	if req.Gender != "" {
		var err error
		if g, err = rn.ParseGender(req.Gender); err != nil {
			return rn.Lemma{}, err
		}
	}
	return rn.NewLemmaBuilder(req.Text).
		WithGender(g).
		WithPluraliaTantum(req.PluraliaTantum).
		WithIndeclinable(req.Indeclinable).
		WithAnimate(req.Animate).
		WithSurname(req.Surname).
		WithName(req.Name).
		WithTransport(req.Transport).
		WithWatercraft(req.Watercraft).
		Build()
}

// errorStatus maps library errors to HTTP status codes.
func errorStatus(err error) int {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return http.StatusInternalServerError
	}
	switch gnErr.Code {
	case rn.UnknownGenderError:
		return http.StatusBadRequest
	case rn.InvalidGenderError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// markup used by gn for terminal output
var markup = strings.NewReplacer("<em>", "", "</em>", "")

// errorMessage returns the user-facing text of err.
func errorMessage(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		return markup.Replace(fmt.Sprintf(gnErr.Msg, gnErr.Vars...))
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode error", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleLower() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, lowerResponse{Text: text, Lower: rn.LowerCase(text)})
	}
}

func handleLemma() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req lemmaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		l, err := req.build()
		if err != nil {
			slog.Debug("lemma rejected", "text", req.Text, "error", err)
			writeError(w, errorStatus(err), errorMessage(err))
			return
		}
		writeJSON(w, http.StatusOK, toLemmaJSON(l))
	}
}

func handleLookup(vocab *rn.Vocabulary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if vocab == nil {
			writeError(w, http.StatusServiceUnavailable, "no vocabulary loaded")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		found := vocab.Lookup(word)
		if len(found) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("word %q not found", word))
			return
		}
		out := make([]lemmaJSON, 0, len(found))
		for _, l := range found {
			out = append(out, toLemmaJSON(l))
		}
		writeJSON(w, http.StatusOK, lookupResponse{Word: word, Lemmas: out})
	}
}

func handleGenders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		genders := make(map[string]string, len(rn.Genders))
		for _, g := range rn.Genders {
			genders[g.String()] = g.Description()
		}
		writeJSON(w, http.StatusOK, gendersResponse{Genders: genders})
	}
}

// newHandler returns the API routes wrapped in CORS handling.
// vocab may be nil, lookups then answer 503.
func newHandler(vocab *rn.Vocabulary, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lower", handleLower())
	mux.HandleFunc("/api/lemma", handleLemma())
	mux.HandleFunc("/api/lookup", handleLookup(vocab))
	mux.HandleFunc("/api/genders", handleGenders())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gn.PrintErrorMessage(err)
		os.Exit(1)
	}
}

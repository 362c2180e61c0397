// Package fakeapi provides an in-memory stand-in for the JSONPlaceholder
// posts API. It reproduces the behaviors the client depends on: seeded posts
// and comments, create assigning ids from 101, 404 with an empty JSON object
// body, PATCH merging fields, and _limit truncation. Unlike the real service
// it persists creates, so create-then-get round-trips are testable.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// createIDStart is the first id handed out for created posts, matching the
// real service's answer of 101 on a 100-post dataset.
const createIDStart = 101

// createPayload is the accepted body for POST /posts.
type createPayload struct {
	Title  string `json:"title"  validate:"required"`
	Body   string `json:"body"   validate:"required"`
	UserID int    `json:"userId" validate:"required,gt=0"`
}

// Server is an in-memory posts and comments API.
type Server struct {
	mu       sync.Mutex
	posts    map[int]placeholder.Post
	comments map[int][]placeholder.Comment
	nextID   int

	delay      time.Duration
	failStatus int

	router   *mux.Router
	validate *validator.Validate
}

// New creates a server seeded with a small fixed dataset.
func New() *Server {
	s := &Server{
		posts:    make(map[int]placeholder.Post),
		comments: make(map[int][]placeholder.Comment),
		nextID:   createIDStart,
		validate: validator.New(),
	}

	s.seed()

	router := mux.NewRouter()
	router.HandleFunc("/posts", s.handleList).Methods(http.MethodGet)
	router.HandleFunc("/posts", s.handleCreate).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", s.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", s.handlePatch).Methods(http.MethodPatch)
	router.HandleFunc("/posts/{id}", s.handleDelete).Methods(http.MethodDelete)
	router.HandleFunc("/posts/{id}/comments", s.handleComments).Methods(http.MethodGet)
	s.router = router

	return s
}

func (s *Server) seed() {
	for i := 1; i <= 10; i++ {
		s.posts[i] = placeholder.Post{
			ID:     i,
			Title:  "seed post " + strconv.Itoa(i),
			Body:   "seed body " + strconv.Itoa(i),
			UserID: (i-1)/5 + 1,
		}
	}

	s.comments[1] = []placeholder.Comment{
		{ID: 1, PostID: 1, Name: "first comment", Email: "one@example.com", Body: "well said"},
		{ID: 2, PostID: 1, Name: "second comment", Email: "two@example.com", Body: "agreed"},
	}
	s.comments[2] = []placeholder.Comment{
		{ID: 3, PostID: 2, Name: "third comment", Email: "three@example.com", Body: "interesting"},
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		delay := s.delay
		failStatus := s.failStatus
		s.failStatus = 0
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}

		if failStatus != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(failStatus)
			_, _ = w.Write([]byte("{}"))

			return
		}

		s.router.ServeHTTP(w, r)
	})
}

// SetDelay makes every subsequent response wait before being written. Used
// to exercise client timeouts.
func (s *Server) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delay = d
}

// FailNext makes the next request answer with the given status and an empty
// JSON object body, regardless of route.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failStatus = status
}

// PostCount reports how many posts the server currently holds.
func (s *Server) PostCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.posts)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()

	posts := make([]placeholder.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}

	s.mu.Unlock()

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	if raw := r.URL.Query().Get("_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err == nil && limit >= 0 && limit < len(posts) {
			posts = posts[:limit]
		}
	}

	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload

	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})

		return
	}

	err = s.validate.Struct(&payload)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})

		return
	}

	s.mu.Lock()

	post := placeholder.Post{
		ID:     s.nextID,
		Title:  payload.Title,
		Body:   payload.Body,
		UserID: payload.UserID,
	}
	s.posts[post.ID] = post
	s.nextID++

	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	post, ok := s.posts[pathID(r)]
	s.mu.Unlock()

	if !ok {
		writeNotFound(w)

		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string

	err := json.NewDecoder(r.Body).Decode(&fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[pathID(r)]
	if !ok {
		writeNotFound(w)

		return
	}

	if title, ok := fields["title"]; ok {
		post.Title = title
	}

	if body, ok := fields["body"]; ok {
		post.Body = body
	}

	s.posts[post.ID] = post

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.posts, pathID(r))
	s.mu.Unlock()

	// The real service answers 200 with an empty object even for unknown ids.
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, known := s.posts[pathID(r)]
	comments := s.comments[pathID(r)]
	s.mu.Unlock()

	if !known {
		writeNotFound(w)

		return
	}

	if comments == nil {
		comments = []placeholder.Comment{}
	}

	writeJSON(w, http.StatusOK, comments)
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("{}"))
}

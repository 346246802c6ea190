package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"food-explorer/internal/domain"
	"food-explorer/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Search      service.SearchServiceInterface
	Votes       service.VoteServiceInterface
	Entries     service.EntryServiceInterface
	Restaurants service.RestaurantServiceInterface
	QR          service.QRGenerator
	Hub         *service.Hub
}

func NewHandler(
	searchSvc service.SearchServiceInterface,
	voteSvc service.VoteServiceInterface,
	entrySvc service.EntryServiceInterface,
	restSvc service.RestaurantServiceInterface,
	qr service.QRGenerator,
	hub *service.Hub,
) *Handler {
	return &Handler{
		Search:      searchSvc,
		Votes:       voteSvc,
		Entries:     entrySvc,
		Restaurants: restSvc,
		QR:          qr,
		Hub:         hub,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/search", h.search).Methods("GET")
	r.HandleFunc("/api/search/events", h.searchEvents).Methods("GET")
	r.HandleFunc("/api/dishes/top", h.topDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{dishId}/vote", h.vote).Methods("POST")
	r.HandleFunc("/api/entries", h.addEntry).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "food-explorer",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func criteriaFromQuery(r *http.Request) domain.SearchCriteria {
	q := r.URL.Query()
	return domain.SearchCriteria{
		Dish:       q.Get("dish"),
		City:       q.Get("city"),
		Restaurant: q.Get("restaurant"),
	}
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result, err := h.Search.Search(r.Context(), criteriaFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// searchEvents streams a fresh ResultSet to the client every time a vote
// lands anywhere, via server-sent events. Criteria are bound at subscribe
// time; the client reconnects when its form changes.
func (h *Handler) searchEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	criteria := criteriaFromQuery(r)
	id, signal := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	refresher := service.NewRefresher(h.Search)
	send := func() {
		result, current, err := refresher.Run(r.Context(), criteria)
		if err != nil {
			log.Printf("[events] search failed: %v", err)
			return
		}
		if !current {
			return
		}
		payload, _ := json.Marshal(result)
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	send()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-signal:
			send()
		}
	}
}

func (h *Handler) topDishes(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := h.Search.TopDishes(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(mux.Vars(r)["dishId"])
	if err != nil {
		http.Error(w, "Invalid dish id", http.StatusBadRequest)
		return
	}

	var payload struct {
		IsUpvote bool `json:"is_upvote"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Votes.Vote(r.Context(), dishID, payload.IsUpvote)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.NewEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Entries.Add(entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrDuplicateDish):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Restaurants.Get(id); err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	qrCode, err := h.QR.Generate(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

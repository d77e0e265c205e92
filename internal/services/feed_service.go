package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"danakita/internal/models/response_models"
)

type FeedPublisherInterface interface {
	PublishSettled(event response_models.FeedEvent)
}

// DonationFeed fans settled donations out to connected websocket clients.
// Register/unregister/broadcast all flow through channels consumed by a single
// run loop.
type DonationFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewDonationFeed() *DonationFeed {
	f := &DonationFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
	go f.run()
	return f
}

func (f *DonationFeed) run() {
	for {
		select {
		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()
		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()
		case message := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("feed: dropping client: %v", err)
					delete(f.clients, conn)
					conn.Close()
				}
			}
			f.mu.Unlock()
		}
	}
}

func (f *DonationFeed) Register(conn *websocket.Conn) {
	f.register <- conn
}

func (f *DonationFeed) Unregister(conn *websocket.Conn) {
	f.unregister <- conn
}

func (f *DonationFeed) PublishSettled(event response_models.FeedEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("feed: marshal event: %v", err)
		return
	}
	select {
	case f.broadcast <- message:
	default:
		// A full buffer means no one is reading fast enough; the feed is
		// best-effort so the event is dropped rather than blocking settlement.
		log.Printf("feed: broadcast buffer full, dropping event for %s", event.OrderID)
	}
}

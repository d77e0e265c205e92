package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"danakita/internal/services"
)

type FeedController struct {
	feed     *services.DonationFeed
	upgrader websocket.Upgrader
}

func NewFeedController(feed *services.DonationFeed) *FeedController {
	return &FeedController{
		feed: feed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// DonationFeedHandler upgrades the connection and keeps it registered until
// the client goes away. The read loop only exists to notice disconnects.
func (fc *FeedController) DonationFeedHandler(c *gin.Context) {
	conn, err := fc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed: upgrade failed: %v", err)
		return
	}

	fc.feed.Register(conn)

	go func() {
		defer fc.feed.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

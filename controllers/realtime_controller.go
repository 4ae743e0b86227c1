package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	users     *services.UserService
	hub       *services.RealtimeHub
	jwtSecret string
}

func NewRealtimeController(users *services.UserService, hub *services.RealtimeHub, jwtSecret string) *RealtimeController {
	return &RealtimeController{users: users, hub: hub, jwtSecret: jwtSecret}
}

// Progress upgrades to a websocket and streams goal events for the user.
// Browsers can't set headers on websocket dials, so the token rides in
// the query string.
func (ctl *RealtimeController) Progress(c *gin.Context) {
	phone, err := utils.ParseJWT(c.Query("token"), ctl.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: user.ID, Conn: conn}
	ctl.hub.Register(client)

	// Reader loop exists only to detect the close.
	go func() {
		defer ctl.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

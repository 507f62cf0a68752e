package controllers

import (
	"log"
	"net/http"
	"time"

	"sysmond/internal/middleware"
	"sysmond/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket authenticates a display client and attaches it to the
// snapshot hub.
func (a *API) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		log.Printf("[SECURITY-WARNING] Failed authentication from IP %s: missing token", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := a.auth.ValidateToken(token)
	if err != nil {
		log.Printf("[SECURITY-WARNING] Failed authentication from IP %s: %v", c.ClientIP(), err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &services.ClientConnection{
		ID:    c.ClientIP() + "-" + claims.ClientName,
		Conn:  ws,
		Send:  make(chan services.Message, 256),
		Close: make(chan bool),
	}

	a.hub.Register(client)

	go a.readPump(client)
	go writePump(client)
}

// readPump consumes client messages until the connection drops.
func (a *API) readPump(client *services.ClientConnection) {
	defer func() {
		a.hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	for {
		var msg services.Message
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}

		switch msg.Type {
		case "ping":
			select {
			case client.Send <- services.Message{Type: "pong", Timestamp: time.Now()}:
			case <-client.Close:
				return
			default:
				return
			}

		case "unsubscribe":
			return

		default:
			log.Printf("[WS] Unknown message type: %s", msg.Type)
		}
	}
}

// writePump pushes hub frames out to the client.
func writePump(client *services.ClientConnection) {
	defer client.Conn.Close()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteJSON(msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[WS] Write error: %v", err)
				}
				return
			}

		case <-client.Close:
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// HandleGetToken issues a viewer token for the websocket boundary.
func (a *API) HandleGetToken(c *gin.Context) {
	clientName := c.DefaultQuery("client_name", "sysmond-viewer")

	validator := middleware.NewInputValidator()
	if !validator.ValidateClientName(clientName) {
		log.Printf("[SECURITY-WARNING] Invalid client name from IP %s", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client name format"})
		return
	}

	token, err := a.auth.GenerateToken(clientName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	log.Printf("[SECURITY] Token generated for client %s from IP %s", clientName, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"client": clientName,
		"expiry": a.auth.TokenExpiry(),
	})
}

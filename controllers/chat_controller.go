package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type chatQuestion struct {
	Disease  string `json:"disease"`
	FoodName string `json:"food_name"`
}

// GET /ws/chat — advisory chat. Each question is answered immediately and
// the reply is broadcast to every open session of the same user.
func AdvisoryChat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}

	client := &services.ChatClient{UserID: c.GetUint("userID"), Conn: conn}
	chatHub.Register(client)
	defer chatHub.Unregister(client)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var q chatQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			chatHub.Broadcast(client.UserID, gin.H{"error": "invalid message"})
			continue
		}

		result, err := adviceSvc.GetAdvice(q.Disease, q.FoodName, nil)
		if err != nil {
			chatHub.Broadcast(client.UserID, gin.H{"error": err.Error()})
			continue
		}
		chatHub.Broadcast(client.UserID, gin.H{"question": q, "advice": result})
	}
}

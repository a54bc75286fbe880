package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"wax/pkg/redis"
	eventtypes "wax/pkg/types/eventtype"
	"wax/pkg/types/sock"

	"github.com/gorilla/websocket"
)

// client: 동시 쓰기를 막기 위해 커넥션별 뮤텍스를 유지
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg sock.WebSocketMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

type RelayService struct {
	redisClient *redis.RedisClient
	clients     sync.Map // userID(int) -> *client
}

func NewRelayService(redisClient *redis.RedisClient) *RelayService {
	return &RelayService{redisClient: redisClient}
}

// RegisterClient: 접속한 브라우저 등록
func (s *RelayService) RegisterClient(userID int, conn *websocket.Conn) error {
	_, ok := s.clients.Load(userID)
	if ok {
		return fmt.Errorf("user %d already connected to relay", userID)
	}

	s.clients.Store(userID, &client{conn: conn})
	log.Printf("User %d connected to relay", userID)
	return nil
}

// UnregisterClient: 접속 해제
func (s *RelayService) UnregisterClient(userID int) {
	s.clients.Delete(userID)
	log.Printf("User %d disconnected from relay", userID)
}

// Start: Redis 채널 구독을 시작하고 수신 이벤트를 클라이언트로 중계
func (s *RelayService) Start() {
	go s.consumePublic()
	go s.consumePrivate()

	log.Println("✅ Relay subscribed to lobby, live-status and user channels")
}

// 공개 채널(lobby, live-status)은 접속한 모든 클라이언트에게 전달
func (s *RelayService) consumePublic() {
	pubsub := s.redisClient.Subscribe(redis.ChannelLobby, redis.ChannelLiveStatus)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		frame, err := BuildFrame(msg.Channel, []byte(msg.Payload))
		if err != nil {
			log.Printf("Failed to build frame for channel %s: %v", msg.Channel, err)
			continue
		}

		s.clients.Range(func(key, value interface{}) bool {
			if err := value.(*client).send(frame); err != nil {
				log.Printf("Failed to relay event to user %v: %v", key, err)
			}
			return true
		})
	}
}

// 프라이빗 채널(user:{id})은 해당 유저에게만 전달
func (s *RelayService) consumePrivate() {
	pubsub := s.redisClient.PSubscribe(redis.ChannelUserGlob)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		userID, err := UserIDFromChannel(msg.Channel)
		if err != nil {
			log.Printf("Invalid private channel name %s: %v", msg.Channel, err)
			continue
		}

		value, ok := s.clients.Load(userID)
		if !ok {
			continue
		}

		frame, err := BuildFrame(msg.Channel, []byte(msg.Payload))
		if err != nil {
			log.Printf("Failed to build frame for channel %s: %v", msg.Channel, err)
			continue
		}

		if err := value.(*client).send(frame); err != nil {
			log.Printf("Failed to relay private event to user %d: %v", userID, err)
		}
	}
}

// BuildFrame: Redis 이벤트를 브라우저용 프레임으로 변환
func BuildFrame(channel string, payload []byte) (sock.WebSocketMessage, error) {
	var event eventtypes.EventPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return sock.WebSocketMessage{}, fmt.Errorf("failed to unmarshal event payload: %v", err)
	}

	return sock.WebSocketMessage{
		Channel: channel,
		Event:   event.EventType,
		Payload: event.Data,
	}, nil
}

// UserIDFromChannel: "user:{id}" 채널 이름에서 유저 ID 추출
func UserIDFromChannel(channel string) (int, error) {
	idPart, found := strings.CutPrefix(channel, "user:")
	if !found {
		return 0, fmt.Errorf("channel %s is not a user channel", channel)
	}

	userID, err := strconv.Atoi(idPart)
	if err != nil {
		return 0, fmt.Errorf("channel %s has non-numeric user id", channel)
	}

	return userID, nil
}

package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"wax/pkg/dto"
	"wax/pkg/helper"
	"wax/pkg/logger"
	"wax/pkg/models"
	"wax/pkg/types/commontype"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/samber/lo"
)

type PresenceRepository interface {
	Get(userID int) (*models.Presence, error)
	Upsert(presence models.Presence) error
	Delete(userID int) error
	ListSince(cutoff time.Time) ([]models.Presence, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type Broadcaster interface {
	PublishLobby(payload eventtypes.EventPayload) error
	PublishUser(userID int, payload eventtypes.EventPayload) error
	PublishLiveStatus(payload eventtypes.EventPayload) error
}

type LiveStore interface {
	SetLiveDJ(userID int) error
	GetLiveDJ() (int, error)
	ClearLiveDJ() error
}

type PresenceService struct {
	repo    PresenceRepository
	emitter Broadcaster
	live    LiveStore

	// 목록 조회 캐시. 인스턴스 로컬이며 정합성 용도가 아니라 읽기량 절감 용도.
	cacheMu  sync.Mutex
	cached   []dto.OnlineDJDTO
	cachedAt time.Time
}

func NewPresenceService(repo PresenceRepository, emitter Broadcaster, live LiveStore) *PresenceService {
	service := &PresenceService{
		repo:    repo,
		emitter: emitter,
		live:    live,
	}

	go service.startStaleSweeper()

	return service
}

// Join: 로비 입장. 같은 유저가 다시 조인해도 프레즌스는 하나만 유지된다.
func (s *PresenceService) Join(userID int, req dto.JoinLobbyDTO) error {
	now := time.Now()
	presence := models.Presence{
		UserID:    userID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Ready:     req.Ready,
		JoinedAt:  now,
		LastSeen:  now,
	}

	if err := s.repo.Upsert(presence); err != nil {
		return fmt.Errorf("failed to join lobby, user %d: %v", userID, err)
	}

	s.invalidateCache()

	event := eventtypes.DJJoinedEvent{
		UserID:    userID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Ready:     req.Ready,
		JoinedAt:  now,
	}
	if err := s.emitter.PublishLobby(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeDJJoined,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to broadcast dj-joined for user %d: %v", userID, err)
	}

	logger.Info(logger.LogEventDJJoin, fmt.Sprintf("DJ %d joined the lobby", userID), event)

	return nil
}

// Heartbeat: last_seen 갱신. ready 플래그가 바뀌면 상태 이벤트를 브로드캐스트한다.
func (s *PresenceService) Heartbeat(userID int, ready bool) error {
	presence, err := s.repo.Get(userID)
	if err != nil {
		return err
	}
	if presence == nil {
		return fmt.Errorf("user %d is not in the lobby", userID)
	}

	readyChanged := presence.Ready != ready

	presence.Ready = ready
	presence.LastSeen = time.Now()

	if err := s.repo.Upsert(*presence); err != nil {
		return fmt.Errorf("failed to refresh presence, user %d: %v", userID, err)
	}

	if readyChanged {
		s.invalidateCache()

		event := eventtypes.DJStatusEvent{UserID: userID, Ready: ready}
		if err := s.emitter.PublishLobby(eventtypes.EventPayload{
			EventType: eventtypes.EventTypeDJStatus,
			Data:      helper.ToJSON(event),
		}); err != nil {
			log.Printf("Failed to broadcast dj-status for user %d: %v", userID, err)
		}
	}

	return nil
}

// Leave: 로비 퇴장
func (s *PresenceService) Leave(userID int) error {
	if err := s.repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to leave lobby, user %d: %v", userID, err)
	}

	s.invalidateCache()

	event := eventtypes.DJLeftEvent{UserID: userID}
	if err := s.emitter.PublishLobby(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeDJLeft,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to broadcast dj-left for user %d: %v", userID, err)
	}

	logger.Info(logger.LogEventDJLeave, fmt.Sprintf("DJ %d left the lobby", userID), event)

	return nil
}

// ListOnline: 2분 이내에 하트비트가 있었던 DJ 목록. 결과는 30초 캐시.
func (s *PresenceService) ListOnline() ([]dto.OnlineDJDTO, error) {
	s.cacheMu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < commontype.PresenceCacheSeconds*time.Second {
		cached := s.cached
		s.cacheMu.Unlock()
		return cached, nil
	}
	s.cacheMu.Unlock()

	cutoff := time.Now().Add(-commontype.PresenceCutoffSeconds * time.Second)
	presences, err := s.repo.ListSince(cutoff)
	if err != nil {
		return nil, err
	}

	djs := lo.Map(presences, func(p models.Presence, _ int) dto.OnlineDJDTO {
		return dto.OnlineDJDTO{
			UserID:    p.UserID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
			Ready:     p.Ready,
			LastSeen:  p.LastSeen,
		}
	})

	s.cacheMu.Lock()
	s.cached = djs
	s.cachedAt = time.Now()
	s.cacheMu.Unlock()

	return djs, nil
}

// Sweep: 2분 넘게 하트비트가 없는 프레즌스를 제거
func (s *PresenceService) Sweep() (int64, error) {
	cutoff := time.Now().Add(-commontype.PresenceCutoffSeconds * time.Second)
	removed, err := s.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		s.invalidateCache()
		log.Printf("Swept %d stale presence records", removed)
	}

	return removed, nil
}

// StartStream: 방송 시작을 라이브 상태 채널로 알림
func (s *PresenceService) StartStream(userID int, djName, title string) error {
	if err := s.live.SetLiveDJ(userID); err != nil {
		return err
	}

	event := eventtypes.StreamStartedEvent{
		DJID:      userID,
		DJName:    djName,
		Title:     title,
		StartedAt: time.Now(),
	}
	if err := s.emitter.PublishLiveStatus(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeStreamStarted,
		Data:      helper.ToJSON(event),
	}); err != nil {
		return fmt.Errorf("failed to broadcast stream-started: %v", err)
	}

	logger.Info(logger.LogEventStreamStart, fmt.Sprintf("DJ %d started streaming", userID), event)

	return nil
}

// StopStream: 방송 종료 알림
func (s *PresenceService) StopStream(userID int) error {
	currentDJ, err := s.live.GetLiveDJ()
	if err != nil {
		return err
	}
	if currentDJ != userID {
		return fmt.Errorf("user %d is not the live dj", userID)
	}

	if err := s.live.ClearLiveDJ(); err != nil {
		return err
	}

	event := eventtypes.StreamStoppedEvent{DJID: userID}
	if err := s.emitter.PublishLiveStatus(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeStreamStopped,
		Data:      helper.ToJSON(event),
	}); err != nil {
		return fmt.Errorf("failed to broadcast stream-stopped: %v", err)
	}

	logger.Info(logger.LogEventStreamStop, fmt.Sprintf("DJ %d stopped streaming", userID), event)

	return nil
}

func (s *PresenceService) invalidateCache() {
	s.cacheMu.Lock()
	s.cached = nil
	s.cacheMu.Unlock()
}

// 스테일 프레즌스 주기적 스윕
func (s *PresenceService) startStaleSweeper() {
	log.Println("🔍 Starting stale presence sweeper...")
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		<-ticker.C
		if _, err := s.Sweep(); err != nil {
			log.Printf("❌ Error while sweeping stale presence: %v", err)
		}
	}
}

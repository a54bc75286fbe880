package service

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"wax/pkg/dto"
	"wax/pkg/helper"
	"wax/pkg/logger"
	"wax/pkg/models"
	"wax/pkg/types/commontype"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/google/uuid"
)

type TakeoverRepository interface {
	GetByKey(key string) (*models.TakeoverRequest, error)
	InsertPair(forward, mirror models.TakeoverRequest) error
	UpdatePairStatus(keys []string, status, streamKey, serverURL string) error
	DeletePair(keys []string) error
	ExpirePending(now time.Time) (int64, error)
}

// DJDirectory: 로비 프레즌스에서 DJ 프로필을 조회
type DJDirectory interface {
	Get(userID int) (*models.Presence, error)
}

type TakeoverService struct {
	repo      TakeoverRepository
	djs       DJDirectory
	emitter   Broadcaster
	serverURL string
}

func NewTakeoverService(repo TakeoverRepository, djs DJDirectory, emitter Broadcaster) *TakeoverService {
	serverURL := os.Getenv("RTMP_SERVER_URL")
	if serverURL == "" {
		serverURL = "rtmp://stream.futurewax.net/live"
	}

	service := &TakeoverService{
		repo:      repo,
		djs:       djs,
		emitter:   emitter,
		serverURL: serverURL,
	}

	go service.startExpirySweeper()

	return service
}

// 정방향 키: target DJ id
func forwardKey(targetID int) string {
	return strconv.Itoa(targetID)
}

// 미러 키: request_{requesterID}
func mirrorKey(requesterID int) string {
	return fmt.Sprintf("request_%d", requesterID)
}

// Request: 라이브 DJ에게 방송 슬롯 양도를 요청
func (s *TakeoverService) Request(requester commontype.DJProfile, targetID int) (*dto.TakeoverStateDTO, error) {
	if requester.ID == targetID {
		return nil, fmt.Errorf("cannot request a takeover from yourself")
	}

	// 대상 DJ에게 이미 대기 중인 요청이 있으면 거부
	existing, err := s.repo.GetByKey(forwardKey(targetID))
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsPending() {
		return nil, fmt.Errorf("dj %d already has a pending takeover request", targetID)
	}

	// 요청자가 이미 보낸 요청이 있으면 거부
	outbound, err := s.repo.GetByKey(mirrorKey(requester.ID))
	if err != nil {
		return nil, err
	}
	if outbound != nil && outbound.IsPending() {
		return nil, fmt.Errorf("user %d already has an outbound takeover request", requester.ID)
	}

	// 이전 요청의 잔여 문서 정리
	if existing != nil || outbound != nil {
		s.cleanupLeftovers(existing, outbound)
	}

	// 대상 DJ 이름은 로비 프레즌스에서 가져온다. 로비에 없으면 이름 없이 진행.
	targetName := ""
	target, err := s.djs.Get(targetID)
	if err != nil {
		return nil, err
	}
	if target != nil {
		targetName = target.Name
	}

	now := time.Now()
	request := models.TakeoverRequest{
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		TargetID:      targetID,
		TargetName:    targetName,
		Status:        models.TakeoverStatusPending,
		ExpiresAt:     now.Add(commontype.TakeoverExpiryMinutes * time.Minute),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	forward := request
	forward.Key = forwardKey(targetID)
	mirror := request
	mirror.Key = mirrorKey(requester.ID)

	if err := s.repo.InsertPair(forward, mirror); err != nil {
		return nil, fmt.Errorf("failed to create takeover request: %v", err)
	}

	event := eventtypes.TakeoverRequestEvent{
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		TargetID:      targetID,
		ExpiresAt:     request.ExpiresAt,
	}
	if err := s.emitter.PublishUser(targetID, eventtypes.EventPayload{
		EventType: eventtypes.EventTypeTakeoverRequest,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to notify dj %d of takeover request: %v", targetID, err)
	}

	logger.Info(logger.LogEventTakeoverRequest,
		fmt.Sprintf("Takeover requested: %d -> %d", requester.ID, targetID), event)

	return stateDTO(&forward), nil
}

// Approve: 대상 DJ가 요청을 승인. 승인은 한 번만 가능하며,
// 이미 승인됐거나 삭제된 요청은 not found로 처리된다.
func (s *TakeoverService) Approve(targetID int) (*dto.StreamGrantDTO, error) {
	request, err := s.repo.GetByKey(forwardKey(targetID))
	if err != nil {
		return nil, err
	}
	if request == nil || request.Status != models.TakeoverStatusPending {
		return nil, fmt.Errorf("takeover request not found")
	}

	// 만료된 요청은 승인 불가
	if request.IsExpired() {
		keys := []string{forwardKey(targetID), mirrorKey(request.RequesterID)}
		if err := s.repo.UpdatePairStatus(keys, models.TakeoverStatusExpired, "", ""); err != nil {
			log.Printf("Failed to expire takeover request for dj %d: %v", targetID, err)
		}
		return nil, fmt.Errorf("takeover request expired")
	}

	streamKey := uuid.NewString()
	keys := []string{forwardKey(targetID), mirrorKey(request.RequesterID)}
	if err := s.repo.UpdatePairStatus(keys, models.TakeoverStatusApproved, streamKey, s.serverURL); err != nil {
		return nil, fmt.Errorf("failed to approve takeover request: %v", err)
	}

	event := eventtypes.TakeoverApprovedEvent{
		RequesterID: request.RequesterID,
		TargetID:    targetID,
		StreamKey:   streamKey,
		ServerURL:   s.serverURL,
	}
	if err := s.emitter.PublishUser(request.RequesterID, eventtypes.EventPayload{
		EventType: eventtypes.EventTypeTakeoverApproved,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to notify user %d of takeover approval: %v", request.RequesterID, err)
	}

	logger.Info(logger.LogEventTakeoverApprove,
		fmt.Sprintf("Takeover approved: %d -> %d", request.RequesterID, targetID), event)

	return &dto.StreamGrantDTO{StreamKey: streamKey, ServerURL: s.serverURL}, nil
}

// Decline: 대상 DJ가 요청을 거절. 정방향/미러 문서를 모두 제거한다.
func (s *TakeoverService) Decline(targetID int) error {
	request, err := s.repo.GetByKey(forwardKey(targetID))
	if err != nil {
		return err
	}
	if request == nil {
		return fmt.Errorf("takeover request not found")
	}

	keys := []string{forwardKey(targetID), mirrorKey(request.RequesterID)}
	if err := s.repo.DeletePair(keys); err != nil {
		return fmt.Errorf("failed to decline takeover request: %v", err)
	}

	event := eventtypes.TakeoverDeclinedEvent{
		RequesterID: request.RequesterID,
		TargetID:    targetID,
	}
	if err := s.emitter.PublishUser(request.RequesterID, eventtypes.EventPayload{
		EventType: eventtypes.EventTypeTakeoverDeclined,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to notify user %d of takeover decline: %v", request.RequesterID, err)
	}

	return nil
}

// Cancel: 요청자가 본인의 요청을 철회. 정방향/미러 문서를 모두 제거한다.
func (s *TakeoverService) Cancel(requesterID int) error {
	request, err := s.repo.GetByKey(mirrorKey(requesterID))
	if err != nil {
		return err
	}
	if request == nil {
		return fmt.Errorf("takeover request not found")
	}

	keys := []string{forwardKey(request.TargetID), mirrorKey(requesterID)}
	if err := s.repo.DeletePair(keys); err != nil {
		return fmt.Errorf("failed to cancel takeover request: %v", err)
	}

	event := eventtypes.TakeoverCancelledEvent{
		RequesterID: requesterID,
		TargetID:    request.TargetID,
	}
	if err := s.emitter.PublishUser(request.TargetID, eventtypes.EventPayload{
		EventType: eventtypes.EventTypeTakeoverCancelled,
		Data:      helper.ToJSON(event),
	}); err != nil {
		log.Printf("Failed to notify dj %d of takeover cancel: %v", request.TargetID, err)
	}

	return nil
}

// Inbound: 대상 DJ 기준 현재 요청 상태 조회
func (s *TakeoverService) Inbound(targetID int) (*dto.TakeoverStateDTO, error) {
	request, err := s.repo.GetByKey(forwardKey(targetID))
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return stateDTO(request), nil
}

// Outbound: 요청자 기준 현재 요청 상태 조회
func (s *TakeoverService) Outbound(requesterID int) (*dto.TakeoverStateDTO, error) {
	request, err := s.repo.GetByKey(mirrorKey(requesterID))
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return stateDTO(request), nil
}

// Sweep: 만료 시각이 지난 pending 요청을 expired로 전환
func (s *TakeoverService) Sweep() (int64, error) {
	return s.repo.ExpirePending(time.Now())
}

// 처리 완료된 이전 요청 문서 정리
func (s *TakeoverService) cleanupLeftovers(requests ...*models.TakeoverRequest) {
	var keys []string
	for _, request := range requests {
		if request != nil && request.Status != models.TakeoverStatusPending {
			keys = append(keys, request.Key)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := s.repo.DeletePair(keys); err != nil {
		log.Printf("Failed to clean up old takeover requests %v: %v", keys, err)
	}
}

func stateDTO(request *models.TakeoverRequest) *dto.TakeoverStateDTO {
	status := request.Status
	if request.Status == models.TakeoverStatusPending && request.IsExpired() {
		status = models.TakeoverStatusExpired
	}

	return &dto.TakeoverStateDTO{
		RequesterID:   request.RequesterID,
		RequesterName: request.RequesterName,
		TargetID:      request.TargetID,
		TargetName:    request.TargetName,
		Status:        status,
		ExpiresAt:     request.ExpiresAt,
	}
}

// 만료 요청 주기적 스윕
func (s *TakeoverService) startExpirySweeper() {
	log.Println("🔍 Starting takeover expiry sweeper...")
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		<-ticker.C
		expired, err := s.Sweep()
		if err != nil {
			log.Printf("❌ Error while sweeping expired takeover requests: %v", err)
			continue
		}
		if expired > 0 {
			log.Printf("Expired %d stale takeover requests", expired)
		}
	}
}

package service

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"wax/pkg/dto"
	"wax/pkg/logger"
	"wax/pkg/models"
	eventtypes "wax/pkg/types/eventtype"
)

// 0/O, 1/I 같은 혼동 문자를 뺀 코드 알파벳
const giftCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	giftCodePrefix     = "FWGC"
	giftCodeGroups     = 3
	giftCodeGroupLen   = 4
	giftCodeMaxRetries = 5
)

type GiftCardRepo interface {
	Insert(card models.GiftCard) error
	GetByCode(code string) (*models.GiftCard, error)
	Deduct(code string, amountCents int) (*models.GiftCard, error)
	UpdateBalance(code string, balanceCents int, status string) error
}

type GiftCardMailEmitter interface {
	PublishGiftCardMail(event eventtypes.GiftCardMailEvent) error
}

type GiftCardService struct {
	repo    GiftCardRepo
	emitter GiftCardMailEmitter
}

func NewGiftCardService(repo GiftCardRepo, emitter GiftCardMailEmitter) *GiftCardService {
	return &GiftCardService{
		repo:    repo,
		emitter: emitter,
	}
}

// GenerateCode: FWGC-XXXX-XXXX-XXXX 형식의 코드 생성
func GenerateCode() (string, error) {
	buf := make([]byte, giftCodeGroups*giftCodeGroupLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %v", err)
	}

	groups := make([]string, 0, giftCodeGroups+1)
	groups = append(groups, giftCodePrefix)
	for g := 0; g < giftCodeGroups; g++ {
		var sb strings.Builder
		for i := 0; i < giftCodeGroupLen; i++ {
			b := buf[g*giftCodeGroupLen+i]
			sb.WriteByte(giftCodeAlphabet[int(b)%len(giftCodeAlphabet)])
		}
		groups = append(groups, sb.String())
	}

	return strings.Join(groups, "-"), nil
}

// Create: 기프트 카드 발급 후 메일 이벤트 발행
func (s *GiftCardService) Create(purchaserID int, req dto.CreateGiftCardDTO) (*models.GiftCard, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("gift card amount must be positive")
	}
	if req.RecipientEmail == "" {
		return nil, fmt.Errorf("recipient email is required")
	}

	// 코드 충돌 시 재시도
	var card models.GiftCard
	for attempt := 0; ; attempt++ {
		code, err := GenerateCode()
		if err != nil {
			return nil, err
		}

		now := time.Now()
		card = models.GiftCard{
			Code:           code,
			InitialCents:   req.AmountCents,
			BalanceCents:   req.AmountCents,
			Status:         models.GiftCardStatusActive,
			PurchaserID:    purchaserID,
			RecipientEmail: req.RecipientEmail,
			SenderName:     req.SenderName,
			Message:        req.Message,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		err = s.repo.Insert(card)
		if err == nil {
			break
		}
		if attempt >= giftCodeMaxRetries {
			return nil, fmt.Errorf("failed to issue gift card: %v", err)
		}
	}

	if err := s.emitter.PublishGiftCardMail(eventtypes.GiftCardMailEvent{
		Code:           card.Code,
		AmountCents:    card.InitialCents,
		RecipientEmail: card.RecipientEmail,
		SenderName:     card.SenderName,
		Message:        card.Message,
	}); err != nil {
		logger.Error(logger.LogEventError, "Failed to publish gift card mail event", map[string]interface{}{
			"code": card.Code,
		})
	}

	logger.Info(logger.LogEventGiftCardIssue, "Gift card issued", map[string]interface{}{
		"purchaser_id": purchaserID,
		"amount_cents": card.InitialCents,
	})

	return &card, nil
}

// Check: 코드 잔액 조회
func (s *GiftCardService) Check(code string) (*dto.GiftCardBalanceDTO, error) {
	card, err := s.repo.GetByCode(normalizeCode(code))
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("gift card not found")
	}

	return &dto.GiftCardBalanceDTO{
		Code:         card.Code,
		BalanceCents: card.BalanceCents,
		Status:       card.Status,
	}, nil
}

// Redeem: 잔액 차감, 부분 사용 허용
func (s *GiftCardService) Redeem(userID int, req dto.RedeemGiftCardDTO) (*dto.GiftCardBalanceDTO, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("redeem amount must be positive")
	}

	code := normalizeCode(req.Code)
	card, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("gift card not found")
	}
	if card.Status != models.GiftCardStatusActive {
		return nil, fmt.Errorf("gift card is not active")
	}
	if card.BalanceCents < req.AmountCents {
		return nil, fmt.Errorf("insufficient gift card balance")
	}

	// 잔액 검증과 차감은 저장소에서 한 번에 처리한다.
	// 같은 코드를 동시에 사용하면 잔액이 모자란 쪽이 여기서 걸러진다.
	updated, err := s.repo.Deduct(code, req.AmountCents)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("insufficient gift card balance")
	}

	status := updated.Status
	if updated.BalanceCents == 0 {
		status = models.GiftCardStatusDepleted
		if err := s.repo.UpdateBalance(code, 0, status); err != nil {
			return nil, err
		}
	}

	logger.Info(logger.LogEventGiftCardRedeem, "Gift card redeemed", map[string]interface{}{
		"user_id":      userID,
		"amount_cents": req.AmountCents,
	})

	return &dto.GiftCardBalanceDTO{
		Code:         code,
		BalanceCents: updated.BalanceCents,
		Status:       status,
	}, nil
}

// normalizeCode: 공백 제거 및 대문자화
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

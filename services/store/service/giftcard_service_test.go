package service

import (
	"regexp"
	"testing"

	"wax/pkg/dto"
	"wax/pkg/models"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGiftCardRepo struct {
	cards map[string]models.GiftCard
}

func newFakeGiftCardRepo() *fakeGiftCardRepo {
	return &fakeGiftCardRepo{cards: make(map[string]models.GiftCard)}
}

func (f *fakeGiftCardRepo) Insert(card models.GiftCard) error {
	f.cards[card.Code] = card
	return nil
}

func (f *fakeGiftCardRepo) GetByCode(code string) (*models.GiftCard, error) {
	card, ok := f.cards[code]
	if !ok {
		return nil, nil
	}
	return &card, nil
}

func (f *fakeGiftCardRepo) Deduct(code string, amountCents int) (*models.GiftCard, error) {
	card, ok := f.cards[code]
	if !ok || card.Status != models.GiftCardStatusActive || card.BalanceCents < amountCents {
		return nil, nil
	}
	card.BalanceCents -= amountCents
	f.cards[code] = card
	return &card, nil
}

func (f *fakeGiftCardRepo) UpdateBalance(code string, balanceCents int, status string) error {
	card := f.cards[code]
	card.BalanceCents = balanceCents
	card.Status = status
	f.cards[code] = card
	return nil
}

type fakeMailEmitter struct {
	giftCardMails []eventtypes.GiftCardMailEvent
	orderMails    []eventtypes.OrderMailEvent
	orderPaid     []eventtypes.OrderPaidEvent
}

func (f *fakeMailEmitter) PublishGiftCardMail(event eventtypes.GiftCardMailEvent) error {
	f.giftCardMails = append(f.giftCardMails, event)
	return nil
}

func (f *fakeMailEmitter) PublishOrderMail(event eventtypes.OrderMailEvent) error {
	f.orderMails = append(f.orderMails, event)
	return nil
}

func (f *fakeMailEmitter) PublishOrderPaid(event eventtypes.OrderPaidEvent) error {
	f.orderPaid = append(f.orderPaid, event)
	return nil
}

var giftCodePattern = regexp.MustCompile(`^FWGC(-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}){3}$`)

func TestGenerateCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Regexp(t, giftCodePattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestCreateIssuesCardAndSendsMail(t *testing.T) {
	repo := newFakeGiftCardRepo()
	emitter := &fakeMailEmitter{}
	svc := NewGiftCardService(repo, emitter)

	card, err := svc.Create(7, dto.CreateGiftCardDTO{
		AmountCents:    5000,
		RecipientEmail: "friend@example.com",
		SenderName:     "Jae",
		Message:        "happy digging",
	})
	require.NoError(t, err)

	assert.Regexp(t, giftCodePattern, card.Code)
	assert.Equal(t, 5000, card.BalanceCents)
	assert.Equal(t, models.GiftCardStatusActive, card.Status)
	assert.Equal(t, 7, card.PurchaserID)

	require.Len(t, emitter.giftCardMails, 1)
	assert.Equal(t, card.Code, emitter.giftCardMails[0].Code)
	assert.Equal(t, "friend@example.com", emitter.giftCardMails[0].RecipientEmail)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := NewGiftCardService(newFakeGiftCardRepo(), &fakeMailEmitter{})

	_, err := svc.Create(7, dto.CreateGiftCardDTO{AmountCents: 0, RecipientEmail: "a@b.com"})
	assert.Error(t, err)

	_, err = svc.Create(7, dto.CreateGiftCardDTO{AmountCents: 5000})
	assert.Error(t, err)
}

func TestRedeemPartialAmount(t *testing.T) {
	repo := newFakeGiftCardRepo()
	emitter := &fakeMailEmitter{}
	svc := NewGiftCardService(repo, emitter)

	card, err := svc.Create(7, dto.CreateGiftCardDTO{AmountCents: 5000, RecipientEmail: "a@b.com"})
	require.NoError(t, err)

	balance, err := svc.Redeem(9, dto.RedeemGiftCardDTO{Code: card.Code, AmountCents: 1500})
	require.NoError(t, err)
	assert.Equal(t, 3500, balance.BalanceCents)
	assert.Equal(t, models.GiftCardStatusActive, balance.Status)

	// 전액 사용 시 depleted
	balance, err = svc.Redeem(9, dto.RedeemGiftCardDTO{Code: card.Code, AmountCents: 3500})
	require.NoError(t, err)
	assert.Equal(t, 0, balance.BalanceCents)
	assert.Equal(t, models.GiftCardStatusDepleted, balance.Status)

	// 소진된 카드 재사용 불가
	_, err = svc.Redeem(9, dto.RedeemGiftCardDTO{Code: card.Code, AmountCents: 100})
	assert.Error(t, err)
}

func TestRedeemRejectsOverdraw(t *testing.T) {
	repo := newFakeGiftCardRepo()
	svc := NewGiftCardService(repo, &fakeMailEmitter{})

	card, err := svc.Create(7, dto.CreateGiftCardDTO{AmountCents: 1000, RecipientEmail: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Redeem(9, dto.RedeemGiftCardDTO{Code: card.Code, AmountCents: 2000})
	assert.Error(t, err)

	// 실패한 사용은 잔액을 건드리지 않음
	balance, err := svc.Check(card.Code)
	require.NoError(t, err)
	assert.Equal(t, 1000, balance.BalanceCents)
}

// staleBalanceRepo: 조회 시점에는 잔액이 넉넉해 보이지만 그 사이 다른 요청이
// 먼저 차감한 상황을 흉내낸다.
type staleBalanceRepo struct {
	*fakeGiftCardRepo
}

func (s *staleBalanceRepo) GetByCode(code string) (*models.GiftCard, error) {
	card, err := s.fakeGiftCardRepo.GetByCode(code)
	if card != nil {
		card.BalanceCents += 1000
	}
	return card, err
}

func TestRedeemRejectsConcurrentOverdraw(t *testing.T) {
	base := newFakeGiftCardRepo()
	base.cards["FWGC-WXYZ-WXYZ-WXYZ"] = models.GiftCard{
		Code:         "FWGC-WXYZ-WXYZ-WXYZ",
		BalanceCents: 500,
		Status:       models.GiftCardStatusActive,
	}
	svc := NewGiftCardService(&staleBalanceRepo{base}, &fakeMailEmitter{})

	_, err := svc.Redeem(9, dto.RedeemGiftCardDTO{Code: "FWGC-WXYZ-WXYZ-WXYZ", AmountCents: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient")

	// 실제 잔액은 그대로다
	assert.Equal(t, 500, base.cards["FWGC-WXYZ-WXYZ-WXYZ"].BalanceCents)
}

func TestCheckNormalizesCode(t *testing.T) {
	repo := newFakeGiftCardRepo()
	svc := NewGiftCardService(repo, &fakeMailEmitter{})

	card, err := svc.Create(7, dto.CreateGiftCardDTO{AmountCents: 1000, RecipientEmail: "a@b.com"})
	require.NoError(t, err)

	balance, err := svc.Check("  " + card.Code + " ")
	require.NoError(t, err)
	assert.Equal(t, card.Code, balance.Code)

	_, err = svc.Check("FWGC-AAAA-AAAA-AAAA")
	assert.Error(t, err)
}

package service

import (
	"testing"
	"time"

	"wax/pkg/models"
	"wax/pkg/types/commontype"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTakeoverRepo struct {
	docs map[string]models.TakeoverRequest
}

func newFakeTakeoverRepo() *fakeTakeoverRepo {
	return &fakeTakeoverRepo{docs: make(map[string]models.TakeoverRequest)}
}

func (f *fakeTakeoverRepo) GetByKey(key string) (*models.TakeoverRequest, error) {
	doc, ok := f.docs[key]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (f *fakeTakeoverRepo) InsertPair(forward, mirror models.TakeoverRequest) error {
	f.docs[forward.Key] = forward
	f.docs[mirror.Key] = mirror
	return nil
}

func (f *fakeTakeoverRepo) UpdatePairStatus(keys []string, status, streamKey, serverURL string) error {
	for _, key := range keys {
		doc, ok := f.docs[key]
		if !ok {
			continue
		}
		doc.Status = status
		if streamKey != "" {
			doc.StreamKey = streamKey
			doc.ServerURL = serverURL
		}
		doc.UpdatedAt = time.Now()
		f.docs[key] = doc
	}
	return nil
}

func (f *fakeTakeoverRepo) DeletePair(keys []string) error {
	for _, key := range keys {
		delete(f.docs, key)
	}
	return nil
}

func (f *fakeTakeoverRepo) ExpirePending(now time.Time) (int64, error) {
	var expired int64
	for key, doc := range f.docs {
		if doc.Status == models.TakeoverStatusPending && doc.ExpiresAt.Before(now) {
			doc.Status = models.TakeoverStatusExpired
			f.docs[key] = doc
			expired++
		}
	}
	return expired, nil
}

func newTestTakeoverService() (*TakeoverService, *fakeTakeoverRepo, *fakeBroadcaster) {
	repo := newFakeTakeoverRepo()
	presences := newFakePresenceRepo()
	presences.records[2] = models.Presence{UserID: 2, Name: "DJ Two", LastSeen: time.Now()}
	broadcaster := &fakeBroadcaster{}
	return NewTakeoverService(repo, presences, broadcaster), repo, broadcaster
}

func requester(id int, name string) commontype.DJProfile {
	return commontype.DJProfile{ID: id, Name: name}
}

func TestRequestCreatesForwardAndMirrorDocs(t *testing.T) {
	svc, repo, broadcaster := newTestTakeoverService()

	state, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	assert.Equal(t, models.TakeoverStatusPending, state.Status)
	assert.Contains(t, repo.docs, "2")
	assert.Contains(t, repo.docs, "request_1")
	assert.Contains(t, broadcaster.eventTypes(), eventtypes.EventTypeTakeoverRequest)
}

func TestRequestCarriesTargetName(t *testing.T) {
	svc, repo, _ := newTestTakeoverService()

	state, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	assert.Equal(t, "DJ Two", state.TargetName)
	assert.Equal(t, "DJ Two", repo.docs["2"].TargetName)
	assert.Equal(t, "DJ Two", repo.docs["request_1"].TargetName)

	// 양쪽 상태 조회 모두 대상 DJ 이름을 내려준다
	inbound, err := svc.Inbound(2)
	require.NoError(t, err)
	require.NotNil(t, inbound)
	assert.Equal(t, "DJ Two", inbound.TargetName)

	outbound, err := svc.Outbound(1)
	require.NoError(t, err)
	require.NotNil(t, outbound)
	assert.Equal(t, "DJ Two", outbound.TargetName)
}

func TestRequestRejectsSelfTakeover(t *testing.T) {
	svc, _, _ := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 1)
	assert.Error(t, err)
}

func TestRequestRejectsWhenTargetBusy(t *testing.T) {
	svc, _, _ := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	// 다른 요청자가 같은 대상에게 요청하면 거부된다
	_, err = svc.Request(requester(3, "DJ Three"), 2)
	assert.Error(t, err)
}

func TestApproveAtMostOnce(t *testing.T) {
	svc, repo, broadcaster := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	grant, err := svc.Approve(2)
	require.NoError(t, err)
	assert.NotEmpty(t, grant.StreamKey)
	assert.NotEmpty(t, grant.ServerURL)
	assert.Equal(t, models.TakeoverStatusApproved, repo.docs["2"].Status)
	assert.Equal(t, models.TakeoverStatusApproved, repo.docs["request_1"].Status)
	assert.Contains(t, broadcaster.eventTypes(), eventtypes.EventTypeTakeoverApproved)

	// 두 번째 승인 시도는 not found
	_, err = svc.Approve(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApproveFailsOnExpiredRequest(t *testing.T) {
	svc, repo, _ := newTestTakeoverService()

	now := time.Now()
	expired := models.TakeoverRequest{
		RequesterID: 1,
		TargetID:    2,
		Status:      models.TakeoverStatusPending,
		ExpiresAt:   now.Add(-time.Minute),
		CreatedAt:   now.Add(-10 * time.Minute),
	}
	forward := expired
	forward.Key = "2"
	mirror := expired
	mirror.Key = "request_1"
	require.NoError(t, repo.InsertPair(forward, mirror))

	_, err := svc.Approve(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
	assert.Equal(t, models.TakeoverStatusExpired, repo.docs["2"].Status)
}

func TestDeclineRemovesBothDocs(t *testing.T) {
	svc, repo, broadcaster := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	err = svc.Decline(2)
	require.NoError(t, err)

	assert.NotContains(t, repo.docs, "2")
	assert.NotContains(t, repo.docs, "request_1")
	assert.Contains(t, broadcaster.eventTypes(), eventtypes.EventTypeTakeoverDeclined)

	// 이미 삭제된 요청은 거절할 수 없다
	err = svc.Decline(2)
	assert.Error(t, err)
}

func TestCancelRemovesBothDocs(t *testing.T) {
	svc, repo, broadcaster := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	err = svc.Cancel(1)
	require.NoError(t, err)

	assert.NotContains(t, repo.docs, "2")
	assert.NotContains(t, repo.docs, "request_1")
	assert.Contains(t, broadcaster.eventTypes(), eventtypes.EventTypeTakeoverCancelled)
}

func TestInboundAndOutboundLookup(t *testing.T) {
	svc, _, _ := newTestTakeoverService()

	_, err := svc.Request(requester(1, "DJ One"), 2)
	require.NoError(t, err)

	inbound, err := svc.Inbound(2)
	require.NoError(t, err)
	require.NotNil(t, inbound)
	assert.Equal(t, 1, inbound.RequesterID)

	outbound, err := svc.Outbound(1)
	require.NoError(t, err)
	require.NotNil(t, outbound)
	assert.Equal(t, 2, outbound.TargetID)

	// 요청이 없는 유저는 nil
	none, err := svc.Inbound(9)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestOutboundReportsExpiredState(t *testing.T) {
	svc, repo, _ := newTestTakeoverService()

	doc := models.TakeoverRequest{
		Key:         "request_1",
		RequesterID: 1,
		TargetID:    2,
		Status:      models.TakeoverStatusPending,
		ExpiresAt:   time.Now().Add(-time.Minute),
	}
	repo.docs[doc.Key] = doc

	outbound, err := svc.Outbound(1)
	require.NoError(t, err)
	require.NotNil(t, outbound)
	assert.Equal(t, models.TakeoverStatusExpired, outbound.Status)
}

func TestSweepExpiresPendingRequests(t *testing.T) {
	svc, repo, _ := newTestTakeoverService()

	now := time.Now()
	repo.docs["2"] = models.TakeoverRequest{
		Key: "2", RequesterID: 1, TargetID: 2,
		Status: models.TakeoverStatusPending, ExpiresAt: now.Add(-time.Minute),
	}
	repo.docs["request_1"] = models.TakeoverRequest{
		Key: "request_1", RequesterID: 1, TargetID: 2,
		Status: models.TakeoverStatusPending, ExpiresAt: now.Add(-time.Minute),
	}
	repo.docs["4"] = models.TakeoverRequest{
		Key: "4", RequesterID: 3, TargetID: 4,
		Status: models.TakeoverStatusPending, ExpiresAt: now.Add(time.Minute),
	}

	expired, err := svc.Sweep()
	require.NoError(t, err)

	assert.Equal(t, int64(2), expired)
	assert.Equal(t, models.TakeoverStatusExpired, repo.docs["2"].Status)
	assert.Equal(t, models.TakeoverStatusPending, repo.docs["4"].Status)
}

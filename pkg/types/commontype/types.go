package commontype

// SNS 로그인 제공자
const (
	SnsTypeKakao = 1
	SnsTypeNaver = 2
)

// 유저 역할
const (
	RoleListener = "listener"
	RoleDJ       = "dj"
	RoleAdmin    = "admin"
)

// 프레즌스 관련 상수
const (
	PresenceCutoffSeconds = 120 // 2분 동안 하트비트 없으면 오프라인 처리
	PresenceCacheSeconds  = 30  // 목록 조회 캐시 TTL
	TakeoverExpiryMinutes = 5   // 테이크오버 요청 만료 시간
)

// DJProfile: 로비에 노출되는 최소 프로필
type DJProfile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

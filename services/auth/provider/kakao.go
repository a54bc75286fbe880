package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wax/pkg/types/commontype"
)

const kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

// KakaoVerifier: 카카오 access token 검증
type KakaoVerifier struct {
	Client *http.Client
}

func NewKakaoVerifier() *KakaoVerifier {
	return &KakaoVerifier{Client: &http.Client{}}
}

func (v *KakaoVerifier) SnsType() int {
	return commontype.SnsTypeKakao
}

// Verify: access token으로 카카오 사용자 ID 조회
func (v *KakaoVerifier) Verify(accessToken string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, kakaoUserInfoURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := v.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call kakao api: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invalid kakao token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var kakaoResponse struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(body, &kakaoResponse); err != nil {
		return "", fmt.Errorf("failed to parse kakao response: %v", err)
	}
	if kakaoResponse.ID == "" {
		return "", fmt.Errorf("kakao response missing user id")
	}

	return kakaoResponse.ID.String(), nil
}

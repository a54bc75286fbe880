package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wax/pkg/types/commontype"
)

const naverUserInfoURL = "https://openapi.naver.com/v1/nid/me"

// NaverVerifier: 네이버 access token 검증
type NaverVerifier struct {
	Client *http.Client
}

func NewNaverVerifier() *NaverVerifier {
	return &NaverVerifier{Client: &http.Client{}}
}

func (v *NaverVerifier) SnsType() int {
	return commontype.SnsTypeNaver
}

// Verify: access token으로 네이버 사용자 ID 조회
func (v *NaverVerifier) Verify(accessToken string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, naverUserInfoURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := v.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call naver api: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invalid naver token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var naverResponse struct {
		Response struct {
			ID string `json:"id"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &naverResponse); err != nil {
		return "", fmt.Errorf("failed to parse naver response: %v", err)
	}
	if naverResponse.Response.ID == "" {
		return "", fmt.Errorf("naver response missing user id")
	}

	return naverResponse.Response.ID, nil
}

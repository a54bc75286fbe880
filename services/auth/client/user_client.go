package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"wax/pkg/dto"
	"wax/pkg/models"
)

// UserClient: user 서비스 HTTP 클라이언트
type UserClient struct {
	baseURL string
	client  *http.Client
}

func NewUserClient() *UserClient {
	baseURL := os.Getenv("USER_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://wax-user"
	}

	return &UserClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// FindOrCreate: SNS 식별자로 유저 조회, 없으면 생성
func (c *UserClient) FindOrCreate(user dto.UserDTO) (*models.User, error) {
	jsonData, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.baseURL+"/find-or-create", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to call user service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var found models.User
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return nil, fmt.Errorf("failed to parse user service response: %v", err)
	}

	return &found, nil
}

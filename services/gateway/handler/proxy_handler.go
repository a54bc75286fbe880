package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"wax/pkg/helper"

	"github.com/labstack/echo/v4"
)

// 게이트웨이가 라우팅하는 내부 서비스 목록
var allowedServices = map[string]bool{
	"auth":  true,
	"user":  true,
	"lobby": true,
	"store": true,
	"media": true,
}

type ProxyHandler struct {
	client *http.Client
}

func NewProxyHandler() *ProxyHandler {
	return &ProxyHandler{client: &http.Client{}}
}

// BuildTargetURL: 첫 번째 경로 요소로 내부 서비스 주소 결정
func BuildTargetURL(path, rawQuery string) (string, error) {
	firstPath, trimmedPath := helper.ExtractFirstPath(path)
	if !allowedServices[firstPath] {
		return "", fmt.Errorf("unknown service: %s", firstPath)
	}

	targetURL := "http://wax-" + firstPath + trimmedPath
	if rawQuery != "" {
		targetURL = targetURL + "?" + rawQuery
	}

	return targetURL, nil
}

// Proxy: 요청을 내부 서비스로 중계
func (h *ProxyHandler) Proxy(c echo.Context) error {
	r := c.Request()
	log.Printf("Proxy Request URL: %s", r.URL)

	targetURL, err := BuildTargetURL(r.URL.Path, r.URL.RawQuery)
	if err != nil {
		return c.String(http.StatusNotFound, "Unknown service")
	}

	// 송신할 요청 생성
	req, err := http.NewRequest(r.Method, targetURL, r.Body)
	if err != nil {
		log.Printf("method: %s, url: %s, err: %s", r.Method, targetURL, err.Error())
		return c.String(http.StatusInternalServerError, "Failed to create request")
	}

	// 원본 요청의 헤더를 모두 복사
	for name, values := range r.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return c.String(http.StatusBadGateway, "Failed to send request")
	}
	defer resp.Body.Close()

	// 응답 헤더 설정
	w := c.Response()
	for name, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}

	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("Failed to copy response body: %v", err)
	}

	return nil
}

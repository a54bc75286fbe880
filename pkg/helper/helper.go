package helper

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
)

func ToJSON(data interface{}) json.RawMessage {
	bytes, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal data: %v", err)
		return nil
	}
	return json.RawMessage(bytes)
}

// 첫 번째 경로 요소를 추출하고 나머지 경로를 반환하는 함수
func ExtractFirstPath(path string) (string, string) {
	parts := strings.SplitN(path, "/", 3)

	if len(parts) > 1 {
		firstPath := parts[1]
		if len(parts) > 2 {
			return firstPath, "/" + parts[2]
		}
		return firstPath, "/"
	}

	return "", "/"
}

// 센트 단위 금액을 "12.34" 형식의 문자열로 변환
func FormatCents(cents int) string {
	return strconv.Itoa(cents/100) + "." + pad2(cents%100)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

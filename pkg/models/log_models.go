package models

import "time"

// BaseLog: 서비스 공통 로그 문서
type BaseLog struct {
	Level        string      `bson:"level" json:"level"`
	Timestamp    time.Time   `bson:"timestamp" json:"timestamp"`
	Service      int         `bson:"service" json:"service"`
	LogEventType int         `bson:"log_event_type" json:"log_event_type"`
	Message      string      `bson:"message" json:"message"`
	Log          interface{} `bson:"log" json:"log"`
}

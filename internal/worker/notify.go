package worker

import "fmt"

const (
	NotifyStatusCompleted = "completed"
	NotifyStatusError     = "error"
)

// ExportNotifyMessage 通过 Redis Pub/Sub 转发给 WebSocket 客户端，字段名与前端解析保持一致。
type ExportNotifyMessage struct {
	Status        string `json:"status"`
	ExportID      uint   `json:"export_id"`
	ResumeID      uint   `json:"resume_id"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

// NotifyChannel is the per-user Redis channel the API relays to websockets.
func NotifyChannel(userID uint) string {
	return fmt.Sprintf("user_notify:%d", userID)
}

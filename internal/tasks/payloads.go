package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeDocumentExport = "document:export"
)

// DocumentExportPayload 描述异步导出所需的最小信息，其余数据由 worker 按 id 读取。
type DocumentExportPayload struct {
	ExportID      uint   `json:"export_id"`
	ResumeID      uint   `json:"resume_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewDocumentExportTask 构造一个新的简历导出任务。
func NewDocumentExportTask(exportID, resumeID uint, correlationID string, opts ...asynq.Option) (*asynq.Task, error) {
	payload, err := json.Marshal(DocumentExportPayload{
		ExportID:      exportID,
		ResumeID:      resumeID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDocumentExport, payload, opts...), nil
}

// ParseDocumentExportPayload decodes and sanity checks a task payload.
func ParseDocumentExportPayload(t *asynq.Task) (DocumentExportPayload, error) {
	var p DocumentExportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	if p.ExportID == 0 || p.ResumeID == 0 {
		return p, fmt.Errorf("%s payload missing ids", t.Type())
	}
	return p, nil
}

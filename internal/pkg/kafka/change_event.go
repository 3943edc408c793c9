package kafka

import (
	"strconv"
	"time"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// ChangeEvent 行变更事件，字段布局参考 Canal 的消息格式
type ChangeEvent struct {
	Table   string   `json:"table"`
	Type    string   `json:"type"`
	PKNames []string `json:"pkNames"`
	ES      int64    `json:"es"`
	TraceID string   `json:"traceId,omitempty"`

	// Data 变更后的数据
	Data []any `json:"data"`

	// Old 变更前的数据
	Old []any `json:"old,omitempty"`

	key string
}

func NewChangeEvent(table, eventType string, id uint64, data any, old any) *ChangeEvent {
	e := &ChangeEvent{
		Table:   table,
		Type:    eventType,
		PKNames: []string{"id"},
		ES:      time.Now().UnixMilli(),
		Data:    []any{data},
		key:     table + ":" + strconv.FormatUint(id, 10),
	}
	if old != nil {
		e.Old = []any{old}
	}
	return e
}

// Key 分区键，保证同一行的事件有序
func (e *ChangeEvent) Key() string {
	return e.key
}

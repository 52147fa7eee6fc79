// Package errlog хранит журнал ошибок операций калькулятора.
// Журнал только пополняется и живет столько же, сколько сессия.
package errlog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// TimestampLayout - ISO-8601 в UTC с миллисекундами
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FilePrefix - префикс имени файла выгрузки
const FilePrefix = "calculadora-logs-"

// Entry - запись журнала
type Entry struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
}

// Log - журнал ошибок
type Log struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// New создает пустой журнал с системными часами
func New() *Log {
	return NewWithClock(time.Now)
}

// NewWithClock создает журнал с заданным источником времени
func NewWithClock(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{entries: []Entry{}, now: now}
}

// Record добавляет запись и возвращает ее
func (l *Log) Record(source, message, detail string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Timestamp: l.now().UTC().Format(TimestampLayout),
		Source:    source,
		Message:   message,
		Detail:    detail,
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Entries возвращает копию всех записей в порядке добавления
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len возвращает количество записей
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// FileName возвращает имя файла выгрузки с текущим моментом в миллисекундах
func (l *Log) FileName(ext string) string {
	return fmt.Sprintf("%s%d.%s", FilePrefix, l.now().UnixMilli(), ext)
}

// ExportJSON сериализует журнал в JSON-массив с отступом в два пробела
func (l *Log) ExportJSON() ([]byte, string, error) {
	data, err := json.MarshalIndent(l.Entries(), "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal error log: %w", err)
	}
	return data, l.FileName("json"), nil
}

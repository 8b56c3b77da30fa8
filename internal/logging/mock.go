package logging

// MockLogger is a no-op Logger implementation that records messages for tests.
type MockLogger struct {
	Messages []MockMessage
}

// MockMessage captures a single logged message with its level and fields.
type MockMessage struct {
	Level   string
	Message string
	Fields  []Field
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Messages = append(m.Messages, MockMessage{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

func (m *MockLogger) WithError(err error) Logger                        { return m }
func (m *MockLogger) WithField(key string, value interface{}) Logger    { return m }
func (m *MockLogger) WithFields(fields ...Field) Logger                 { return m }

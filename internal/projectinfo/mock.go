package projectinfo

import "github.com/jakoblorz/best-practices-hub/internal/models"

var _ Provider = (*MockProvider)(nil)

// MockProvider returns configurable values for testing
type MockProvider struct {
	GreetingText string
	Record       models.ProjectInfo

	calls int
}

// NewMockProvider creates a MockProvider preloaded with the static values
func NewMockProvider() *MockProvider {
	return &MockProvider{
		GreetingText: Greeting(),
		Record:       Info(),
	}
}

// Greeting returns GreetingText and records the call
func (m *MockProvider) Greeting() string {
	m.calls++
	return m.GreetingText
}

// Info returns Record and records the call
func (m *MockProvider) Info() models.ProjectInfo {
	m.calls++
	return m.Record
}

// Calls returns how many times the provider was queried
func (m *MockProvider) Calls() int {
	return m.calls
}

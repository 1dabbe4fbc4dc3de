// Package projectinfo supplies the project's greeting and metadata record.
package projectinfo

import "github.com/jakoblorz/best-practices-hub/internal/models"

// Title identifies the project in human-readable output.
const Title = "Python Enterprise Developer Training Program"

const (
	projectName   = "python-best-practices-hub"
	version       = "1.0.0"
	pythonVersion = "3.12+"
)

// Provider supplies the greeting and project record shown to users
type Provider interface {
	Greeting() string
	Info() models.ProjectInfo
}

var _ Provider = (*StaticProvider)(nil)

// StaticProvider implements Provider with the built-in constants
type StaticProvider struct{}

// NewStaticProvider creates a new StaticProvider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Greeting returns the built-in welcome message
func (p *StaticProvider) Greeting() string {
	return Greeting()
}

// Info returns a fresh copy of the built-in project record
func (p *StaticProvider) Info() models.ProjectInfo {
	return Info()
}

// Greeting returns the welcome message.
func Greeting() string {
	return "Welcome to the " + Title + "!"
}

// Info returns a freshly built project record.
func Info() models.ProjectInfo {
	return models.ProjectInfo{
		Name:          projectName,
		Version:       version,
		Description:   Title,
		PythonVersion: pythonVersion,
	}
}

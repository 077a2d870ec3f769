package api

import (
	"context"
	"sync"

	"github.com/diogo/agentdash/internal/models"
)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	mu sync.Mutex

	// Mock return values
	URL       string
	HealthVal *models.HealthReport
	HealthErr error
	ChatVal   *models.ChatReply
	ChatErr   error
	FilesVal  []models.FileSummary
	FilesErr  error
	FileVal   *models.FileContent
	FileErr   error
	DeleteVal *models.DeleteResult
	DeleteErr error

	// Call counters/recorders
	HealthCalls  int
	ChatCalls    int
	ListCalls    int
	GetCalls     int
	DeleteCalls  int
	LastMessage  string
	LastFileName string
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) Health(ctx context.Context) (*models.HealthReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HealthCalls++
	return m.HealthVal, m.HealthErr
}

func (m *MockClient) Chat(ctx context.Context, message string) (*models.ChatReply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls++
	m.LastMessage = message
	return m.ChatVal, m.ChatErr
}

func (m *MockClient) ListFiles(ctx context.Context) ([]models.FileSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	return m.FilesVal, m.FilesErr
}

func (m *MockClient) GetFile(ctx context.Context, name string) (*models.FileContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	m.LastFileName = name
	return m.FileVal, m.FileErr
}

func (m *MockClient) DeleteFile(ctx context.Context, name string) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	m.LastFileName = name
	return m.DeleteVal, m.DeleteErr
}

func (m *MockClient) BaseURL() string {
	if m.URL == "" {
		return "http://localhost:8000"
	}
	return m.URL
}

// Calls returns a snapshot of the call counters: health, chat, list, get, delete.
func (m *MockClient) Calls() (health, chat, list, get, del int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HealthCalls, m.ChatCalls, m.ListCalls, m.GetCalls, m.DeleteCalls
}

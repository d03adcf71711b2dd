package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"medical-appointment-service/internal/adapters"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

// --- MockUserRepository ---
var _ repositories.UserRepositoryContract = (*MockUserRepository)(nil)

type MockUserRepository struct {
	ListAllFunc     func(ctx context.Context) ([]entities.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entities.User, error)
	AppendFunc      func(ctx context.Context, user entities.User) error

	AppendFuncCallCount int32
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]entities.User, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []entities.User{}, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Append(ctx context.Context, user entities.User) error {
	atomic.AddInt32(&m.AppendFuncCallCount, 1)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, user)
	}
	return nil
}

// --- MockPendingSignupRepository ---
var _ repositories.PendingSignupRepositoryContract = (*MockPendingSignupRepository)(nil)

type MockPendingSignupRepository struct {
	GetFunc   func(ctx context.Context, namespace string) (*entities.PendingSignup, error)
	SaveFunc  func(ctx context.Context, namespace string, pending entities.PendingSignup) error
	ClearFunc func(ctx context.Context, namespace string) error

	SaveFuncCallCount  int32
	ClearFuncCallCount int32
}

func (m *MockPendingSignupRepository) Get(ctx context.Context, namespace string) (*entities.PendingSignup, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, namespace)
	}
	return nil, nil
}

func (m *MockPendingSignupRepository) Save(ctx context.Context, namespace string, pending entities.PendingSignup) error {
	atomic.AddInt32(&m.SaveFuncCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, namespace, pending)
	}
	return nil
}

func (m *MockPendingSignupRepository) Clear(ctx context.Context, namespace string) error {
	atomic.AddInt32(&m.ClearFuncCallCount, 1)
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, namespace)
	}
	return nil
}

// --- MockSessionRepository ---
var _ repositories.SessionRepositoryContract = (*MockSessionRepository)(nil)

type MockSessionRepository struct {
	GetLoggedInFunc   func(ctx context.Context, namespace string) (*entities.User, error)
	SetLoggedInFunc   func(ctx context.Context, namespace string, user entities.User) error
	ClearLoggedInFunc func(ctx context.Context, namespace string) error

	SetLoggedInFuncCallCount int32
}

func (m *MockSessionRepository) GetLoggedIn(ctx context.Context, namespace string) (*entities.User, error) {
	if m.GetLoggedInFunc != nil {
		return m.GetLoggedInFunc(ctx, namespace)
	}
	return nil, nil
}

func (m *MockSessionRepository) SetLoggedIn(ctx context.Context, namespace string, user entities.User) error {
	atomic.AddInt32(&m.SetLoggedInFuncCallCount, 1)
	if m.SetLoggedInFunc != nil {
		return m.SetLoggedInFunc(ctx, namespace, user)
	}
	return nil
}

func (m *MockSessionRepository) ClearLoggedIn(ctx context.Context, namespace string) error {
	if m.ClearLoggedInFunc != nil {
		return m.ClearLoggedInFunc(ctx, namespace)
	}
	return nil
}

// --- MockAppointmentRepository ---
var _ repositories.AppointmentRepositoryContract = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	ListAllFunc    func(ctx context.Context) ([]entities.Appointment, error)
	AppendFunc     func(ctx context.Context, appointment entities.Appointment) error
	ReplaceAllFunc func(ctx context.Context, appointments []entities.Appointment) error

	AppendFuncCallCount     int32
	ReplaceAllFuncCallCount int32
}

func (m *MockAppointmentRepository) ListAll(ctx context.Context) ([]entities.Appointment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []entities.Appointment{}, nil
}

func (m *MockAppointmentRepository) Append(ctx context.Context, appointment entities.Appointment) error {
	atomic.AddInt32(&m.AppendFuncCallCount, 1)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) ReplaceAll(ctx context.Context, appointments []entities.Appointment) error {
	atomic.AddInt32(&m.ReplaceAllFuncCallCount, 1)
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, appointments)
	}
	return nil
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepositoryContract = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	Doctors []entities.Doctor
	Err     error
}

func (m *MockDoctorRepository) ListAll(ctx context.Context) ([]entities.Doctor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]entities.Doctor(nil), m.Doctors...), nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, d := range m.Doctors {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

// --- MockQueueAdapter ---
var _ adapters.QueueAdapter = (*MockQueueAdapter)(nil)

// MockQueueAdapter records every published message.
type MockQueueAdapter struct {
	PublishFunc func(ctx context.Context, queueName string, jobData []byte) error

	mu        sync.Mutex
	published map[string][][]byte
}

func (m *MockQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	if m.PublishFunc != nil {
		if err := m.PublishFunc(ctx, queueName, jobData); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.published == nil {
		m.published = make(map[string][][]byte)
	}
	m.published[queueName] = append(m.published[queueName], jobData)
	return nil
}

func (m *MockQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler adapters.JobHandler) error {
	return errors.New("StartConsuming not implemented in mock")
}

func (m *MockQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	return nil
}

func (m *MockQueueAdapter) Close(ctx context.Context) error {
	return nil
}

// Notifications decodes what was published to NotificationQueue.
func (m *MockQueueAdapter) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Notification{}
	for _, raw := range m.published[NotificationQueue] {
		var n Notification
		if err := json.Unmarshal(raw, &n); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// --- MockNotificationSender ---
var _ NotificationSenderContract = (*MockNotificationSender)(nil)

type MockNotificationSender struct {
	SendFunc func(ctx context.Context, n Notification) error
	Sent     chan Notification

	SendFuncCallCount int32
}

func NewMockNotificationSender(buffer int) *MockNotificationSender {
	return &MockNotificationSender{Sent: make(chan Notification, buffer)}
}

func (m *MockNotificationSender) Send(ctx context.Context, n Notification) error {
	atomic.AddInt32(&m.SendFuncCallCount, 1)
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, n); err != nil {
			return err
		}
	}
	if m.Sent != nil {
		m.Sent <- n
	}
	return nil
}

package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/quoteshelf/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockCodeStore struct{ mock.Mock }

func (m *mockCodeStore) SetCode(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
func (m *mockCodeStore) GetCode(ctx context.Context, email string) (string, bool, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Bool(1), args.Error(2)
}
func (m *mockCodeStore) DeleteCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockCodeStore) MarkVerified(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

// --- SendCode ---

func TestSendCode_StoresThenMails(t *testing.T) {
	codes := &mockCodeStore{}
	mailer := &mockMailer{}
	svc := NewService(codes, mailer)

	var stored string
	codes.On("SetCode", mock.Anything, "a@b.com", mock.MatchedBy(func(code string) bool {
		stored = code
		return len(code) == 6
	})).Return(nil)
	mailer.On("SendEmail", "a@b.com", "Your verification code", mock.MatchedBy(func(body string) bool {
		return body == "Your verification code is "+stored
	})).Return(nil)

	require.NoError(t, svc.SendCode(context.Background(), "a@b.com"))
	codes.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSendCode_StoreFailure(t *testing.T) {
	codes := &mockCodeStore{}
	mailer := &mockMailer{}
	svc := NewService(codes, mailer)

	codes.On("SetCode", mock.Anything, "a@b.com", mock.Anything).Return(errors.New("redis down"))

	err := svc.SendCode(context.Background(), "a@b.com")
	assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
	mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendCode_MailFailure(t *testing.T) {
	codes := &mockCodeStore{}
	mailer := &mockMailer{}
	svc := NewService(codes, mailer)

	codes.On("SetCode", mock.Anything, "a@b.com", mock.Anything).Return(nil)
	mailer.On("SendEmail", "a@b.com", mock.Anything, mock.Anything).Return(errors.New("smtp refused"))

	err := svc.SendCode(context.Background(), "a@b.com")
	assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
}

// --- VerifyCode ---

func TestVerifyCode_Match(t *testing.T) {
	codes := &mockCodeStore{}
	svc := NewService(codes, &mockMailer{})

	codes.On("GetCode", mock.Anything, "a@b.com").Return("123456", true, nil)
	codes.On("DeleteCode", mock.Anything, "a@b.com").Return(nil)
	codes.On("MarkVerified", mock.Anything, "a@b.com").Return(nil)

	require.NoError(t, svc.VerifyCode(context.Background(), "a@b.com", "123456"))
	codes.AssertExpectations(t)
}

func TestVerifyCode_Mismatch(t *testing.T) {
	codes := &mockCodeStore{}
	svc := NewService(codes, &mockMailer{})

	codes.On("GetCode", mock.Anything, "a@b.com").Return("123456", true, nil)

	err := svc.VerifyCode(context.Background(), "a@b.com", "654321")
	assert.True(t, errors.Is(err, domain.ErrCodeMismatch))
	codes.AssertNotCalled(t, "DeleteCode", mock.Anything, mock.Anything)
}

func TestVerifyCode_NoPendingCode(t *testing.T) {
	codes := &mockCodeStore{}
	svc := NewService(codes, &mockMailer{})

	codes.On("GetCode", mock.Anything, "a@b.com").Return("", false, nil)

	err := svc.VerifyCode(context.Background(), "a@b.com", "123456")
	assert.True(t, errors.Is(err, domain.ErrCodeMismatch))
}

func TestVerifyCode_StoreError(t *testing.T) {
	codes := &mockCodeStore{}
	svc := NewService(codes, &mockMailer{})

	codes.On("GetCode", mock.Anything, "a@b.com").Return("", false, errors.New("redis down"))

	err := svc.VerifyCode(context.Background(), "a@b.com", "123456")
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

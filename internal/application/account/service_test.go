package account

import (
	"context"
	"errors"
	"testing"

	"github.com/quoteshelf/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recording fakes: the cascade ordering is the contract under test, so the
// fakes log every step including transaction boundaries.

type fakeTx struct {
	steps      *[]string
	rolledBack bool
}

func (f *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	*f.steps = append(*f.steps, "begin")
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		*f.steps = append(*f.steps, "rollback")
		return err
	}
	*f.steps = append(*f.steps, "commit")
	return nil
}

type fakeQuotes struct {
	steps *[]string
	err   error
}

func (f *fakeQuotes) DeleteByUser(ctx context.Context, userID int64) error {
	*f.steps = append(*f.steps, "delete quotes")
	return f.err
}

type fakeUsers struct {
	steps *[]string
	rows  int64
	err   error
}

func (f *fakeUsers) DeleteByID(ctx context.Context, userID int64) (int64, error) {
	*f.steps = append(*f.steps, "delete user")
	return f.rows, f.err
}

func TestDeleteAccount_QuotesRemovedBeforeUserRow(t *testing.T) {
	var steps []string
	tx := &fakeTx{steps: &steps}
	svc := NewService(&fakeUsers{steps: &steps, rows: 1}, &fakeQuotes{steps: &steps}, tx)

	require.NoError(t, svc.DeleteAccount(context.Background(), 7))
	assert.Equal(t, []string{"begin", "delete quotes", "delete user", "commit"}, steps)
}

func TestDeleteAccount_ContentFailureAbortsBeforeUserDelete(t *testing.T) {
	var steps []string
	tx := &fakeTx{steps: &steps}
	boom := errors.New("quotes table busy")
	svc := NewService(&fakeUsers{steps: &steps, rows: 1}, &fakeQuotes{steps: &steps, err: boom}, tx)

	err := svc.DeleteAccount(context.Background(), 7)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"begin", "delete quotes", "rollback"}, steps)
	assert.True(t, tx.rolledBack)
}

func TestDeleteAccount_MissingUserRollsBack(t *testing.T) {
	var steps []string
	tx := &fakeTx{steps: &steps}
	svc := NewService(&fakeUsers{steps: &steps, rows: 0}, &fakeQuotes{steps: &steps}, tx)

	err := svc.DeleteAccount(context.Background(), 7)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.True(t, tx.rolledBack)
}

func TestDeleteAccount_InvalidID(t *testing.T) {
	var steps []string
	tx := &fakeTx{steps: &steps}
	svc := NewService(&fakeUsers{steps: &steps}, &fakeQuotes{steps: &steps}, tx)

	for _, id := range []int64{0, -1} {
		err := svc.DeleteAccount(context.Background(), id)
		assert.True(t, errors.Is(err, domain.ErrInvalidUserID), "id %d", id)
	}
	assert.Empty(t, steps)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookstore/internal/common"
)

func TestRegisterAndLogin(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.account.Register(ctx, "u1", "pass1", "Alice"))
	assert.Error(t, e.account.Register(ctx, "u1", "other", "Dup"))
	assert.ErrorIs(t, e.account.Register(ctx, "bad id", "pw", "X"), common.ErrValidation)

	// Wrong password, unknown user, then success.
	assert.ErrorIs(t, e.account.Login(ctx, "u1", "wrong"), common.ErrPasswordMismatch)
	assert.ErrorIs(t, e.account.Login(ctx, "ghost", "pw"), common.ErrNotFound)
	require.NoError(t, e.account.Login(ctx, "u1", "pass1"))
	assert.Equal(t, 1, e.sess.Privilege())
}

func TestPasswordlessLoginRequiresHigherPrivilege(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.account.Register(ctx, "u1", "pass1", "Alice"))

	// Logged out: password cannot be omitted.
	assert.ErrorIs(t, e.account.Login(ctx, "u1", ""), common.ErrUnauthorized)

	// root (7) may log into u1 (1) without a password.
	e.loginRoot(t)
	require.NoError(t, e.account.Login(ctx, "u1", ""))
	assert.Equal(t, 1, e.sess.Privilege())

	// Equal privilege is not enough: u1 cannot su into u1 silently.
	assert.ErrorIs(t, e.account.Login(ctx, "u1", ""), common.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, e.account.Logout(ctx), common.ErrUnauthorized)

	e.loginRoot(t)
	require.NoError(t, e.account.Logout(ctx))
	assert.Equal(t, 0, e.sess.Privilege())
}

func TestUpdateAndResetPassword(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.account.Register(ctx, "u1", "old", "Alice"))

	assert.ErrorIs(t, e.account.UpdatePassword(ctx, "u1", "wrong", "new"), common.ErrPasswordMismatch)
	require.NoError(t, e.account.UpdatePassword(ctx, "u1", "old", "new"))
	require.NoError(t, e.account.Login(ctx, "u1", "new"))

	require.NoError(t, e.account.ResetPassword(ctx, "u1", "forced"))
	assert.ErrorIs(t, e.account.Login(ctx, "u1", "new"), common.ErrPasswordMismatch)
	require.NoError(t, e.account.Login(ctx, "u1", "forced"))

	assert.ErrorIs(t, e.account.ResetPassword(ctx, "ghost", "pw"), common.ErrNotFound)
}

func TestCreateAccountPrivilegeRule(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	e.loginRoot(t)
	require.NoError(t, e.account.CreateAccount(ctx, "u2", "pw2", "3", "Bob"))

	// 7 is not strictly less than the creator's 7.
	assert.ErrorIs(t, e.account.CreateAccount(ctx, "u3", "pw3", "7", "Carl"), common.ErrUnauthorized)

	// Privilege codes outside {1,3,7} are malformed.
	assert.ErrorIs(t, e.account.CreateAccount(ctx, "u4", "pw4", "2", "Dora"), common.ErrValidation)

	// A clerk (3) can only create customers (1).
	require.NoError(t, e.account.Login(ctx, "u2", "pw2"))
	require.NoError(t, e.account.CreateAccount(ctx, "u5", "pw5", "1", "Eve"))
	assert.ErrorIs(t, e.account.CreateAccount(ctx, "u6", "pw6", "3", "Fred"), common.ErrUnauthorized)
}

func TestDeleteAccount(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.account.Register(ctx, "u1", "pass1", "Alice"))
	e.loginRoot(t)

	assert.ErrorIs(t, e.account.DeleteAccount(ctx, "ghost"), common.ErrNotFound)

	// Logged-in accounts cannot be deleted; root itself is active here.
	require.NoError(t, e.account.Login(ctx, "u1", "pass1"))
	assert.ErrorIs(t, e.account.DeleteAccount(ctx, "u1"), common.ErrAccountInUse)
	assert.ErrorIs(t, e.account.DeleteAccount(ctx, "root"), common.ErrAccountInUse)

	require.NoError(t, e.account.Logout(ctx))
	require.NoError(t, e.account.DeleteAccount(ctx, "u1"))
	assert.ErrorIs(t, e.account.Login(ctx, "u1", "pass1"), common.ErrNotFound)
}

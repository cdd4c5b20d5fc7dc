// Package services contains the application services of the bookstore:
// account administration, catalog operations, and financial reporting.
// Services validate their raw string inputs, apply business rules against
// the record stores and the session stack, and return sentinel errors from
// internal/common; the command layer collapses every error into the single
// failure output.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/repositories/accounts"
	"github.com/dmitrijs2005/bookstore/internal/session"
	"github.com/dmitrijs2005/bookstore/internal/validate"
)

// AccountService implements registration, login, and account administration.
type AccountService struct {
	repo accounts.Repository
	sess *session.Stack
	vd   *validate.Validator
	log  logging.Logger
}

// NewAccountService constructs an AccountService.
func NewAccountService(repo accounts.Repository, sess *session.Stack, vd *validate.Validator, log logging.Logger) *AccountService {
	return &AccountService{repo: repo, sess: sess, vd: vd, log: log}
}

// Register creates a customer account (privilege 1). Anyone may call it.
func (s *AccountService) Register(ctx context.Context, id, password, name string) error {
	if !s.vd.UserID(id) || !s.vd.Password(password) || !s.vd.Username(name) {
		return common.ErrValidation
	}
	if err := s.repo.Add(models.Account{
		UserID: id, Password: password, Privilege: models.PrivilegeCustomer, Name: name,
	}); err != nil {
		return fmt.Errorf("register %s: %w", id, err)
	}
	s.log.Info(ctx, "account registered", "user", id)
	return nil
}

// Login pushes a session frame for the given account. The password may be
// omitted (empty) only when the current effective privilege is strictly
// greater than the target account's; otherwise it must match exactly.
func (s *AccountService) Login(ctx context.Context, id, password string) error {
	if !s.vd.UserID(id) {
		return common.ErrValidation
	}
	a, ok := s.repo.Get(id)
	if !ok {
		return common.ErrNotFound
	}
	if password == "" {
		if s.sess.Privilege() <= a.Privilege {
			return common.ErrUnauthorized
		}
	} else if password != a.Password {
		return common.ErrPasswordMismatch
	}
	f := s.sess.Push(*a)
	s.log.Info(ctx, "login", "user", id, "privilege", a.Privilege, "frame", f.ID, "depth", s.sess.Depth())
	return nil
}

// Logout pops the top session frame together with its selection.
func (s *AccountService) Logout(ctx context.Context) error {
	f, ok := s.sess.Pop()
	if !ok {
		return common.ErrUnauthorized
	}
	s.log.Info(ctx, "logout", "user", f.Account.UserID, "frame", f.ID, "depth", s.sess.Depth())
	return nil
}

// UpdatePassword changes an account's password after verifying the current
// one. Used by non-owner operators.
func (s *AccountService) UpdatePassword(ctx context.Context, id, current, next string) error {
	if !s.vd.UserID(id) || !s.vd.Password(current) || !s.vd.Password(next) {
		return common.ErrValidation
	}
	a, ok := s.repo.Get(id)
	if !ok {
		return common.ErrNotFound
	}
	if current != a.Password {
		return common.ErrPasswordMismatch
	}
	if err := s.repo.UpdatePassword(id, next); err != nil {
		return fmt.Errorf("passwd %s: %w", id, err)
	}
	s.log.Info(ctx, "password changed", "user", id)
	return nil
}

// ResetPassword sets an account's password without checking the current
// one. The command layer routes here only for privilege-7 operators.
func (s *AccountService) ResetPassword(ctx context.Context, id, next string) error {
	if !s.vd.UserID(id) || !s.vd.Password(next) {
		return common.ErrValidation
	}
	if _, ok := s.repo.Get(id); !ok {
		return common.ErrNotFound
	}
	if err := s.repo.UpdatePassword(id, next); err != nil {
		return fmt.Errorf("passwd %s: %w", id, err)
	}
	s.log.Info(ctx, "password reset", "user", id)
	return nil
}

// CreateAccount adds an account on behalf of an operator. The new privilege
// must be strictly less than the creator's current effective privilege.
func (s *AccountService) CreateAccount(ctx context.Context, id, password, privCode, name string) error {
	if !s.vd.UserID(id) || !s.vd.Password(password) || !s.vd.Username(name) {
		return common.ErrValidation
	}
	priv, ok := validate.ParsePrivilege(privCode)
	if !ok {
		return common.ErrValidation
	}
	if priv >= s.sess.Privilege() {
		return common.ErrUnauthorized
	}
	if err := s.repo.Add(models.Account{UserID: id, Password: password, Privilege: priv, Name: name}); err != nil {
		return fmt.Errorf("useradd %s: %w", id, err)
	}
	s.log.Info(ctx, "account created", "user", id, "privilege", priv)
	return nil
}

// DeleteAccount removes an account unless it appears in any active session
// frame.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if !s.vd.UserID(id) {
		return common.ErrValidation
	}
	if _, ok := s.repo.Get(id); !ok {
		return common.ErrNotFound
	}
	if s.sess.IsActive(id) {
		return common.ErrAccountInUse
	}
	if err := s.repo.Remove(id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.log.Info(ctx, "account deleted", "user", id)
	return nil
}

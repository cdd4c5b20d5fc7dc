// Package session models the login stack. Each successful su pushes a frame
// holding a snapshot of the account and that login's selected book;
// logout pops the top frame together with its selection.
package session

import (
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookstore/internal/models"
)

// Frame is one nested login: an account snapshot plus the ISBN currently
// selected within this login, if any. ID tags the frame in log output.
type Frame struct {
	ID        string
	Account   models.Account
	Selection string
}

// Stack is the ordered sequence of active logins. The zero number of frames
// means no operator is logged in (effective privilege 0).
type Stack struct {
	frames []Frame
}

func NewStack() *Stack { return &Stack{} }

// Push adds a frame for the given account with an empty selection and
// returns it.
func (s *Stack) Push(a models.Account) Frame {
	f := Frame{ID: uuid.NewString(), Account: a}
	s.frames = append(s.frames, f)
	return f
}

// Pop removes and returns the top frame. ok is false on an empty stack.
func (s *Stack) Pop() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

// Depth returns the number of active frames.
func (s *Stack) Depth() int { return len(s.frames) }

// Privilege returns the effective privilege: the top frame's, or 0 when no
// one is logged in.
func (s *Stack) Privilege() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].Account.Privilege
}

// Selection returns the top frame's selected ISBN, or "" when there is no
// frame or no selection.
func (s *Stack) Selection() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1].Selection
}

// SetSelection updates the top frame's selected ISBN. It is a no-op on an
// empty stack.
func (s *Stack) SetSelection(isbn string) {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1].Selection = isbn
}

// RetargetSelection rewrites the top frame's selection from oldISBN to
// newISBN after a rename. Other frames keep their own selections untouched.
func (s *Stack) RetargetSelection(oldISBN, newISBN string) {
	if s.Selection() == oldISBN {
		s.SetSelection(newISBN)
	}
}

// IsActive reports whether any frame belongs to the given account id.
func (s *Stack) IsActive(userID string) bool {
	for i := range s.frames {
		if s.frames[i].Account.UserID == userID {
			return true
		}
	}
	return false
}

// Top returns the top frame without removing it.
func (s *Stack) Top() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Package quota decides whether a user may invoke gated generation.
// Evaluate is pure: no I/O, no side effects; counter updates live on the
// user repository.
package quota

import (
	"crowlands-be/internal/entity"
)

// FreeTierLimit is the number of spell generations a free account gets.
const FreeTierLimit = 3

// Unlimited is the sentinel used for paid-tier limit and remaining values.
const Unlimited = -1

type Status struct {
	CanGenerate  bool
	Remaining    int
	Limit        int
	CurrentCount int
}

// Evaluate computes the quota status for a user. A nil user means an
// anonymous caller: generation is unmetered and unconditionally permitted.
func Evaluate(user *entity.User) Status {
	if user == nil {
		return Status{CanGenerate: true, Remaining: Unlimited, Limit: Unlimited}
	}

	if user.IsPaid() {
		return Status{
			CanGenerate:  true,
			Remaining:    Unlimited,
			Limit:        Unlimited,
			CurrentCount: user.SpellGenerationCount,
		}
	}

	remaining := FreeTierLimit - user.SpellGenerationCount
	if remaining < 0 {
		remaining = 0
	}

	return Status{
		CanGenerate:  user.SpellGenerationCount < FreeTierLimit,
		Remaining:    remaining,
		Limit:        FreeTierLimit,
		CurrentCount: user.SpellGenerationCount,
	}
}

package auth

import (
	"context"
	"strings"
)

// AdminAccount describes one administrator account the bootstrap
// guarantees to exist.
type AdminAccount struct {
	Email    string
	Password string
	FullName string
}

// DefaultAdmins are the baseline administrator accounts created on first
// start. Operators are expected to change these passwords after the
// first sign-in.
var DefaultAdmins = []AdminAccount{
	{Email: "admin@magangjo.id", Password: "admin#2024", FullName: "Administrator"},
	{Email: "keuangan@magangjo.id", Password: "keuangan#2024", FullName: "Staf Keuangan"},
}

// InitializeDefaultAdmin makes sure every account in accounts exists with
// an admin role, creating only the missing ones. Idempotent: a second run
// changes nothing. Each collection is written at most once, at the end,
// and only if something was actually created. Returns the number of
// accounts created.
func (s *Service) InitializeDefaultAdmin(ctx context.Context, accounts []AdminAccount) int {
	users := s.users.GetAll(ctx)
	roles := s.roles.GetAll(ctx)

	existing := make(map[string]struct{}, len(users))
	for _, u := range users {
		existing[strings.ToLower(u.Email)] = struct{}{}
	}

	created := 0
	for _, acc := range accounts {
		if _, ok := existing[strings.ToLower(acc.Email)]; ok {
			continue
		}

		hash, err := HashPassword([]byte(acc.Password))
		if err != nil {
			s.logger.Error(ctx, "bootstrap hashing failed, account skipped", "email", acc.Email, "err", err)
			continue
		}

		user := &LocalUser{
			Meta:         s.store.NewMeta(),
			Email:        acc.Email,
			PasswordHash: hash,
			FullName:     acc.FullName,
		}
		role := &LocalUserRole{
			Meta:   s.store.NewMeta(),
			UserID: user.ID,
			Role:   RoleAdmin,
		}

		users = append([]*LocalUser{user}, users...)
		roles = append([]*LocalUserRole{role}, roles...)
		existing[strings.ToLower(acc.Email)] = struct{}{}
		created++
	}

	if created > 0 {
		s.users.SetAll(ctx, users)
		s.roles.SetAll(ctx, roles)
		s.logger.Info(ctx, "default admin accounts created", "count", created)
	}
	return created
}

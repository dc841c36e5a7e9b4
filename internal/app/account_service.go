package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todolist-service/internal/app/validation"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

const opCreateAccount = "CreateAccount"

// AccountService implements ports.AccountService.
type AccountService struct {
	accounts  ports.AccountStore
	hasher    ports.PasswordHasher
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAccountService creates an AccountService. Passwords are hashed with
// hasher before they reach the store. A nil logger discards output.
func NewAccountService(accounts ports.AccountStore, hasher ports.PasswordHasher, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &AccountService{
		accounts:  accounts,
		hasher:    hasher,
		validator: validation.New(nil),
		logger:    logger,
	}
}

// CreateAccount registers a new account. The email must not already be
// taken; the comparison is exact.
func (s *AccountService) CreateAccount(ctx context.Context, cmd ports.CreateAccountCommand) domain.Result[account.Account] {
	s.logger.InfoContext(ctx, "creating account")

	if verr, ok := s.validator.Validate(opCreateAccount, cmd); !ok {
		return domain.Failure[account.Account](verr)
	}

	exists, err := s.accounts.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return storeFailure[account.Account](ctx, s.logger, "failed to check email", opCreateAccount, err)
	}
	if exists {
		return domain.Failure[account.Account](domain.AccountAlreadyExists)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", opCreateAccount),
			slog.Any("error", err),
		)
		return domain.Failure[account.Account](domain.Internal(opCreateAccount + ".Hash"))
	}

	acc := account.New(cmd.Email, hash)

	if err := s.accounts.Create(ctx, &acc); err != nil {
		// A concurrent registration can win the race past ExistsByEmail.
		if errors.Is(err, domain.ErrConflict) {
			return domain.Failure[account.Account](domain.AccountAlreadyExists)
		}
		return storeFailure[account.Account](ctx, s.logger, "failed to create account", opCreateAccount, err)
	}

	s.logger.InfoContext(ctx, "account created", slog.String("account_id", acc.ID.String()))
	return domain.Success(acc)
}

package user

import (
	"context"
	"errors"

	"blog_api/biz/dal/repo"
	"blog_api/biz/model/domain"
	"blog_api/biz/model/errs"
	"blog_api/biz/util/encode"
	"blog_api/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Service struct {
	users     repo.UserRepository
	hasher    encode.PasswordHasher
	validator *validate.Validator
}

func New(users repo.UserRepository, hasher encode.PasswordHasher, v *validate.Validator) *Service {
	if hasher == nil {
		hasher = encode.NewBcryptHasher(encode.DefaultCost)
	}
	if v == nil {
		v = validate.New(validate.DefaultPasswordMinLength)
	}
	return &Service{users: users, hasher: hasher, validator: v}
}

// Register validates the input, rejects an already used email and stores the
// new user with a hashed password. The unique email index is the final word
// when two registrations race past the lookup.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, errs.Error) {
	fields, violations := s.validator.RegisterInput(name, email, password)
	if len(violations) > 0 {
		return nil, errs.ValidationFailed.SetViolations(violations)
	}

	existing, err := s.users.FindByEmail(ctx, fields.Email)
	if err != nil {
		return nil, errs.ServerError.SetErr(err)
	}
	if existing != nil {
		return nil, errs.EmailDuplicated
	}

	hash, err := s.hasher.Hash(fields.Password)
	if err != nil {
		return nil, errs.ServerError.SetErr(err)
	}

	u, err := s.users.Create(ctx, &domain.User{
		Name:         fields.Name,
		Email:        fields.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return nil, errs.EmailDuplicated
		}
		return nil, errs.ServerError.SetErr(err)
	}

	hlog.CtxInfof(ctx, "user registered, user_id=%s", u.UserID)
	return u, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (*domain.User, errs.Error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrMalformedID) {
			return nil, errs.MalformedReference.SetErr(err)
		}
		return nil, errs.ServerError.SetErr(err)
	}
	if u == nil {
		return nil, errs.UserNotExist
	}
	return u, nil
}

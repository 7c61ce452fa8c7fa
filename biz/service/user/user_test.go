package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"blog_api/biz/dal/repo"
	"blog_api/biz/model/domain"
	"blog_api/biz/model/errs"
	"blog_api/biz/model/storage"
	"blog_api/biz/util/encode"
	"blog_api/biz/util/validate"

	"github.com/bytedance/mockey"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	findByEmailUser *domain.User
	findByEmailErr  error
	findByEmailArg  string
	findCalls       int

	findByUserIDUser *domain.User
	findByUserIDErr  error

	createRetUser *domain.User
	createRetErr  error
	createInput   *domain.User
	createCalls   int
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.createCalls++
	r.createInput = u
	if r.createRetUser == nil && r.createRetErr == nil {
		out := *u
		out.UserID = "u1"
		return &out, nil
	}
	return r.createRetUser, r.createRetErr
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, _ string) (*domain.User, error) {
	return r.findByUserIDUser, r.findByUserIDErr
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findCalls++
	r.findByEmailArg = email
	return r.findByEmailUser, r.findByEmailErr
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("entropy exhausted") }
func (failingHasher) Verify(string, string) (bool, error) { return false, nil }

func newService(r repo.UserRepository) *Service {
	return New(r, encode.NewBcryptHasher(bcrypt.MinCost), validate.New(6))
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("validation never reaches repository", func(t *testing.T) {
		r := &fakeUserRepo{}
		_, bizErr := newService(r).Register(ctx, "", "not-an-email", "123")
		assert.True(t, errs.ErrorEqual(errs.ValidationFailed, bizErr))
		assert.Len(t, bizErr.Violations(), 3)
		assert.Zero(t, r.findCalls)
		assert.Zero(t, r.createCalls)
	})

	t.Run("find error", func(t *testing.T) {
		_, bizErr := newService(&fakeUserRepo{findByEmailErr: errors.New("db error")}).
			Register(ctx, "Ada", "ada@x.io", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.ErrorContains(t, bizErr, "db error")
	})

	t.Run("email duplicated", func(t *testing.T) {
		r := &fakeUserRepo{findByEmailUser: &domain.User{UserID: "u0"}}
		_, bizErr := newService(r).Register(ctx, "Ada", "  ADA@X.io ", "secret1")
		assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
		assert.Equal(t, "ada@x.io", r.findByEmailArg)
		assert.Zero(t, r.createCalls)
	})

	t.Run("create lost the race", func(t *testing.T) {
		r := &fakeUserRepo{createRetErr: errors.Join(repo.ErrDuplicateKey, errors.New("E11000"))}
		_, bizErr := newService(r).Register(ctx, "Ada", "ada@x.io", "secret1")
		assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
	})

	t.Run("create error", func(t *testing.T) {
		r := &fakeUserRepo{createRetErr: errors.New("insert error")}
		_, bizErr := newService(r).Register(ctx, "Ada", "ada@x.io", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("hash error", func(t *testing.T) {
		r := &fakeUserRepo{}
		_, bizErr := New(r, failingHasher{}, nil).Register(ctx, "Ada", "ada@x.io", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.Zero(t, r.createCalls)
	})

	t.Run("success stores normalized fields and a verifiable hash", func(t *testing.T) {
		r := &fakeUserRepo{}
		hasher := encode.NewBcryptHasher(bcrypt.MinCost)
		svc := New(r, hasher, validate.New(6))

		u, bizErr := svc.Register(ctx, "  Ada  ", " Ada@Example.COM ", "secret1")
		assert.Nil(t, bizErr)
		assert.Equal(t, "u1", u.UserID)

		if assert.NotNil(t, r.createInput) {
			assert.Equal(t, "Ada", r.createInput.Name)
			assert.Equal(t, "ada@example.com", r.createInput.Email)
			assert.NotEqual(t, "secret1", r.createInput.PasswordHash)
			ok, err := hasher.Verify("secret1", r.createInput.PasswordHash)
			assert.NoError(t, err)
			assert.True(t, ok)
		}
	})
}

func TestService_Register_BcryptFailure(t *testing.T) {
	mockey.PatchConvey("TestService_Register_BcryptFailure", t, func() {
		mockey.Mock(bcrypt.GenerateFromPassword).Return(nil, errors.New("bcrypt broken")).Build()

		r := &fakeUserRepo{}
		_, bizErr := New(r, nil, nil).Register(context.Background(), "Ada", "ada@x.io", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.ErrorContains(t, bizErr, "bcrypt broken")
		assert.Zero(t, r.createCalls)
	})
}

func TestService_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("find error", func(t *testing.T) {
		_, bizErr := newService(&fakeUserRepo{findByUserIDErr: errors.New("db error")}).GetByUserID(ctx, "u1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, bizErr := newService(&fakeUserRepo{findByUserIDErr: repo.ErrMalformedID}).GetByUserID(ctx, "abc")
		assert.True(t, errs.ErrorEqual(errs.MalformedReference, bizErr))
	})

	t.Run("user not exist", func(t *testing.T) {
		_, bizErr := newService(&fakeUserRepo{}).GetByUserID(ctx, "u1")
		assert.True(t, errs.ErrorEqual(errs.UserNotExist, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1"}
		out, bizErr := newService(&fakeUserRepo{findByUserIDUser: u}).GetByUserID(ctx, "u1")
		assert.Nil(t, bizErr)
		assert.Equal(t, u, out)
	})
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&storage.UserRecord{}))
	return db
}

func TestService_Register_CaseInsensitiveDuplicate(t *testing.T) {
	svc := newService(repo.NewGormUserRepository(setupSQLite(t)))
	ctx := context.Background()

	_, bizErr := svc.Register(ctx, "Ada", "Ada@Example.com", "secret1")
	require.Nil(t, bizErr)

	_, bizErr = svc.Register(ctx, "Ada", "  ada@example.COM ", "secret1")
	assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
}

func TestService_Register_Concurrent(t *testing.T) {
	svc := newService(repo.NewGormUserRepository(setupSQLite(t)))

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dups      int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, bizErr := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case bizErr == nil:
				successes++
			case errs.ErrorEqual(errs.EmailDuplicated, bizErr):
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, dups)
}

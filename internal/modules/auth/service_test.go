package auth

import (
	"context"
	"testing"

	"aacorner/internal/domain"
	"aacorner/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByIdent(ctx context.Context, ident string) (*domain.User, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestSignup_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "alice").Return("signed-token", nil)

	service := NewService(users, jwt, new(MockCartStore))

	result, err := service.Signup(context.Background(), SignupRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEqual(t, "secret123", result.User.PasswordHash)
}

func TestSignup_DuplicateUser(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(true, nil)

	service := NewService(users, jwt, new(MockCartStore))

	_, err := service.Signup(context.Background(), SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_ByUsername(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)

	users.On("GetByIdent", mock.Anything, "alice").Return(&domain.User{
		ID: 42, Username: "alice", Email: "alice@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)
	jwt.On("GenerateToken", int64(42), "alice").Return("signed-token", nil)

	service := NewService(users, jwt, new(MockCartStore))

	result, err := service.Login(context.Background(), LoginRequest{Ident: "alice", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)

	users.On("GetByIdent", mock.Anything, "alice").Return(&domain.User{
		ID: 42, Username: "alice", PasswordHash: hashOf(t, "secret123"),
	}, nil)

	service := NewService(users, jwt, new(MockCartStore))

	_, err := service.Login(context.Background(), LoginRequest{Ident: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogout_DestroysCart(t *testing.T) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(cart.SessionModel()))

	carts := cart.NewStore(db)
	ctx := context.Background()

	c := &cart.Cart{}
	c.Add(cart.Line{Key: "book-1-buy", ItemType: "book", ItemID: 1, Action: "buy", UnitPrice: 9.99, Quantity: 2})
	require.NoError(t, carts.Save(ctx, 42, c))

	service := NewService(new(MockUserRepository), new(MockJWTService), carts)
	require.NoError(t, service.Logout(ctx, 42))

	reloaded, err := carts.Load(ctx, 42)
	require.NoError(t, err)
	assert.True(t, reloaded.Empty())
}

func TestLogin_UnknownIdent(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)

	users.On("GetByIdent", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, jwt, new(MockCartStore))

	_, err := service.Login(context.Background(), LoginRequest{Ident: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

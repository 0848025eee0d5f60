package services

import (
	"context"
	"errors"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	mem "shepherd/pkg/memcache"
	"shepherd/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.AuthResponse, error)
	CurrentUser(ctx context.Context, username string) (*response_models.UserResponse, error)
	Logout(token string)
}

type AuthService struct {
	userRepo   repositories.UserRepository
	memberRepo repositories.MemberRepository
	audit      AuditServiceInterface
	revoked    mem.RevokedTokenStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	audit AuditServiceInterface,
	revoked mem.RevokedTokenStore,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
		audit:      audit,
		revoked:    revoked,
	}
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// EnsureBootstrapAdmin seeds the initial administrator account from
// ADMIN_USERNAME / ADMIN_PASSWORD / ADMIN_EMAIL. Registration is admin-only,
// so a fresh database needs one account created outside the HTTP surface.
// A no-op when the variables are unset or the username already exists.
func EnsureBootstrapAdmin(ctx context.Context, userRepo repositories.UserRepository) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	email := os.Getenv("ADMIN_EMAIL")
	if username == "" || password == "" || email == "" {
		return nil
	}

	existing, err := userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &db_models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        strings.ToLower(email),
		Role:         db_models.RoleAdmin,
		Active:       true,
	}
	if err := userRepo.Insert(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded administrator account %s", username)
	return nil
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {

	username := strings.TrimSpace(request.Username)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	if err := validateRegistration(username, email, request.Password); err != nil {
		return nil, err
	}

	role := request.Role
	if role == "" {
		role = db_models.RoleMember
	}
	if !db_models.ValidRole(role) {
		return nil, utils.ValidationError("unknown role: " + role)
	}

	taken, err := a.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if taken {
		return nil, utils.ErrUsernameTaken
	}

	taken, err = a.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if taken {
		return nil, utils.ErrEmailTaken
	}

	var memberID *uuid.UUID
	if request.MemberID != "" {
		member, err := a.memberRepo.FindById(ctx, request.MemberID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if member == nil {
			return nil, utils.ErrMemberNotFound
		}
		memberID = &member.ID
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		Role:         role,
		Active:       true,
		MemberID:     memberID,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		// The uniqueness checks above can race with a concurrent insert;
		// the unique index has the final word.
		if isUniqueViolation(err) {
			return nil, utils.ErrUsernameTaken
		}
		log.Printf("Error registering user %s: %v", username, err)
		return nil, utils.ErrDatabaseError
	}

	return a.authResponse(user)
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {

	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.Active {
		a.audit.LogAuthentication(request.Username, false)
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		a.audit.LogAuthentication(request.Username, false)
		return nil, utils.ErrInvalidCredentials
	}

	user.LastLogin = time.Now().Unix()
	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating last login for %s: %v", user.Username, err)
	}

	a.audit.LogAuthentication(user.Username, true)
	return a.authResponse(user)
}

func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*response_models.AuthResponse, error) {

	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	// A logged-out access token must not buy a fresh session here.
	if claims.TokenType != utils.TokenTypeRefresh || a.revoked.IsRevoked(refreshToken) {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.Active {
		return nil, utils.ErrInvalidToken
	}

	return a.authResponse(user)
}

func (a *AuthService) CurrentUser(ctx context.Context, username string) (*response_models.UserResponse, error) {

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := &response_models.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		LastLogin: user.LastLogin,
	}
	if user.MemberID != nil {
		resp.MemberID = user.MemberID.String()
	}
	return resp, nil
}

// Logout revokes the presented access token for the remainder of its life.
func (a *AuthService) Logout(token string) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return
	}
	ttl := utils.AccessTokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl > 0 {
		a.revoked.Revoke(token, ttl)
	}
}

func (a *AuthService) authResponse(user *db_models.User) (*response_models.AuthResponse, error) {
	pair, err := utils.CreateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token for %s: %v", user.Username, err)
		return nil, utils.ErrDatabaseError
	}
	return &response_models.AuthResponse{
		TokenPair: *pair,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

func validateRegistration(username, email, password string) error {
	switch {
	case username == "":
		return utils.ValidationError("username cannot be blank")
	case len(username) < 3:
		return utils.ValidationError("username must be at least 3 characters")
	case email == "":
		return utils.ValidationError("email cannot be blank")
	case !emailPattern.MatchString(email):
		return utils.ValidationError("invalid email format")
	case strings.TrimSpace(password) == "":
		return utils.ValidationError("password cannot be blank")
	case len(password) < 6:
		return utils.ValidationError("password must be at least 6 characters")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	// sqlite phrases the same violation as a plain message.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

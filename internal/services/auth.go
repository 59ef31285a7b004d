package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	dbpkg "github.com/mindease/mindease-backend/internal/data/db"
	"github.com/mindease/mindease-backend/internal/data/repos"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/ctxutil"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const DefaultAccessTTL = 30 * 24 * time.Hour

var (
	errEmailTaken         = apierr.BadRequest("email_taken", errors.New("Email already registered"))
	errInvalidCredentials = apierr.New(http.StatusUnauthorized, "invalid_credentials", errors.New("Invalid credentials"))
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Gender   string
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context) (*types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
	now          func() time.Time
}

func NewAuthService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &authService{
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
		now:          time.Now,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

func (as *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" {
		return nil, apierr.BadRequest("invalid_request", errors.New("name and email are required"))
	}
	if len(in.Password) < 6 {
		return nil, apierr.BadRequest("invalid_request", errors.New("password must be at least 6 characters"))
	}
	if in.Age != nil && *in.Age < 13 {
		return nil, apierr.BadRequest("invalid_request", errors.New("age must be at least 13"))
	}

	dbc := dbctx.Context{Ctx: ctx}
	exists, err := as.userRepo.EmailExists(dbc, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &types.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Age:      in.Age,
		Gender:   strings.TrimSpace(in.Gender),
	}
	if err := as.userRepo.Create(dbc, user); err != nil {
		// Lost a race with a concurrent registration.
		if dbpkg.IsUniqueViolation(err) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := as.generateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	as.log.Info("user registered", "user_id", user.ID.String())
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errInvalidCredentials
	}
	user, err := as.userRepo.GetByEmail(dbctx.Context{Ctx: ctx}, email)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	token, err := as.generateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) Me(ctx context.Context) (*types.User, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	user, err := as.userRepo.GetByID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apierr.NotFound("user")
	}
	return user, nil
}

func (as *authService) generateAccessToken(userID uuid.UUID) (string, error) {
	now := as.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, apierr.Unauthorized(errors.New("missing token"))
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ctx, apierr.Unauthorized(fmt.Errorf("invalid or expired token: %w", err))
	}
	if !parsed.Valid {
		return ctx, apierr.Unauthorized(errors.New("invalid or expired token"))
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apierr.Unauthorized(fmt.Errorf("invalid user id in token: %w", err))
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}), nil
}

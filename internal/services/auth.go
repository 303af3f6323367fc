package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/normalization"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/requestdata"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/utils"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
	LogoutUser(ctx context.Context, userID uuid.UUID) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	workspaceRepo repos.WorkspaceRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	workspaceRepo repos.WorkspaceRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		workspaceRepo: workspaceRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

// RegisterUser creates the user and a default workspace in one transaction.
func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	utils.NormalizeUserFields(user)
	if err := utils.ValidateRegistration(ctx, as.userRepo, as.log, user); err != nil {
		return err
	}
	if err := utils.HashPassword(user); err != nil {
		return err
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		workspace := &types.Workspace{
			ID:      uuid.New(),
			Name:    "My Desk",
			OwnerID: user.ID,
		}
		if _, err := as.workspaceRepo.Create(ctx, tx, []*types.Workspace{workspace}); err != nil {
			return fmt.Errorf("failed to create default workspace: %w", err)
		}
		return nil
	})
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = normalization.ParseInputString(email)
	if err := utils.ValidateLogin(email, password); err != nil {
		return "", "", err
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("error retrieving user by email: %w", err)
	}
	if len(users) == 0 {
		return "", "", fmt.Errorf("invalid email")
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid password")
	}

	var accessToken, refreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
			return fmt.Errorf("failed to clear previous tokens: %w", err)
		}
		accessToken, refreshToken, err = as.issueTokens(ctx, tx, user)
		return err
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	stored, err := as.userTokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("unknown refresh token")
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return "", "", fmt.Errorf("refresh token expired")
	}
	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{stored.UserID})
	if err != nil || len(users) == 0 {
		return "", "", fmt.Errorf("failed to load user for refresh")
	}

	var accessToken, newRefreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{stored.UserID}); err != nil {
			return fmt.Errorf("failed to rotate tokens: %w", err)
		}
		accessToken, newRefreshToken, err = as.issueTokens(ctx, tx, users[0])
		return err
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context, userID uuid.UUID) error {
	return as.userTokenRepo.DeleteByUserIDs(ctx, nil, []uuid.UUID{userID})
}

func (as *authService) issueTokens(ctx context.Context, tx *gorm.DB, user *types.User) (string, string, error) {
	workspaceID, err := as.defaultWorkspaceID(ctx, tx, user.ID)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          user.ID.String(),
		"workspace_id": workspaceID.String(),
		"iat":          now.Unix(),
		"exp":          now.Add(as.accessTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken := uuid.NewString()

	token := &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(as.refreshTTL),
	}
	if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{token}); err != nil {
		return "", "", fmt.Errorf("failed to store tokens: %w", err)
	}
	return accessToken, refreshToken, nil
}

func (as *authService) defaultWorkspaceID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	workspaces, err := as.workspaceRepo.ListByOwner(ctx, tx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		return uuid.Nil, fmt.Errorf("user has no workspace")
	}
	return workspaces[0].ID, nil
}

// SetContextFromToken validates the bearer token and stamps the request
// context with the caller's user and workspace.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, fmt.Errorf("invalid subject claim")
	}
	wsClaim, _ := claims["workspace_id"].(string)
	workspaceID, err := uuid.Parse(wsClaim)
	if err != nil {
		return ctx, fmt.Errorf("invalid workspace claim")
	}

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

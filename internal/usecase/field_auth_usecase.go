package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const fieldTokenType = "field"

var (
	ErrInvalidCredentials = errors.New("invalid team credentials")
	ErrInvalidFieldToken  = errors.New("invalid field token")
)

// FieldClaims are carried by field portal tokens.
type FieldClaims struct {
	TeamName string `json:"team"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// FieldSession is returned by a successful crew login.
type FieldSession struct {
	Token     string
	ExpiresAt time.Time
	Team      entities.Team
}

// IFieldAuthUseCase authenticates crews on the field portal with the team
// password and issues short lived tokens scoped to the team.
type IFieldAuthUseCase interface {
	Login(ctx context.Context, teamID, teamName, password string) (FieldSession, error)
	ValidateToken(token string) (*FieldClaims, error)
}

type FieldAuthUseCase struct {
	teams  interfaces.ITeamRepository
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

var _ IFieldAuthUseCase = (*FieldAuthUseCase)(nil)

func NewFieldAuthUseCase(teams interfaces.ITeamRepository, secret string, ttl time.Duration, logger *zap.Logger) *FieldAuthUseCase {
	return &FieldAuthUseCase{teams: teams, secret: []byte(secret), ttl: ttl, logger: logger.Named("field_auth")}
}

func (u *FieldAuthUseCase) Login(ctx context.Context, teamID, teamName, password string) (FieldSession, error) {
	teamID = strings.TrimSpace(teamID)
	teamName = strings.TrimSpace(teamName)
	if (teamID == "" && teamName == "") || password == "" {
		return FieldSession{}, ErrInvalidCredentials
	}

	var team entities.Team
	var err error
	if teamID != "" {
		team, err = u.teams.GetByID(ctx, teamID)
	} else {
		team, err = u.teams.GetByName(ctx, teamName)
	}
	if err != nil {
		return FieldSession{}, err
	}
	if team.ID == "" || !checkTeamPassword(team, password) {
		u.logger.Warn("[field][usecase] login refused", zap.String("team_id", teamID), zap.String("team", teamName))
		return FieldSession{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(u.ttl)
	claims := FieldClaims{
		TeamName: team.Name,
		Type:     fieldTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   team.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return FieldSession{}, fmt.Errorf("sign field token: %w", err)
	}

	u.logger.Info("[field][usecase] login success", zap.String("team_id", team.ID))
	return FieldSession{Token: signed, ExpiresAt: expiresAt.UTC(), Team: team}, nil
}

func (u *FieldAuthUseCase) ValidateToken(token string) (*FieldClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &FieldClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidFieldToken
	}
	claims, ok := parsed.Claims.(*FieldClaims)
	if !ok || !parsed.Valid || claims.Type != fieldTokenType || claims.Subject == "" {
		return nil, ErrInvalidFieldToken
	}
	return claims, nil
}

// checkTeamPassword prefers the bcrypt hash and only falls back to the legacy
// plain token for teams that were never migrated.
func checkTeamPassword(team entities.Team, password string) bool {
	if team.OperationPassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(team.OperationPassHash), []byte(password)) == nil
	}
	if team.OperationToken != "" {
		return subtle.ConstantTimeCompare([]byte(team.OperationToken), []byte(password)) == 1
	}
	return false
}

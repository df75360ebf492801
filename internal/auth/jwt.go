package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the branch-scoped session carried by every API token.
type Claims struct {
	UserID     string
	Username   string
	BranchID   string
	BranchName string
	Role       string
}

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func GenerateToken(claims Claims) (string, error) {
	if claims.UserID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	mapClaims := jwt.MapClaims{
		"userID":     claims.UserID,
		"username":   claims.Username,
		"branchID":   claims.BranchID,
		"branchName": claims.BranchName,
		"role":       claims.Role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string) (Claims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return Claims{}, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	claims := Claims{}
	claims.UserID, _ = mapClaims["userID"].(string)
	claims.Username, _ = mapClaims["username"].(string)
	claims.BranchID, _ = mapClaims["branchID"].(string)
	claims.BranchName, _ = mapClaims["branchName"].(string)
	claims.Role, _ = mapClaims["role"].(string)

	return claims, nil
}

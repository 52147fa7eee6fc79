package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"utility-calculator/internal/db"
)

// Credentials - тело запросов регистрации и входа
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse - ответ на успешный вход
type TokenResponse struct {
	Token string `json:"token"`
}

var ErrEmptyCredentials = errors.New("login and password must not be empty")

// RegisterUser создает пользователя после проверки учетных данных
func RegisterUser(c Credentials) (*db.User, error) {
	if c.Login == "" || c.Password == "" {
		return nil, ErrEmptyCredentials
	}
	return db.CreateUser(c.Login, c.Password)
}

// LoginUser проверяет учетные данные и выдает токен
func LoginUser(c Credentials) (string, error) {
	user, err := db.AuthenticateUser(c.Login, c.Password)
	if err != nil {
		return "", err
	}
	return GenerateToken(user)
}

// Register обрабатывает запрос на регистрацию (POST /api/v1/register)
func Register(w http.ResponseWriter, r *http.Request) {
	var req Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to parse JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	_, err := RegisterUser(req)
	if err != nil {
		switch err {
		case ErrEmptyCredentials:
			http.Error(w, err.Error(), http.StatusBadRequest)
		case db.ErrUserAlreadyExists:
			http.Error(w, "User with this login already exists", http.StatusConflict)
		default:
			http.Error(w, "Failed to create user: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Login обрабатывает запрос на вход пользователя (POST /api/v1/login)
func Login(w http.ResponseWriter, r *http.Request) {
	var req Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to parse JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := LoginUser(req)
	if err != nil {
		if err == db.ErrUserNotFound || err == db.ErrInvalidCredentials {
			http.Error(w, "Invalid login or password", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Authentication failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TokenResponse{Token: token})
}

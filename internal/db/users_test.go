package db

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// TestUserAccounts проверяет создание учетных записей и их поиск
func TestUserAccounts(t *testing.T) {
	InitTest(t)
	defer CleanupDB()

	created := map[string]*User{}
	for _, login := range []string{"ann", "bob", "carol"} {
		user, err := CreateUser(login, login+"-password")
		if err != nil {
			t.Fatalf("CreateUser(%q) error = %v", login, err)
		}
		created[login] = user
	}

	if _, err := CreateUser("bob", "another"); err != ErrUserAlreadyExists {
		t.Errorf("duplicate CreateUser() error = %v, want ErrUserAlreadyExists", err)
	}

	for login, want := range created {
		byID, err := GetUserByID(want.ID)
		if err != nil {
			t.Fatalf("GetUserByID(%d) error = %v", want.ID, err)
		}
		byLogin, err := GetUserByLogin(login)
		if err != nil {
			t.Fatalf("GetUserByLogin(%q) error = %v", login, err)
		}
		if byID.ID != byLogin.ID || byID.Login != login || byID.PasswordHash != want.PasswordHash {
			t.Errorf("lookups for %q disagree: %+v vs %+v", login, byID, byLogin)
		}
		// created_at заполняет SQLite, значение должно разбираться, а не подменяться текущим временем
		if d := time.Since(byID.CreatedAt); d < -time.Minute || d > time.Minute {
			t.Errorf("created_at of %q = %v", login, byID.CreatedAt)
		}
	}

	if _, err := GetUserByID(9999); err != ErrUserNotFound {
		t.Errorf("GetUserByID(missing) error = %v", err)
	}
	if _, err := GetUserByLogin("ghost"); err != ErrUserNotFound {
		t.Errorf("GetUserByLogin(missing) error = %v", err)
	}
}

// TestPasswordStoredAsBcrypt проверяет, что пароль хранится только в виде хеша
func TestPasswordStoredAsBcrypt(t *testing.T) {
	InitTest(t)
	defer CleanupDB()

	user, err := CreateUser("hash", "plain-text")
	if err != nil {
		t.Fatal(err)
	}

	var stored string
	if err := DB.QueryRow("SELECT password_hash FROM users WHERE id = ?", user.ID).Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored == "plain-text" {
		t.Fatal("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("plain-text")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

// TestAuthenticateUser проверяет вход по логину и паролю
func TestAuthenticateUser(t *testing.T) {
	InitTest(t)
	defer CleanupDB()

	if _, err := CreateUser("login", "right"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{"Right password", "login", "right", nil},
		{"Wrong password", "login", "wrong", ErrInvalidCredentials},
		{"Empty password", "login", "", ErrInvalidCredentials},
		{"Unknown login", "nobody", "right", ErrUserNotFound},
		{"Login is case sensitive", "LOGIN", "right", ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := AuthenticateUser(tt.login, tt.password)
			if err != tt.wantErr {
				t.Fatalf("AuthenticateUser() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && user.Login != tt.login {
				t.Errorf("AuthenticateUser() login = %q", user.Login)
			}
		})
	}
}

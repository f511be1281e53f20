package validation

import "strings"

// RegisterRequest is the raw body of a registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"min=3,max=30,username_chars"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=8,password_bytes,password_strength"`

	mismatched Errors
}

var registerMessages = map[string]string{
	"username":                   "Username must be between 3 and 30 characters",
	"username.username_chars":    "Username can only contain letters, numbers, and underscores",
	"email":                      "Must be a valid email address",
	"password":                   "Password must be at least 8 characters",
	"password.password_bytes":    "Password must be at most 72 bytes",
	"password.password_strength": "Password must contain at least one uppercase letter, one lowercase letter, and one number",
}

func (RegisterRequest) message(field, tag string) string {
	return lookup(registerMessages, field, tag)
}

func (r RegisterRequest) mismatches() Errors { return r.mismatched }
func (r *RegisterRequest) setMismatches(e Errors) { r.mismatched = e }

// RegisterInput is a registration that passed every rule.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Registration validates req. The email of the result is normalized.
func (v *Validator) Registration(req RegisterRequest) (RegisterInput, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := v.check(req); err != nil {
		return RegisterInput{}, err
	}

	return RegisterInput{
		Username: req.Username,
		Email:    NormalizeEmail(req.Email),
		Password: req.Password,
	}, nil
}

// LoginRequest is the raw body of a login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`

	mismatched Errors
}

var loginMessages = map[string]string{
	"username": "Username is required",
	"password": "Password is required",
}

func (LoginRequest) message(field, tag string) string {
	return lookup(loginMessages, field, tag)
}

func (r LoginRequest) mismatches() Errors { return r.mismatched }
func (r *LoginRequest) setMismatches(e Errors) { r.mismatched = e }

type LoginInput struct {
	Username string
	Password string
}

func (v *Validator) Login(req LoginRequest) (LoginInput, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := v.check(req); err != nil {
		return LoginInput{}, err
	}

	return LoginInput{Username: req.Username, Password: req.Password}, nil
}

package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

var userFailures = failureMessages{notFound: "User not found"}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req validation.RegisterRequest
	if err := validation.DecodeJSON(r.Body, &req); err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}
	in, err := s.validator.Registration(req)
	if err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}

	res, err := s.users.Register(r.Context(), in)
	if err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", res.User.Username)
	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "User registered successfully",
		Token:   res.Token,
		User:    res.User,
	})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req validation.LoginRequest
	if err := validation.DecodeJSON(r.Body, &req); err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}
	in, err := s.validator.Login(req)
	if err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}

	res, err := s.users.Login(r.Context(), in)
	if err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())

	u, err := s.users.WhoAmI(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err, userFailures)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

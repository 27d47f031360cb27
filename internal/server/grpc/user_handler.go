package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/climatechart/server/internal/common"
	pb "github.com/climatechart/server/internal/proto"
	"github.com/climatechart/server/internal/server/mail"
	"github.com/climatechart/server/internal/server/verifications"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	in := struct {
		Name     string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}{
		Name:     strings.TrimSpace(req.GetName()),
		Email:    strings.TrimSpace(req.GetEmail()),
		Password: strings.TrimSpace(req.GetPassword()),
	}
	if err := s.validate.Struct(in); err != nil {
		s.logger.Warn(ctx, "signup rejected", "email", in.Email)
		return nil, status.Error(codes.InvalidArgument, "Name, email, and password are required.")
	}

	user, err := s.users.SignUp(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "User already exists or error occurred.")
		}
		s.logger.Error(ctx, "signup failed", "email", in.Email, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	s.logger.Info(ctx, "user signed up", "email", user.Email)
	return &pb.SignUpResponse{UserId: user.UserID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	email := strings.TrimSpace(req.GetEmail())
	password := strings.TrimSpace(req.GetPassword())
	if email == "" || password == "" {
		return nil, status.Error(codes.InvalidArgument, "Email and password are required.")
	}

	user, err := s.users.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.logger.Warn(ctx, "login failed", "email", email)
			return nil, status.Error(codes.Unauthenticated, "Invalid credentials.")
		}
		s.logger.Error(ctx, "login error", "email", email, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	s.logger.Info(ctx, "user logged in", "email", user.Email)
	return &pb.LoginResponse{
		UserId: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

func (s *GRPCServer) SendVerificationEmail(ctx context.Context, req *pb.SendVerificationEmailRequest) (*pb.SendVerificationEmailResponse, error) {

	email := strings.TrimSpace(req.GetEmail())
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, status.Error(codes.InvalidArgument, "email is required.")
	}

	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		if errors.Is(err, verifications.ErrAlreadySent) {
			// A live code is a user-facing no-op, not an error status.
			return &pb.SendVerificationEmailResponse{
				Success: false,
				Message: "Verification code already sent. Please check your email.",
			}, nil
		}
		s.logger.Error(ctx, "issuing verification code failed", "email", email, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	if err := s.mailer.SendEmail(email, mail.VerificationSubject, mail.VerificationBody(code)); err != nil {
		s.logger.Error(ctx, "sending verification email failed", "email", email, "error", err)
		return nil, status.Error(codes.Internal, internalErrorMsg)
	}

	s.logger.Info(ctx, "verification email sent", "email", email)
	return &pb.SendVerificationEmailResponse{
		Success: true,
		Message: "Verification email sent.",
	}, nil
}

func (s *GRPCServer) ConfirmEmail(ctx context.Context, req *pb.ConfirmEmailRequest) (*pb.ConfirmEmailResponse, error) {

	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required.")
	}

	if err := s.codes.Confirm(ctx, email, strings.TrimSpace(req.GetCode())); err != nil {
		switch {
		case errors.Is(err, verifications.ErrCodeMismatch):
			s.logger.Warn(ctx, "invalid verification code", "email", email)
			return nil, status.Error(codes.InvalidArgument, "Invalid verification code.")
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "Verification code not found.")
		default:
			s.logger.Error(ctx, "confirming code failed", "email", email, "error", err)
			return nil, mapError(err, internalErrorMsg)
		}
	}

	if err := s.users.ConfirmEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "User not found.")
		}
		s.logger.Error(ctx, "marking email verified failed", "email", email, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	s.logger.Info(ctx, "email confirmed", "email", email)
	return &pb.ConfirmEmailResponse{Success: true}, nil
}

func (s *GRPCServer) GetMe(ctx context.Context, req *pb.GetMeRequest) (*pb.GetMeResponse, error) {

	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "User not found.")
		}
		s.logger.Error(ctx, "fetching user failed", "email", email, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	return &pb.GetMeResponse{
		UserId:        user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
	}, nil
}

func (s *GRPCServer) CreateApiKey(ctx context.Context, req *pb.CreateApiKeyRequest) (*pb.ApiKeyInfo, error) {

	userEmail := strings.TrimSpace(req.GetUserEmail())
	if userEmail == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required.")
	}

	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "User not found.")
		}
		s.logger.Error(ctx, "fetching user failed", "email", userEmail, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}
	// The verified-email check happens before the ledger is touched; an
	// unverified account never mints a key.
	if !user.EmailVerified {
		return nil, status.Error(codes.FailedPrecondition, "Email not verified.")
	}

	key, err := s.keys.Create(ctx, userEmail)
	if err != nil {
		s.logger.Error(ctx, "creating api key failed", "email", userEmail, "error", err)
		return nil, mapError(err, "Failed to create API key.")
	}

	s.logger.Info(ctx, "api key created", "email", userEmail)
	return &pb.ApiKeyInfo{
		UserEmail: key.UserEmail,
		Value:     key.Value,
		CreatedAt: key.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *GRPCServer) GetApiKey(ctx context.Context, req *pb.GetApiKeyRequest) (*pb.ApiKeyInfo, error) {

	userEmail := strings.TrimSpace(req.GetUserEmail())
	if userEmail == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required.")
	}

	key, err := s.keys.Get(ctx, userEmail)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "API key not found.")
		}
		s.logger.Error(ctx, "fetching api key failed", "email", userEmail, "error", err)
		return nil, mapError(err, internalErrorMsg)
	}

	return &pb.ApiKeyInfo{
		UserEmail: key.UserEmail,
		Value:     key.Value,
		CreatedAt: key.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// Logout is a stateless acknowledgement. Sessions live client-side, so
// there is no server record to revoke; API keys stay valid until their TTL.
func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required.")
	}

	s.logger.Info(ctx, "user logged out", "email", email)
	return &pb.LogoutResponse{Success: true}, nil
}

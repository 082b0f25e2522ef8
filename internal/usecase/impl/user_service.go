package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	authProvider service.AuthProvider
	profileRepo  repository.ProfileRepository
	demoEmail    string
	demoPassword string
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	AuthProvider service.AuthProvider
	ProfileRepo  repository.ProfileRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	demoEmail, demoPassword := "", ""
	if params.Config != nil && params.Config.DemoLogin != nil {
		demoEmail = params.Config.DemoLogin.Email
		demoPassword = params.Config.DemoLogin.Password
	}

	return &userService{
		authProvider: params.AuthProvider,
		profileRepo:  params.ProfileRepo,
		demoEmail:    demoEmail,
		demoPassword: demoPassword,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the form locally, then creates the auth account and
// its profile row.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)

	switch {
	case email == "" || input.Password == "" || input.ConfirmPassword == "":
		return nil, domainerrors.ErrFieldsRequired
	case input.Password != input.ConfirmPassword:
		return nil, domainerrors.ErrPasswordMismatch
	case len(input.Password) < minPasswordLength:
		return nil, domainerrors.ErrPasswordTooShort
	case !validation.ValidateEmail(email):
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed email")
	}

	session, err := srv.authProvider.SignUp(ctx, email, input.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		return nil, domainerrors.ErrRegistrationFailed.WithDetails("email already registered")
	}
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed
	}

	// The profile row powers the profile screen. The auth account already
	// exists, so a failed insert degrades rather than aborts.
	profile := &entity.Profile{ID: session.User.ID, Email: session.User.Email}
	if err := srv.profileRepo.CreateProfile(ctx, profile); err != nil {
		srv.log(ctx).Warn("Failed to create profile row", slog.Any("userID", session.User.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", session.User.ID))

	return &usecase.SessionOutput{AccessToken: session.AccessToken, User: session.User}, nil
}

// Login exchanges credentials for a session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrFieldsRequired
	}

	return srv.signIn(ctx, email, input.Password)
}

// DemoLogin signs in with the preconfigured demo account.
func (srv *userService) DemoLogin(ctx context.Context) (*usecase.SessionOutput, error) {
	if srv.demoEmail == "" {
		return nil, domainerrors.ErrLoginFailed.WithDetails("demo login is not configured")
	}

	return srv.signIn(ctx, srv.demoEmail, srv.demoPassword)
}

// Logout revokes the session behind the access token.
func (srv *userService) Logout(ctx context.Context, accessToken string) error {
	if err := srv.authProvider.SignOut(ctx, accessToken); err != nil {
		srv.log(ctx).Warn("Logout failed", slog.Any("error", err))

		return domainerrors.ErrBackendUnavailable
	}

	return nil
}

func (srv *userService) signIn(ctx context.Context, email, password string) (*usecase.SessionOutput, error) {
	session, err := srv.authProvider.SignIn(ctx, email, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", session.User.ID))

	return &usecase.SessionOutput{AccessToken: session.AccessToken, User: session.User}, nil
}

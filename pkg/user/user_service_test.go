package user

import (
	"context"
	"testing"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type inMemoryUserRepository struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newInMemoryUserRepository() *inMemoryUserRepository {
	return &inMemoryUserRepository{
		byID:    map[string]*entities.User{},
		byEmail: map[string]*entities.User{},
	}
}

func (r *inMemoryUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *inMemoryUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *inMemoryUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *inMemoryUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *inMemoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *inMemoryUserRepository) GetAthletesByCoach(_ context.Context, coachID string) ([]*entities.User, error) {
	var athletes []*entities.User
	for _, user := range r.byID {
		if user.CoachID != nil && user.CoachID.String() == coachID && user.Role == domain.RoleAthlete {
			athletes = append(athletes, user)
		}
	}
	return athletes, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (f *fakeJWTService) GenerateTokenInvite(data map[string]any, _ time.Duration) (string, error) {
	email, _ := data["email"].(string)
	return "invite-" + email, nil
}

func (f *fakeJWTService) ValidateTokenInvite(token string) (jwtlib.MapClaims, error) {
	if len(token) <= len("invite-") {
		return jwtlib.MapClaims{}, domain.ErrTokenInvalid
	}
	return jwtlib.MapClaims{"email": token[len("invite-"):]}, nil
}

func newTestUserService(repo UserRepository) UserService {
	return NewUserService(repo, &fakeJWTService{})
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:     "coach@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleCoach,
		FirstName: "Sam",
		LastName:  "Lee",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.byEmail["coach@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.Password == "hunter2hunter2" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored password is not a bcrypt hash of the input: %v", err)
	}
	if res.Role != domain.RoleCoach {
		t.Fatalf("expected coach role, got %q", res.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	req := domain.RegisterRequest{
		Email:     "coach@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleCoach,
		FirstName: "Sam",
		LastName:  "Lee",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err != domain.ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:     "athlete@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleAthlete,
		FirstName: "Alex",
		LastName:  "Kim",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "athlete@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.Role != domain.RoleAthlete {
		t.Fatalf("expected athlete role, got %q", res.Role)
	}

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "athlete@example.com",
		Password: "wrong-password",
	}); err != domain.ErrCredentialsInvalid {
		t.Fatalf("expected ErrCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	}); err != domain.ErrCredentialsInvalid {
		t.Fatalf("expected ErrCredentialsInvalid for unknown email, got %v", err)
	}
}

func TestInviteAthleteRequiresCoach(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	reg, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:     "athlete@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleAthlete,
		FirstName: "Alex",
		LastName:  "Kim",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.InviteAthlete(context.Background(), reg.ID, domain.InviteAthleteRequest{
		Email:     "new@example.com",
		FirstName: "Jess",
	}); err != domain.ErrNotACoach {
		t.Fatalf("expected ErrNotACoach, got %v", err)
	}
}

func TestInviteAndAcceptFlow(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	coach, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:     "coach@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleCoach,
		FirstName: "Sam",
		LastName:  "Lee",
	})
	if err != nil {
		t.Fatalf("register coach: %v", err)
	}

	invited, err := svc.InviteAthlete(context.Background(), coach.ID, domain.InviteAthleteRequest{
		Email:     "new@example.com",
		FirstName: "Jess",
	})
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if invited.CoachID != coach.ID {
		t.Fatalf("athlete not linked to coach")
	}
	if invited.InviteStatus != "Pending" {
		t.Fatalf("expected Pending invite, got %q", invited.InviteStatus)
	}

	accepted, err := svc.AcceptInvite(context.Background(), domain.AcceptInviteRequest{
		Token:    "invite-new@example.com",
		Password: "s3cretpassw0rd",
	})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.InviteStatus != "Accepted" {
		t.Fatalf("expected Accepted status, got %q", accepted.InviteStatus)
	}

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "new@example.com",
		Password: "s3cretpassw0rd",
	}); err != nil {
		t.Fatalf("login after accepting invite: %v", err)
	}

	// A second accept must fail, the invitation is no longer pending.
	if _, err := svc.AcceptInvite(context.Background(), domain.AcceptInviteRequest{
		Token:    "invite-new@example.com",
		Password: "another-password",
	}); err != domain.ErrInviteNotPending {
		t.Fatalf("expected ErrInviteNotPending, got %v", err)
	}
}

func TestGetAthletes(t *testing.T) {
	repo := newInMemoryUserRepository()
	svc := newTestUserService(repo)

	coach, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:     "coach@example.com",
		Password:  "hunter2hunter2",
		Role:      domain.RoleCoach,
		FirstName: "Sam",
		LastName:  "Lee",
	})
	if err != nil {
		t.Fatalf("register coach: %v", err)
	}

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := svc.InviteAthlete(context.Background(), coach.ID, domain.InviteAthleteRequest{
			Email:     email,
			FirstName: "Athlete",
		}); err != nil {
			t.Fatalf("invite %s: %v", email, err)
		}
	}

	athletes, err := svc.GetAthletes(context.Background(), coach.ID)
	if err != nil {
		t.Fatalf("get athletes: %v", err)
	}
	if len(athletes) != 2 {
		t.Fatalf("expected 2 athletes, got %d", len(athletes))
	}
}

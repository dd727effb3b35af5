package usecase

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/service"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
)

var weekdays = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}

// AuthUseCase synthesizes the session user. There is no credential check at
// this layer; bakery credentials are verified by BakeryUseCase.Login.
type AuthUseCase struct {
	mu            sync.RWMutex
	snapshots     *service.SnapshotService
	bakeries      BakerySession
	professionals ProfessionalDirectory
	stats         StatsSession
	clock         Clock

	user *entity.User
}

func NewAuthUseCase(
	snapshots *service.SnapshotService,
	bakeries BakerySession,
	professionals ProfessionalDirectory,
	stats StatsSession,
	clock Clock,
) *AuthUseCase {
	return &AuthUseCase{
		snapshots:     snapshots,
		bakeries:      bakeries,
		professionals: professionals,
		stats:         stats,
		clock:         clock,
	}
}

// Initialize restores the persisted user. A corrupt entry is dropped and the
// session starts anonymous.
func (u *AuthUseCase) Initialize(ctx context.Context) error {
	var user entity.User
	ok, err := u.snapshots.Load(ctx, service.KeyUser, &user)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if ok {
		u.user = &user
		logger.Info("Restored session for %s (%s)", user.Email, user.Type)
	}
	return nil
}

// Login always succeeds for a known account type and replaces the current
// session.
func (u *AuthUseCase) Login(ctx context.Context, email, password string, userType entity.UserType) (*entity.User, error) {
	var user entity.User
	switch userType {
	case entity.UserTypeBakery:
		if b := u.bakeries.CurrentBakery(); b != nil {
			user = bakeryUser(*b)
		} else {
			user = u.defaultBakeryUser(email)
		}
	case entity.UserTypeProfessional:
		user = u.professionalUser(email)
	case entity.UserTypeAdmin:
		user = entity.User{Email: email, Name: "Administrateur", Type: entity.UserTypeAdmin}
	default:
		return nil, errors.BadRequest("Unknown account type", nil)
	}
	return u.startSession(ctx, user), nil
}

// LoginBakery opens a bakery session projected from b, the account whose
// credentials were just verified.
func (u *AuthUseCase) LoginBakery(ctx context.Context, b entity.Bakery) *entity.User {
	return u.startSession(ctx, bakeryUser(b))
}

func (u *AuthUseCase) startSession(ctx context.Context, user entity.User) *entity.User {
	user.ID = uuid.New().String()

	u.mu.Lock()
	defer u.mu.Unlock()

	u.user = &user
	if err := u.snapshots.Save(ctx, service.KeyUser, user); err != nil {
		logger.LogSnapshotError(service.KeyUser, "save", err)
	}
	loginsTotal.WithLabelValues(string(user.Type), "ok").Inc()

	out := user
	return &out
}

func (u *AuthUseCase) defaultBakeryUser(email string) entity.User {
	return entity.User{
		Email:  email,
		Name:   "Boulangerie Martin",
		Type:   entity.UserTypeBakery,
		Avatar: "boulangerie1.jpeg",
		BakeryProfile: &entity.BakeryProfile{
			BusinessName:      "Boulangerie Martin",
			Address:           "15 Rue de la Paix, 75001 Paris",
			Phone:             "+33 1 42 33 44 55",
			Description:       "Boulangerie artisanale familiale depuis 1950",
			EstablishmentType: []string{"Boulangerie", "Pâtisserie"},
			CreatedAt:         u.clock().UTC().Format(time.RFC3339),
		},
	}
}

func bakeryUser(b entity.Bakery) entity.User {
	return entity.User{
		Email:  b.Email,
		Name:   b.Name,
		Type:   entity.UserTypeBakery,
		Avatar: b.Avatar,
		BakeryProfile: &entity.BakeryProfile{
			BakeryID:          b.ID,
			BusinessName:      b.Name,
			Address:           b.FullAddress(),
			Phone:             b.Phone,
			Description:       b.Description,
			EstablishmentType: []string{"Boulangerie"},
			CreatedAt:         b.CreatedAt,
		},
	}
}

func (u *AuthUseCase) professionalUser(email string) entity.User {
	u.professionals.EnsureGenerated()
	pros := u.professionals.List()

	if len(pros) == 0 {
		return entity.User{
			Email:  email,
			Name:   "Jean Dupont",
			Type:   entity.UserTypeProfessional,
			Avatar: "boulanger1.jpeg",
			ProfessionalProfile: &entity.ProfessionalProfile{
				FirstName:      "Jean",
				LastName:       "Dupont",
				Phone:          "+33 6 12 34 56 78",
				Specialties:    []string{"Boulangerie artisanale", "Viennoiserie"},
				Experience:     8,
				Location:       "Paris 11ème",
				HourlyRate:     25,
				Availability:   weekdays,
				Certifications: []string{"CAP Boulanger", "Brevet Professionnel Boulanger"},
				Portfolio:      []string{},
				Status:         entity.StatusAutoEntrepreneur,
				CreatedAt:      u.clock().UTC().Format(time.RFC3339),
			},
		}
	}

	p := matchProfessional(email, pros)
	return entity.User{
		Email:  email,
		Name:   p.FullName(),
		Type:   entity.UserTypeProfessional,
		Avatar: p.Avatar,
		ProfessionalProfile: &entity.ProfessionalProfile{
			ProfessionalID: p.ID,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Phone:          p.Phone,
			Specialties:    p.Specialties,
			Experience:     p.YearsExperience,
			Location:       strings.TrimSpace(p.Location.City + " " + p.Location.PostalCode),
			HourlyRate:     p.HourlyRate,
			Availability:   weekdays,
			Certifications: p.Certifications,
			Portfolio:      nonNil(p.Portfolio),
			Status:         entity.StatusAutoEntrepreneur,
			CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}

// matchProfessional picks the profile whose first or last name appears in
// the local part of email, ignoring case and accents. It falls back to the
// first profile. pros must not be empty.
func matchProfessional(email string, pros []entity.Professional) entity.Professional {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	tokens := strings.FieldsFunc(foldAccents(local), func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	for _, p := range pros {
		first := foldAccents(p.FirstName)
		last := foldAccents(p.LastName)
		for _, t := range tokens {
			if t == first || t == last {
				return p
			}
		}
	}
	return pros[0]
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Logout ends the session and clears the bakery and stats sessions. The
// three session snapshots are removed in one batch.
func (u *AuthUseCase) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.user = nil
	u.bakeries.Reset()
	u.stats.Reset()

	if err := u.snapshots.Clear(ctx, service.SessionKeys...); err != nil {
		return errors.Internal("Failed to clear session", err)
	}
	return nil
}

func (u *AuthUseCase) CurrentUser() *entity.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.user == nil {
		return nil
	}
	out := *u.user
	return &out
}

func (u *AuthUseCase) IsAuthenticated() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.user != nil
}

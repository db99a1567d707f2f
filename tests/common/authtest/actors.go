//go:build unit || e2e

package authtest

import (
	"testing"

	"styleapp-backend/internal/domain/user"

	"github.com/google/uuid"
)

// TestActor is an identity plus a bearer token the test server accepts.
type TestActor struct {
	user.Actor
	Token string
}

func (h *JWTHelper) NewActor(t *testing.T, role user.Role) TestActor {
	t.Helper()
	id := uuid.New()
	return TestActor{
		Actor: user.NewActor(id, role),
		Token: h.GenerateToken(t, id, role),
	}
}

func (h *JWTHelper) Client(t *testing.T) TestActor { return h.NewActor(t, user.RoleClient) }
func (h *JWTHelper) Barber(t *testing.T) TestActor { return h.NewActor(t, user.RoleBarber) }
func (h *JWTHelper) Admin(t *testing.T) TestActor  { return h.NewActor(t, user.RoleAdmin) }

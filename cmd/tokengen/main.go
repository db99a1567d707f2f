// Command tokengen mints development bearer tokens signed with JWT_SECRET.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/config"
	"styleapp-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	userIDFlag := flag.String("user", "", "user id (random when empty)")
	roleFlag := flag.String("role", string(user.RoleClient), "client, barber or admin")
	genderFlag := flag.String("gender", "", "optional gender claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_DURATION)")
	flag.Parse()

	if err := run(*userIDFlag, *roleFlag, *genderFlag, *ttl); err != nil {
		slog.Error("Failed to mint token", "error", err)
		os.Exit(1)
	}
}

func run(rawUserID, rawRole, rawGender string, ttl time.Duration) error {
	// Only the JWT settings are needed, so the DB variables may be absent.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	var jwtCfg config.JWTConfig
	if err := envconfig.Process("", &jwtCfg); err != nil {
		return err
	}

	role, err := user.NewRole(rawRole)
	if err != nil {
		return err
	}
	gender, err := user.NewGender(rawGender)
	if err != nil {
		return err
	}

	userID := uuid.New()
	if rawUserID != "" {
		if userID, err = uuid.Parse(rawUserID); err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
	}

	if ttl == 0 {
		if ttl, err = time.ParseDuration(jwtCfg.Duration); err != nil {
			return fmt.Errorf("invalid JWT_DURATION: %w", err)
		}
	}

	token, err := jwt.NewService(jwtCfg.Secret, ttl).GenerateToken(userID, role, gender)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "user_id=%s role=%s expires_in=%s\n", userID, role, ttl)
	fmt.Println(token)
	return nil
}

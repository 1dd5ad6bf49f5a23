package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/password"
	"github.com/google/uuid"
)

const (
	minPasswordLength = 6
	maxNameLength     = 100
)

// validateRegistration returns the normalized identity and parsed role.
func validateRegistration(in *RegisterInput) (string, models.Role, error) {
	identity := common.NormalizeIdentity(in.Identity)
	if !common.IsValidIdentity(identity) {
		return "", "", fmt.Errorf("%w: identity must be an e-mail address", common.ErrInvalidInput)
	}

	if n := len(in.Password); n < minPasswordLength || n > password.MaxLength {
		return "", "", fmt.Errorf("%w: password must be %d to %d bytes", common.ErrInvalidInput, minPasswordLength, password.MaxLength)
	}

	role, err := models.ParseRole(in.Role)
	if err != nil {
		return "", "", err
	}

	if utf8.RuneCountInString(in.Name) > maxNameLength {
		return "", "", fmt.Errorf("%w: name longer than %d characters", common.ErrInvalidInput, maxNameLength)
	}

	return identity, role, nil
}

// validatePrincipalID accepts only ids of the form Register assigns.
func validatePrincipalID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: principal id is empty", common.ErrInvalidInput)
	}
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return fmt.Errorf("%w: principal id is not a UUID", common.ErrInvalidInput)
	}
	return nil
}

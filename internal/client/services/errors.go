package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portalauth/internal/common"
)

var (
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	ErrWeakPassword     = fmt.Errorf("%w: password is too weak", common.ErrValidation)
	ErrTermsNotAgreed   = fmt.Errorf("%w: terms not agreed", common.ErrValidation)
	ErrEmailRequired    = fmt.Errorf("%w: email is required", common.ErrValidation)

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotSaved    = errors.New("session could not be saved")
)
